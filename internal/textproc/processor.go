// Package textproc corrects dictated clinical text and extracts structured
// fields from it. The pipeline normalizes the input, fixes known and fuzzy
// misspellings against a medical vocabulary, then routes trigger phrases
// into chief complaint, symptoms, diagnosis, vitals and medications.
package textproc

import "strings"

// Result holds everything the pipeline extracted from one transcript.
type Result struct {
	CorrectedText  string             `json:"corrected_text"`
	ChiefComplaint string             `json:"chief_complaint,omitempty"`
	Symptoms       []string           `json:"symptoms,omitempty"`
	Diagnosis      string             `json:"diagnosis,omitempty"`
	Vitals         map[string]float64 `json:"vitals,omitempty"`
	Medications    []MedicationEntry  `json:"medications,omitempty"`
	Corrections    []Correction       `json:"corrections,omitempty"`
}

// Processor runs the correction and extraction pipeline.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process runs the full pipeline over a raw transcript.
func (p *Processor) Process(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}

	corrected := normalize(text)

	var corrections []Correction
	corrected, dictCorr := applyDictionary(corrected)
	corrections = append(corrections, dictCorr...)

	corrected, fuzzyCorr := applyFuzzy(corrected)
	corrections = append(corrections, fuzzyCorr...)

	result := Result{
		CorrectedText: corrected,
		Corrections:   corrections,
	}

	fields := extractFields(corrected)
	if segs := fields[fieldChiefComplaint]; len(segs) > 0 {
		result.ChiefComplaint = segs[0]
	}
	for _, seg := range fields[fieldSymptoms] {
		result.Symptoms = append(result.Symptoms, splitSymptoms(seg)...)
	}
	if segs := fields[fieldDiagnosis]; len(segs) > 0 {
		result.Diagnosis = segs[0]
	}
	for _, seg := range fields[fieldMedications] {
		result.Medications = append(result.Medications, parseMedications(seg)...)
	}

	if vitals := extractVitals(corrected); len(vitals) > 0 {
		result.Vitals = vitals
	}

	return result
}
