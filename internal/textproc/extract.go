package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	fieldChiefComplaint = "chief_complaint"
	fieldSymptoms       = "symptoms"
	fieldDiagnosis      = "diagnosis"
	fieldMedications    = "medications"
)

// triggerRules route the text following a trigger phrase into a field.
// Longer phrases are listed before their prefixes so they match first.
var triggerRules = []struct {
	Phrase string
	Field  string
}{
	{"chief complaint is", fieldChiefComplaint},
	{"chief complaint", fieldChiefComplaint},
	{"complains of", fieldChiefComplaint},
	{"complaining of", fieldChiefComplaint},
	{"presents with", fieldChiefComplaint},
	{"symptoms include", fieldSymptoms},
	{"patient reports", fieldSymptoms},
	{"reports", fieldSymptoms},
	{"diagnosis is", fieldDiagnosis},
	{"diagnosis", fieldDiagnosis},
	{"assessment is", fieldDiagnosis},
	{"assessment", fieldDiagnosis},
	{"prescribing", fieldMedications},
	{"prescribed", fieldMedications},
	{"prescribe", fieldMedications},
	{"started on", fieldMedications},
	{"medications", fieldMedications},
}

var (
	bpRE   = regexp.MustCompile(`(?:blood pressure|bp)(?:\s+(?:is|of|was|reading))?\s+(\d{2,3})\s*/\s*(\d{2,3})`)
	hrRE   = regexp.MustCompile(`(?:heart rate|pulse)(?:\s+(?:is|of|was))?\s+(\d{2,3})`)
	tempRE = regexp.MustCompile(`(?:temperature|temp)(?:\s+(?:is|of|was))?\s+(\d{2,3}(?:\.\d+)?)`)
)

type trigger struct {
	field string
	start int // index of the phrase
	end   int // index just past the phrase
}

// findTriggers locates all trigger phrase occurrences, skipping overlaps so
// "chief complaint is" does not also fire "chief complaint".
func findTriggers(text string) []trigger {
	var found []trigger
	claimed := make([]bool, len(text))

	for _, rule := range triggerRules {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(rule.Phrase) + `\b`)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if claimed[loc[0]] {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				claimed[i] = true
			}
			found = append(found, trigger{field: rule.Field, start: loc[0], end: loc[1]})
		}
	}

	// Order by position; the trigger list is small.
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].start < found[j-1].start; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}
	return found
}

// extractFields walks the trigger occurrences and captures the text between
// each trigger and the next one (or the end of the sentence).
func extractFields(text string) map[string][]string {
	fields := make(map[string][]string)
	triggers := findTriggers(text)

	for i, tr := range triggers {
		end := len(text)
		if i+1 < len(triggers) {
			end = triggers[i+1].start
		}
		segment := text[tr.end:end]
		if stop := strings.IndexAny(segment, ".;"); stop >= 0 {
			segment = segment[:stop]
		}
		segment = strings.Trim(segment, " ,:")
		if segment == "" {
			continue
		}
		fields[tr.field] = append(fields[tr.field], segment)
	}

	return fields
}

// extractVitals pulls numeric vitals out of the corrected text.
func extractVitals(text string) map[string]float64 {
	vitals := make(map[string]float64)

	if m := bpRE.FindStringSubmatch(text); m != nil {
		sys, _ := strconv.ParseFloat(m[1], 64)
		dia, _ := strconv.ParseFloat(m[2], 64)
		vitals["bp_systolic"] = sys
		vitals["bp_diastolic"] = dia
	}
	if m := hrRE.FindStringSubmatch(text); m != nil {
		hr, _ := strconv.ParseFloat(m[1], 64)
		vitals["heart_rate"] = hr
	}
	if m := tempRE.FindStringSubmatch(text); m != nil {
		temp, _ := strconv.ParseFloat(m[1], 64)
		vitals["temperature"] = temp
	}

	return vitals
}

// splitSymptoms breaks a captured symptoms segment into individual entries.
func splitSymptoms(segment string) []string {
	segment = strings.ReplaceAll(segment, " and ", ",")
	parts := strings.Split(segment, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
