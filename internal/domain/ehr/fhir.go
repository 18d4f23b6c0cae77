package ehr

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

const (
	loincSystem  = "http://loinc.org"
	rxnormSystem = "http://www.nlm.nih.gov/research/umls/rxnorm"
	actCode      = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
)

// LOINC codes used by the vitals observations.
const (
	loincBPPanel   = "85354-9"
	loincSystolic  = "8480-6"
	loincDiastolic = "8462-4"
	loincHeartRate = "8867-4"
	loincBodyTemp  = "8310-5"
)

// frequencyTiming maps frequency codes to doses per period.
var frequencyTiming = map[string]struct {
	Frequency  int
	Period     int
	PeriodUnit string
}{
	"daily":  {1, 1, "d"},
	"bid":    {2, 1, "d"},
	"tid":    {3, 1, "d"},
	"qid":    {4, 1, "d"},
	"q4h":    {6, 1, "d"},
	"q6h":    {4, 1, "d"},
	"q8h":    {3, 1, "d"},
	"q12h":   {2, 1, "d"},
	"weekly": {1, 1, "wk"},
}

type fhirResource = map[string]interface{}

// buildPatientResource maps a patient record onto a FHIR Patient.
func buildPatientResource(p *patients.Patient, fhirID string) fhirResource {
	res := fhirResource{
		"resourceType": "Patient",
		"id":           fhirID,
		"name": []fhirResource{{
			"use":    "official",
			"family": p.LastName,
			"given":  []string{p.FirstName},
		}},
	}
	if p.Gender != nil {
		res["gender"] = *p.Gender
	}
	if p.DateOfBirth != nil {
		res["birthDate"] = p.DateOfBirth.Format("2006-01-02")
	}
	identifiers := []fhirResource{{
		"system": "urn:smartdoc:patient-code",
		"value":  p.PatientCode,
	}}
	if p.MRN != nil {
		identifiers = append(identifiers, fhirResource{
			"system": "urn:smartdoc:mrn",
			"value":  *p.MRN,
		})
	}
	res["identifier"] = identifiers
	return res
}

// buildEncounterResource maps a visit onto an ambulatory FHIR Encounter.
func buildEncounterResource(v *patients.Visit, fhirID, patientRef string) fhirResource {
	res := fhirResource{
		"resourceType": "Encounter",
		"id":           fhirID,
		"status":       "finished",
		"class": fhirResource{
			"system":  actCode,
			"code":    "AMB",
			"display": "ambulatory",
		},
		"subject": fhirResource{"reference": patientRef},
		"period": fhirResource{
			"start": v.VisitDate.UTC().Format(time.RFC3339),
			"end":   v.VisitDate.UTC().Format(time.RFC3339),
		},
	}
	if v.ChiefComplaint != nil && *v.ChiefComplaint != "" {
		res["reasonCode"] = []fhirResource{{"text": *v.ChiefComplaint}}
	}
	return res
}

// buildVitalsObservations turns the visit's vitals map into FHIR
// Observations: a blood pressure panel with systolic/diastolic components,
// plus heart rate and temperature when present.
func buildVitalsObservations(vitals map[string]float64, patientRef, encounterRef string, at time.Time) []fhirResource {
	var out []fhirResource
	ts := at.UTC().Format(time.RFC3339)

	base := func(code, display string) fhirResource {
		res := fhirResource{
			"resourceType": "Observation",
			"id":           uuid.NewString(),
			"status":       "final",
			"category": []fhirResource{{
				"coding": []fhirResource{{
					"system": "http://terminology.hl7.org/CodeSystem/observation-category",
					"code":   "vital-signs",
				}},
			}},
			"code": fhirResource{
				"coding": []fhirResource{{
					"system":  loincSystem,
					"code":    code,
					"display": display,
				}},
			},
			"subject":           fhirResource{"reference": patientRef},
			"effectiveDateTime": ts,
		}
		if encounterRef != "" {
			res["encounter"] = fhirResource{"reference": encounterRef}
		}
		return res
	}

	sys, hasSys := vitals["bp_systolic"]
	dia, hasDia := vitals["bp_diastolic"]
	if hasSys && hasDia {
		bp := base(loincBPPanel, "Blood pressure panel with all children optional")
		bp["component"] = []fhirResource{
			{
				"code": fhirResource{"coding": []fhirResource{{
					"system": loincSystem, "code": loincSystolic, "display": "Systolic blood pressure",
				}}},
				"valueQuantity": fhirResource{"value": sys, "unit": "mmHg"},
			},
			{
				"code": fhirResource{"coding": []fhirResource{{
					"system": loincSystem, "code": loincDiastolic, "display": "Diastolic blood pressure",
				}}},
				"valueQuantity": fhirResource{"value": dia, "unit": "mmHg"},
			},
		}
		out = append(out, bp)
	}

	if hr, ok := vitals["heart_rate"]; ok {
		obs := base(loincHeartRate, "Heart rate")
		obs["valueQuantity"] = fhirResource{"value": hr, "unit": "beats/minute"}
		out = append(out, obs)
	}

	if temp, ok := vitals["temperature"]; ok {
		obs := base(loincBodyTemp, "Body temperature")
		obs["valueQuantity"] = fhirResource{"value": temp, "unit": "degF"}
		out = append(out, obs)
	}

	return out
}

// buildMedicationRequest maps one medication entry onto a FHIR
// MedicationRequest with rxnorm-style coding and structured timing.
func buildMedicationRequest(m patients.Medication, patientRef string, at time.Time) fhirResource {
	res := fhirResource{
		"resourceType": "MedicationRequest",
		"id":           uuid.NewString(),
		"status":       "active",
		"intent":       "order",
		"medicationCodeableConcept": fhirResource{
			"coding": []fhirResource{{
				"system":  rxnormSystem,
				"code":    "rxnorm-" + strings.ReplaceAll(strings.ToLower(m.Name), " ", "-"),
				"display": m.Name,
			}},
			"text": m.Name,
		},
		"subject":    fhirResource{"reference": patientRef},
		"authoredOn": at.UTC().Format(time.RFC3339),
	}

	dosage := fhirResource{
		"text": strings.TrimSpace(fmt.Sprintf("%s %s %s", m.Dose, m.Unit, m.Frequency)),
	}
	if t, ok := frequencyTiming[m.Frequency]; ok {
		dosage["timing"] = fhirResource{
			"repeat": fhirResource{
				"frequency":  t.Frequency,
				"period":     t.Period,
				"periodUnit": t.PeriodUnit,
			},
		}
	}
	if m.Frequency == "prn" {
		dosage["asNeededBoolean"] = true
	}
	if m.Dose != "" {
		dosage["doseAndRate"] = []fhirResource{{
			"doseQuantity": fhirResource{"value": m.Dose, "unit": m.Unit},
		}}
	}

	notes := []fhirResource{}
	if m.FoodInstruction != "" {
		notes = append(notes, fhirResource{"text": "Take " + strings.ToLower(m.FoodInstruction)})
	}
	if m.Instructions != "" {
		notes = append(notes, fhirResource{"text": m.Instructions})
	}
	if len(notes) > 0 {
		res["note"] = notes
	}

	res["dosageInstruction"] = []fhirResource{dosage}
	return res
}

// buildTransactionBundle wraps resources into a FHIR transaction bundle
// with one POST entry per resource.
func buildTransactionBundle(resources []fhirResource) fhirResource {
	entries := make([]fhirResource, 0, len(resources))
	for _, r := range resources {
		entries = append(entries, fhirResource{
			"resource": r,
			"request": fhirResource{
				"method": "POST",
				"url":    r["resourceType"],
			},
		})
	}
	return fhirResource{
		"resourceType": "Bundle",
		"id":           uuid.NewString(),
		"type":         "transaction",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"entry":        entries,
	}
}
