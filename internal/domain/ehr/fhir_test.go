package ehr

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartdoc/smartdoc/internal/domain/patients"
)

func testPatient() *patients.Patient {
	dob := time.Date(1980, 3, 15, 0, 0, 0, 0, time.UTC)
	gender := "female"
	return &patients.Patient{
		ID:          uuid.New(),
		PatientCode: "KD4829",
		FirstName:   "Alice",
		LastName:    "Nguyen",
		Gender:      &gender,
		DateOfBirth: &dob,
	}
}

func coding(res fhirResource, key string) fhirResource {
	concept := res[key].(fhirResource)
	return concept["coding"].([]fhirResource)[0]
}

func TestBuildPatientResource(t *testing.T) {
	res := buildPatientResource(testPatient(), "fhir-1")

	if res["resourceType"] != "Patient" {
		t.Errorf("expected Patient, got %v", res["resourceType"])
	}
	if res["birthDate"] != "1980-03-15" {
		t.Errorf("expected birthDate 1980-03-15, got %v", res["birthDate"])
	}
	if res["gender"] != "female" {
		t.Errorf("expected gender female, got %v", res["gender"])
	}
	ids := res["identifier"].([]fhirResource)
	if len(ids) != 1 || ids[0]["value"] != "KD4829" {
		t.Errorf("expected patient code identifier, got %v", ids)
	}
}

func TestBuildEncounterResource(t *testing.T) {
	cc := "chest pain"
	v := &patients.Visit{
		VisitDate:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		ChiefComplaint: &cc,
	}

	res := buildEncounterResource(v, "enc-1", "Patient/p-1")
	if res["status"] != "finished" {
		t.Errorf("expected finished, got %v", res["status"])
	}
	class := res["class"].(fhirResource)
	if class["code"] != "AMB" {
		t.Errorf("expected AMB class, got %v", class["code"])
	}
	reasons := res["reasonCode"].([]fhirResource)
	if reasons[0]["text"] != "chest pain" {
		t.Errorf("expected chief complaint as reason, got %v", reasons)
	}
}

func TestBuildVitalsObservations_BPPanel(t *testing.T) {
	vitals := map[string]float64{"bp_systolic": 140, "bp_diastolic": 90}
	obs := buildVitalsObservations(vitals, "Patient/p-1", "Encounter/e-1", time.Now())

	if len(obs) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(obs))
	}
	if code := coding(obs[0], "code"); code["code"] != loincBPPanel {
		t.Errorf("expected LOINC %s, got %v", loincBPPanel, code["code"])
	}

	components := obs[0]["component"].([]fhirResource)
	if len(components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(components))
	}
	if code := coding(components[0], "code"); code["code"] != loincSystolic {
		t.Errorf("expected systolic LOINC %s, got %v", loincSystolic, code["code"])
	}
	if code := coding(components[1], "code"); code["code"] != loincDiastolic {
		t.Errorf("expected diastolic LOINC %s, got %v", loincDiastolic, code["code"])
	}
	sysVal := components[0]["valueQuantity"].(fhirResource)
	if sysVal["value"] != 140.0 {
		t.Errorf("expected systolic 140, got %v", sysVal["value"])
	}
}

func TestBuildVitalsObservations_HeartRateAndTemp(t *testing.T) {
	vitals := map[string]float64{"heart_rate": 72, "temperature": 98.6}
	obs := buildVitalsObservations(vitals, "Patient/p-1", "", time.Now())

	if len(obs) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs))
	}
	codes := map[interface{}]bool{}
	for _, o := range obs {
		codes[coding(o, "code")["code"]] = true
	}
	if !codes[loincHeartRate] || !codes[loincBodyTemp] {
		t.Errorf("expected heart rate and temperature observations, got %v", codes)
	}
}

func TestBuildVitalsObservations_PartialBP(t *testing.T) {
	obs := buildVitalsObservations(map[string]float64{"bp_systolic": 140}, "Patient/p-1", "", time.Now())
	if len(obs) != 0 {
		t.Errorf("expected no BP panel without diastolic, got %d observations", len(obs))
	}
}

func TestBuildMedicationRequest_Timing(t *testing.T) {
	m := patients.Medication{Name: "Metformin", Dose: "500", Unit: "mg", Frequency: "bid"}
	res := buildMedicationRequest(m, "Patient/p-1", time.Now())

	med := coding(res, "medicationCodeableConcept")
	if med["code"] != "rxnorm-metformin" {
		t.Errorf("expected rxnorm-metformin, got %v", med["code"])
	}

	dosage := res["dosageInstruction"].([]fhirResource)[0]
	repeat := dosage["timing"].(fhirResource)["repeat"].(fhirResource)
	if repeat["frequency"] != 2 {
		t.Errorf("expected frequency 2 for bid, got %v", repeat["frequency"])
	}
	if repeat["periodUnit"] != "d" {
		t.Errorf("expected daily period, got %v", repeat["periodUnit"])
	}
	dose := dosage["doseAndRate"].([]fhirResource)[0]["doseQuantity"].(fhirResource)
	if dose["value"] != "500" || dose["unit"] != "mg" {
		t.Errorf("unexpected dose quantity: %v", dose)
	}
}

func TestBuildMedicationRequest_PRN(t *testing.T) {
	m := patients.Medication{Name: "ibuprofen", Dose: "400", Unit: "mg", Frequency: "prn"}
	res := buildMedicationRequest(m, "Patient/p-1", time.Now())

	dosage := res["dosageInstruction"].([]fhirResource)[0]
	if dosage["asNeededBoolean"] != true {
		t.Error("expected asNeededBoolean for prn")
	}
}

func TestBuildTransactionBundle(t *testing.T) {
	resources := []fhirResource{
		{"resourceType": "Patient"},
		{"resourceType": "Encounter"},
	}
	bundle := buildTransactionBundle(resources)

	if bundle["type"] != "transaction" {
		t.Errorf("expected transaction bundle, got %v", bundle["type"])
	}
	entries := bundle["entry"].([]fhirResource)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	req := entries[0]["request"].(fhirResource)
	if req["method"] != "POST" || req["url"] != "Patient" {
		t.Errorf("unexpected entry request: %v", req)
	}
}
