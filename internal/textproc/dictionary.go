package textproc

import "strings"

// canonicalTerms is the medical vocabulary used for fuzzy correction. Tokens
// close to one of these (similarity >= fuzzyThreshold) are rewritten to it.
var canonicalTerms = []string{
	"hypertension", "hypotension", "diabetes", "mellitus", "asthma",
	"pneumonia", "bronchitis", "migraine", "arthritis", "osteoporosis",
	"anemia", "tachycardia", "bradycardia", "arrhythmia", "angina",
	"gastritis", "hepatitis", "nephritis", "dermatitis", "sinusitis",
	"pharyngitis", "tonsillitis", "appendicitis", "cholecystitis",
	"hyperlipidemia", "hypothyroidism", "hyperthyroidism", "epilepsy",
	"seizure", "vertigo", "syncope", "dyspnea", "fatigue", "nausea",
	"vomiting", "diarrhea", "constipation", "headache", "dizziness",
	"fever", "cough", "wheezing", "palpitations", "insomnia", "anxiety",
	"depression", "allergy", "infection", "inflammation", "fracture",
	"lisinopril", "metformin", "warfarin", "aspirin", "atorvastatin",
	"amlodipine", "metoprolol", "omeprazole", "losartan", "gabapentin",
	"hydrochlorothiazide", "simvastatin", "levothyroxine", "azithromycin",
	"amoxicillin", "prednisone", "ibuprofen", "acetaminophen", "tramadol",
	"sertraline", "fluoxetine", "alprazolam", "clopidogrel", "furosemide",
	"pantoprazole", "montelukast", "albuterol", "insulin", "ciprofloxacin",
	"doxycycline",
}

// synonymMap rewrites known transcription mistakes and spoken variants to
// their canonical spelling. Multi-word keys are matched before single words.
var synonymMap = map[string]string{
	"high blood pressure":  "hypertension",
	"low blood pressure":   "hypotension",
	"sugar disease":        "diabetes",
	"heart burn":           "heartburn",
	"short of breath":      "dyspnea",
	"shortness of breath":  "dyspnea",
	"hypertenshun":         "hypertension",
	"hipertension":         "hypertension",
	"diabetis":             "diabetes",
	"diabeetus":            "diabetes",
	"asthama":              "asthma",
	"ashma":                "asthma",
	"newmonia":             "pneumonia",
	"ammonia lung":         "pneumonia",
	"migrane":              "migraine",
	"arthritus":            "arthritis",
	"anemea":               "anemia",
	"diarrhoea":            "diarrhea",
	"nawsea":               "nausea",
	"vommiting":            "vomiting",
	"lisinipril":           "lisinopril",
	"metforman":            "metformin",
	"warfrin":              "warfarin",
	"asprin":               "aspirin",
	"atorvastatine":        "atorvastatin",
	"omeprazol":            "omeprazole",
	"amoxicilin":           "amoxicillin",
	"ibuprofin":            "ibuprofen",
	"acetaminophin":        "acetaminophen",
	"albuteral":            "albuterol",
}

var canonicalSet = func() map[string]bool {
	set := make(map[string]bool, len(canonicalTerms))
	for _, t := range canonicalTerms {
		set[strings.ToLower(t)] = true
	}
	return set
}()

// isKnownTerm reports whether the token is already a canonical term.
func isKnownTerm(token string) bool {
	return canonicalSet[strings.ToLower(token)]
}

// orderedSynonyms returns synonym keys longest first so multi-word phrases
// win over their substrings.
func orderedSynonyms() []string {
	keys := make([]string, 0, len(synonymMap))
	for k := range synonymMap {
		keys = append(keys, k)
	}
	// Insertion sort by descending length; the map is small.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && len(keys[j]) > len(keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
