package textproc

import (
	"regexp"
	"strings"
)

// MedicationEntry is a structured medication parsed from dictation.
type MedicationEntry struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Unit      string `json:"unit"`
	Frequency string `json:"frequency"`
}

// frequencyWords maps spoken frequency phrases to their clinical codes.
// Longer phrases are matched before shorter ones.
var frequencyWords = []struct {
	Phrase string
	Code   string
}{
	{"four times daily", "qid"},
	{"four times a day", "qid"},
	{"three times daily", "tid"},
	{"three times a day", "tid"},
	{"twice daily", "bid"},
	{"twice a day", "bid"},
	{"two times a day", "bid"},
	{"once daily", "daily"},
	{"once a day", "daily"},
	{"every day", "daily"},
	{"every 4 hours", "q4h"},
	{"every four hours", "q4h"},
	{"every 6 hours", "q6h"},
	{"every six hours", "q6h"},
	{"every 8 hours", "q8h"},
	{"every eight hours", "q8h"},
	{"every 12 hours", "q12h"},
	{"every twelve hours", "q12h"},
	{"as needed", "prn"},
	{"when needed", "prn"},
	{"at bedtime", "daily"},
	{"weekly", "weekly"},
	{"daily", "daily"},
	{"qid", "qid"},
	{"tid", "tid"},
	{"bid", "bid"},
	{"prn", "prn"},
}

// medLineRE matches "name dose unit ..." such as "metformin 500 mg twice daily".
var medLineRE = regexp.MustCompile(`\b([a-z]+)\s+(\d+(?:\.\d+)?)\s*(mg|mcg|g|ml|units?)\b([^,;.]*)`)

// parseMedications extracts structured medication entries from a
// medication segment of the corrected text.
func parseMedications(segment string) []MedicationEntry {
	var entries []MedicationEntry

	for _, m := range medLineRE.FindAllStringSubmatch(segment, -1) {
		unit := m[3]
		if unit == "unit" {
			unit = "units"
		}
		entry := MedicationEntry{
			Name: m[1],
			Dose: m[2],
			Unit: unit,
		}
		if freq := matchFrequency(m[4]); freq != "" {
			entry.Frequency = freq
		} else if freq := matchFrequency(segment); freq != "" {
			entry.Frequency = freq
		} else {
			entry.Frequency = "daily"
		}
		entries = append(entries, entry)
	}

	return entries
}

func matchFrequency(s string) string {
	s = strings.ToLower(s)
	for _, fw := range frequencyWords {
		if strings.Contains(s, fw.Phrase) {
			return fw.Code
		}
	}
	return ""
}
