package patients

import (
	"math/rand"
	"regexp"
	"strings"
)

// Patient codes are two uppercase letters followed by four to six digits,
// e.g. "KD48291". They are easy to read back over the phone.
var patientCodeRE = regexp.MustCompile(`^[A-Z]{2}\d{4,6}$`)

const codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generatePatientCode produces a random patient code.
func generatePatientCode() string {
	var b strings.Builder
	b.WriteByte(codeLetters[rand.Intn(len(codeLetters))])
	b.WriteByte(codeLetters[rand.Intn(len(codeLetters))])

	digits := 4 + rand.Intn(3)
	for i := 0; i < digits; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// ValidPatientCode reports whether s is a well-formed patient code.
func ValidPatientCode(s string) bool {
	return patientCodeRE.MatchString(s)
}
