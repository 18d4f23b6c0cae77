package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

var fillerWords = map[string]bool{
	"um": true, "uh": true, "er": true, "ah": true, "hmm": true,
}

var fillerPhrases = []string{"you know", "i mean", "sort of", "kind of"}

var whitespaceRE = regexp.MustCompile(`\s+`)

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20, "thirty": 30,
	"forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100,
}

// spokenBPRE matches spoken blood pressure readings such as
// "one twenty over eighty" or "ninety five over sixty".
var spokenBPRE = regexp.MustCompile(`\b((?:[a-z]+ ){1,3})over ((?:[a-z]+ ?){1,3})\b`)

// normalize lowercases the text, removes filler words, converts spoken
// blood pressure readings to numeric form, and collapses whitespace.
func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))

	for _, phrase := range fillerPhrases {
		s = strings.ReplaceAll(s, phrase, " ")
	}

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if fillerWords[strings.Trim(w, ",.")] {
			continue
		}
		kept = append(kept, w)
	}
	s = strings.Join(kept, " ")

	s = spokenBPRE.ReplaceAllStringFunc(s, func(m string) string {
		parts := spokenBPRE.FindStringSubmatch(m)

		// The left capture is greedy and may include leading words that are
		// not numbers ("pressure one twenty"); keep those as a prefix.
		leftWords := strings.Fields(parts[1])
		i := 0
		for i < len(leftWords) && !isNumberWord(leftWords[i]) {
			i++
		}
		prefix := strings.Join(leftWords[:i], " ")
		sys, okA := parseSpokenNumber(strings.Join(leftWords[i:], " "))

		// Symmetrically, the right capture may run past the number into
		// following words; keep those as a suffix.
		rightWords := strings.Fields(parts[2])
		j := 0
		for j < len(rightWords) && isNumberWord(rightWords[j]) {
			j++
		}
		suffix := strings.Join(rightWords[j:], " ")
		dia, okB := parseSpokenNumber(strings.Join(rightWords[:j], " "))

		if !okA || !okB || sys == 0 || dia == 0 {
			return m
		}

		out := strconv.Itoa(sys) + "/" + strconv.Itoa(dia)
		if prefix != "" {
			out = prefix + " " + out
		}
		if suffix != "" {
			out = out + " " + suffix
		}
		return out
	})

	return whitespaceRE.ReplaceAllString(s, " ")
}

func isNumberWord(w string) bool {
	_, ok := numberWords[w]
	return ok
}

// parseSpokenNumber converts a spoken number like "eighty", "ninety five",
// "one hundred twenty" or the concatenated form "one twenty" (120) to its
// numeric value. Returns false when any word is not a number word.
func parseSpokenNumber(s string) (int, bool) {
	words := strings.Fields(strings.TrimSpace(s))
	if len(words) == 0 {
		return 0, false
	}

	total := 0
	for _, w := range words {
		n, ok := numberWords[w]
		if !ok {
			return 0, false
		}
		switch {
		case n == 100:
			if total == 0 {
				total = 100
			} else {
				total *= 100
			}
		case n >= 10:
			if total > 0 && total < 10 {
				// "one twenty" is spoken shorthand for 120
				total = total*100 + n
			} else {
				total += n
			}
		default:
			if total >= 20 && total%10 == 0 {
				total += n
			} else if total > 0 {
				total = total*10 + n
			} else {
				total = n
			}
		}
	}
	return total, true
}
