package textproc

import (
	"regexp"
	"strings"
)

// fuzzyThreshold is the minimum similarity for a fuzzy correction.
const fuzzyThreshold = 0.7

// minFuzzyTokenLen guards short tokens from spurious rewrites.
const minFuzzyTokenLen = 4

// Correction records a single rewrite made by the pipeline.
type Correction struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"` // "dictionary" or "fuzzy"
}

// applyDictionary replaces known misspellings and spoken variants with
// their canonical terms, longest phrase first, on word boundaries.
func applyDictionary(text string) (string, []Correction) {
	var corrections []Correction
	for _, key := range orderedSynonyms() {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
		if !re.MatchString(text) {
			continue
		}
		canonical := synonymMap[key]
		text = re.ReplaceAllString(text, canonical)
		corrections = append(corrections, Correction{From: key, To: canonical, Kind: "dictionary"})
	}
	return text, corrections
}

var tokenRE = regexp.MustCompile(`^[a-z]+$`)

// protectedWords are common dictation words that must never be rewritten,
// including the trigger phrases the extractor depends on.
var protectedWords = map[string]bool{
	"patient": true, "doctor": true, "complains": true, "complaining": true,
	"presents": true, "reports": true, "symptoms": true, "include": true,
	"includes": true, "diagnosis": true, "assessment": true, "prescribe": true,
	"prescribed": true, "prescribing": true, "medications": true,
	"medication": true, "started": true, "history": true, "blood": true,
	"pressure": true, "heart": true, "rate": true, "pulse": true,
	"temperature": true, "severe": true, "chest": true, "pain": true,
	"daily": true, "twice": true, "three": true, "four": true, "times": true,
	"needed": true, "hours": true, "every": true, "units": true, "chief": true,
	"complaint": true, "with": true, "follow": true, "weeks": true,
}

// applyFuzzy rewrites unknown tokens to the closest canonical term when the
// similarity clears the threshold. Numbers, units and short tokens are
// left alone.
func applyFuzzy(text string) (string, []Correction) {
	words := strings.Split(text, " ")
	var corrections []Correction

	for i, w := range words {
		token := strings.Trim(w, ",.;:")
		if len(token) < minFuzzyTokenLen || !tokenRE.MatchString(token) ||
			isKnownTerm(token) || protectedWords[token] {
			continue
		}

		best, bestScore := "", 0.0
		for _, term := range canonicalTerms {
			score := similarity(token, term)
			if score > bestScore {
				best, bestScore = term, score
			}
		}

		if bestScore >= fuzzyThreshold && best != token {
			words[i] = strings.Replace(w, token, best, 1)
			corrections = append(corrections, Correction{From: token, To: best, Kind: "fuzzy"})
		}
	}

	return strings.Join(words, " "), corrections
}

// similarity returns 1 - distance/maxLen, where distance is the Levenshtein
// edit distance between the two strings.
func similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
