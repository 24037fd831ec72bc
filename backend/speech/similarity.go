// Package speech scores a speech-recognition transcript against the
// target phrase. Recognition itself happens on the client; the server
// only grades the returned text.
package speech

import "strings"

// Feedback tiers for the graded accuracy.
const (
	passThreshold  = 80
	retryThreshold = 60
)

// Similarity returns the word-overlap ratio between two phrases in
// [0, 1]: the number of words of a that also occur in b, divided by the
// longer word count. Comparison is case-insensitive.
func Similarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 0
	}

	inB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		inB[w] = true
	}

	matches := 0
	for _, w := range wordsA {
		if inB[w] {
			matches++
		}
	}

	longest := len(wordsA)
	if len(wordsB) > longest {
		longest = len(wordsB)
	}
	return float64(matches) / float64(longest)
}

// Evaluation is the graded result of one speaking attempt.
type Evaluation struct {
	Accuracy int    `json:"accuracy"` // percentage, 0-100
	Passed   bool   `json:"passed"`
	Feedback string `json:"feedback"`
}

// Evaluate grades a transcript against the target phrase.
func Evaluate(transcript, target string) Evaluation {
	pct := int(Similarity(transcript, target)*100 + 0.5)

	switch {
	case pct >= passThreshold:
		return Evaluation{Accuracy: pct, Passed: true, Feedback: "Great job!"}
	case pct >= retryThreshold:
		return Evaluation{Accuracy: pct, Feedback: "Good effort! Try again to improve."}
	default:
		return Evaluation{Accuracy: pct, Feedback: "Keep practicing! Try to match the text more closely."}
	}
}
