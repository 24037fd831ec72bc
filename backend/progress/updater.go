// Package progress implements the cumulative progress update rule that
// runs on every exercise completion: category counters, total score,
// level derivation and the calendar-day streak. Everything here is a
// pure computation over an injected date so it can be tested without a
// request context or a real clock; persistence belongs to the caller.
package progress

import "time"

// Exercise categories. Each completion increments exactly one counter.
const (
	TypeVocabulary = "vocabulary"
	TypeGrammar    = "grammar"
	TypeListening  = "listening"
	TypeSpeaking   = "speaking"
)

// Proficiency levels derived from the cumulative score.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Snapshot is a user's cumulative progress state.
type Snapshot struct {
	VocabularyWords    int
	GrammarExercises   int
	ListeningExercises int
	SpeakingExercises  int
	TotalScore         int
	Level              string
	Streak             int
	LastActivity       time.Time
}

// CompletionEvent signals that a user finished one exercise.
type CompletionEvent struct {
	ExerciseType string
	Score        int
}

// ValidExerciseType reports whether t is one of the four categories.
// Callers must reject anything else before invoking Apply.
func ValidExerciseType(t string) bool {
	switch t {
	case TypeVocabulary, TypeGrammar, TypeListening, TypeSpeaking:
		return true
	}
	return false
}

// LevelForScore derives the proficiency level from a cumulative score.
// It is recomputed fresh on every update, never incremented.
func LevelForScore(total int) string {
	switch {
	case total >= 1000:
		return LevelAdvanced
	case total >= 500:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Apply computes the next snapshot from the current one and a completion
// event. current is nil when the user has no snapshot yet. today is the
// current calendar date; time-of-day is ignored.
//
// The event type acts purely as a counter selector: an unmatched type
// increments no counter but still contributes to score, level and
// streak. Score is accumulated without clamping.
func Apply(current *Snapshot, event CompletionEvent, today time.Time) Snapshot {
	var next Snapshot
	if current != nil {
		next = *current
	}

	switch event.ExerciseType {
	case TypeVocabulary:
		next.VocabularyWords++
	case TypeGrammar:
		next.GrammarExercises++
	case TypeListening:
		next.ListeningExercises++
	case TypeSpeaking:
		next.SpeakingExercises++
	}

	next.TotalScore += event.Score
	next.Level = LevelForScore(next.TotalScore)

	// Streak compares calendar days only. A zero LastActivity on an
	// existing row means the user was never active and counts as absent.
	switch {
	case current == nil || current.LastActivity.IsZero() || sameDay(current.LastActivity, today.AddDate(0, 0, -1)):
		next.Streak++
	case sameDay(current.LastActivity, today):
		// Second completion on the same day: streak unchanged.
	default:
		// Gap of two or more days, or a future date from clock skew.
		next.Streak = 0
	}
	next.LastActivity = dateOf(today)

	return next
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
