package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestApplyCounters(t *testing.T) {
	tests := []struct {
		exerciseType string
		want         func(s Snapshot) int
	}{
		{TypeVocabulary, func(s Snapshot) int { return s.VocabularyWords }},
		{TypeGrammar, func(s Snapshot) int { return s.GrammarExercises }},
		{TypeListening, func(s Snapshot) int { return s.ListeningExercises }},
		{TypeSpeaking, func(s Snapshot) int { return s.SpeakingExercises }},
	}

	for _, tt := range tests {
		t.Run(tt.exerciseType, func(t *testing.T) {
			next := Apply(nil, CompletionEvent{ExerciseType: tt.exerciseType, Score: 10}, day)
			assert.Equal(t, 1, tt.want(next))
			total := next.VocabularyWords + next.GrammarExercises + next.ListeningExercises + next.SpeakingExercises
			assert.Equal(t, 1, total, "only the matching counter should move")
		})
	}
}

func TestApplyUnknownTypeStillScores(t *testing.T) {
	next := Apply(nil, CompletionEvent{ExerciseType: "pronunciation", Score: 40}, day)

	assert.Equal(t, 0, next.VocabularyWords)
	assert.Equal(t, 0, next.GrammarExercises)
	assert.Equal(t, 0, next.ListeningExercises)
	assert.Equal(t, 0, next.SpeakingExercises)
	assert.Equal(t, 40, next.TotalScore)
	assert.Equal(t, 1, next.Streak)
}

func TestApplyScoreAccumulation(t *testing.T) {
	var snap *Snapshot
	scores := []int{10, 0, 35, -5, 100}
	sum := 0
	for _, s := range scores {
		next := Apply(snap, CompletionEvent{ExerciseType: TypeGrammar, Score: s}, day)
		snap = &next
		sum += s
	}
	assert.Equal(t, sum, snap.TotalScore)
	assert.Equal(t, len(scores), snap.GrammarExercises)
}

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, LevelBeginner},
		{499, LevelBeginner},
		{500, LevelIntermediate},
		{999, LevelIntermediate},
		{1000, LevelAdvanced},
		{5000, LevelAdvanced},
		{-100, LevelBeginner},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.total), "total %d", tt.total)
	}
}

func TestApplyLevelCrossing(t *testing.T) {
	cur := Snapshot{TotalScore: 495, Level: LevelBeginner, Streak: 1, LastActivity: day}
	next := Apply(&cur, CompletionEvent{ExerciseType: TypeVocabulary, Score: 5}, day)
	assert.Equal(t, 500, next.TotalScore)
	assert.Equal(t, LevelIntermediate, next.Level)

	cur = Snapshot{TotalScore: 999, Level: LevelIntermediate, Streak: 1, LastActivity: day}
	next = Apply(&cur, CompletionEvent{ExerciseType: TypeVocabulary, Score: 1}, day)
	assert.Equal(t, LevelAdvanced, next.Level)
}

func TestApplyStreak(t *testing.T) {
	yesterday := day.AddDate(0, 0, -1)
	threeDaysAgo := day.AddDate(0, 0, -3)
	tomorrow := day.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		current *Snapshot
		want    int
	}{
		{"first ever completion", nil, 1},
		{"extends from yesterday", &Snapshot{Streak: 5, LastActivity: yesterday}, 6},
		{"same day is a no-op", &Snapshot{Streak: 6, LastActivity: day}, 6},
		{"gap resets to zero", &Snapshot{Streak: 6, LastActivity: threeDaysAgo}, 0},
		{"future date resets to zero", &Snapshot{Streak: 6, LastActivity: tomorrow}, 0},
		{"existing row never active", &Snapshot{Streak: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Apply(tt.current, CompletionEvent{ExerciseType: TypeListening, Score: 10}, day)
			assert.Equal(t, tt.want, next.Streak)
			assert.True(t, sameDay(next.LastActivity, day), "LastActivity must become today")
		})
	}
}

func TestApplyStreakIgnoresTimeOfDay(t *testing.T) {
	// Completion late yesterday, then early today: still consecutive days.
	lateYesterday := time.Date(2025, time.March, 9, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2025, time.March, 10, 0, 1, 0, 0, time.UTC)

	cur := Snapshot{Streak: 2, LastActivity: lateYesterday}
	next := Apply(&cur, CompletionEvent{ExerciseType: TypeSpeaking, Score: 3}, earlyToday)
	assert.Equal(t, 3, next.Streak)
}

func TestApplyZeroScore(t *testing.T) {
	cur := Snapshot{VocabularyWords: 4, TotalScore: 120, Level: LevelBeginner, Streak: 2, LastActivity: day.AddDate(0, 0, -1)}
	next := Apply(&cur, CompletionEvent{ExerciseType: TypeVocabulary, Score: 0}, day)

	assert.Equal(t, 5, next.VocabularyWords)
	assert.Equal(t, 120, next.TotalScore)
	assert.Equal(t, 3, next.Streak)
	assert.True(t, sameDay(next.LastActivity, day))
}

func TestApplyDoesNotMutateCurrent(t *testing.T) {
	cur := Snapshot{VocabularyWords: 1, TotalScore: 50, Streak: 1, LastActivity: day.AddDate(0, 0, -1)}
	before := cur
	Apply(&cur, CompletionEvent{ExerciseType: TypeVocabulary, Score: 25}, day)
	assert.Equal(t, before, cur)
}

func TestValidExerciseType(t *testing.T) {
	for _, valid := range []string{TypeVocabulary, TypeGrammar, TypeListening, TypeSpeaking} {
		assert.True(t, ValidExerciseType(valid))
	}
	for _, invalid := range []string{"", "Vocabulary", "reading", "vocab"} {
		assert.False(t, ValidExerciseType(invalid), invalid)
	}
}
