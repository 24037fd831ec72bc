package progress

// Badge describes an achievement a snapshot qualifies for. The caller
// diffs the result of Earned against already-unlocked rows and stores
// the new ones.
type Badge struct {
	Type        string
	Title       string
	Description string
	Icon        string
}

type badgeRule struct {
	badge     Badge
	qualifies func(s Snapshot) bool
}

var badgeRules = []badgeRule{
	{
		badge: Badge{
			Type:        "first_steps",
			Title:       "First Steps",
			Description: "Complete your first exercise",
			Icon:        "🎯",
		},
		qualifies: func(s Snapshot) bool { return completions(s) >= 1 },
	},
	{
		badge: Badge{
			Type:        "word_collector",
			Title:       "Word Collector",
			Description: "Complete 25 vocabulary exercises",
			Icon:        "📚",
		},
		qualifies: func(s Snapshot) bool { return s.VocabularyWords >= 25 },
	},
	{
		badge: Badge{
			Type:        "week_streak",
			Title:       "On Fire",
			Description: "Practice 7 days in a row",
			Icon:        "🔥",
		},
		qualifies: func(s Snapshot) bool { return s.Streak >= 7 },
	},
	{
		badge: Badge{
			Type:        "intermediate",
			Title:       "Moving Up",
			Description: "Reach the Intermediate level",
			Icon:        "⭐",
		},
		qualifies: func(s Snapshot) bool { return s.TotalScore >= 500 },
	},
	{
		badge: Badge{
			Type:        "advanced",
			Title:       "Polyglot in the Making",
			Description: "Reach the Advanced level",
			Icon:        "🏆",
		},
		qualifies: func(s Snapshot) bool { return s.TotalScore >= 1000 },
	},
}

// Earned returns every badge the snapshot currently qualifies for, in a
// stable order.
func Earned(s Snapshot) []Badge {
	var out []Badge
	for _, r := range badgeRules {
		if r.qualifies(s) {
			out = append(out, r.badge)
		}
	}
	return out
}

func completions(s Snapshot) int {
	return s.VocabularyWords + s.GrammarExercises + s.ListeningExercises + s.SpeakingExercises
}
