package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress is the single cumulative progress record per user.
// It is created empty at registration and mutated only through the
// progress update rule on exercise completion.
type UserProgress struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null"`
	VocabularyWords    int    `gorm:"default:0"`
	GrammarExercises   int    `gorm:"default:0"`
	ListeningExercises int    `gorm:"default:0"`
	SpeakingExercises  int    `gorm:"default:0"`
	TotalScore         int    `gorm:"default:0"`
	Level              string `gorm:"default:Beginner"` // Beginner, Intermediate, Advanced
	Streak             int    `gorm:"default:0"`
	LastActivity       time.Time
}

type Achievement struct {
	gorm.Model
	UserID      uint   `gorm:"index:idx_user_achievement,unique"`
	Type        string `gorm:"index:idx_user_achievement,unique"`
	Title       string
	Description string
	Icon        string
	UnlockedAt  time.Time
}
