package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Exercise struct {
	gorm.Model
	UserID      uint   `gorm:"index"` // author
	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"index;not null"` // vocabulary, grammar, listening, speaking
	Difficulty  string `gorm:"index"`          // beginner, intermediate, advanced
	Content     datatypes.JSON

	Progress []ExerciseProgress `gorm:"foreignKey:ExerciseID"`
}

// ExerciseProgress is one user's result on one exercise, upserted on
// every submission.
type ExerciseProgress struct {
	gorm.Model
	UserID     uint `gorm:"index:idx_user_exercise,unique"`
	ExerciseID uint `gorm:"index:idx_user_exercise,unique"`
	Score      int  `gorm:"default:0"`
	Completed  bool `gorm:"default:false"`
}
