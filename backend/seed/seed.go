// Package seed fills a fresh database with an admin account and the
// starter exercise sets.
package seed

import (
	"encoding/json"

	"langlearn/backend/models"
	"langlearn/backend/progress"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type content struct {
	Questions []question `json:"questions"`
}

type exerciseSeed struct {
	Title       string
	Description string
	Type        string
	Difficulty  string
	Questions   []question
}

var starterExercises = []exerciseSeed{
	{
		Title:       "Basic Vocabulary Quiz",
		Description: "Test your knowledge of common English words",
		Type:        progress.TypeVocabulary,
		Difficulty:  "beginner",
		Questions: []question{
			{ID: "1", Question: `What is the opposite of "hot"?`, Options: []string{"Cold", "Warm", "Cool", "Freezing"}, CorrectAnswer: "Cold"},
			{ID: "2", Question: `Which word means "to move quickly"?`, Options: []string{"Walk", "Run", "Crawl", "Jump"}, CorrectAnswer: "Run"},
			{ID: "3", Question: `What is a synonym for "happy"?`, Options: []string{"Sad", "Angry", "Joyful", "Tired"}, CorrectAnswer: "Joyful"},
		},
	},
	{
		Title:       "Intermediate Vocabulary Challenge",
		Description: "Expand your vocabulary with these intermediate-level words",
		Type:        progress.TypeVocabulary,
		Difficulty:  "intermediate",
		Questions: []question{
			{ID: "1", Question: `What does "ambiguous" mean?`, Options: []string{"Clear", "Uncertain", "Definite", "Obvious"}, CorrectAnswer: "Uncertain"},
			{ID: "2", Question: `Which word means "to make something better"?`, Options: []string{"Improve", "Worsen", "Maintain", "Destroy"}, CorrectAnswer: "Improve"},
			{ID: "3", Question: `What is the meaning of "perseverance"?`, Options: []string{"Giving up", "Persistence", "Failure", "Success"}, CorrectAnswer: "Persistence"},
		},
	},
	{
		Title:       "Basic Grammar Rules",
		Description: "Learn and practice essential English grammar rules",
		Type:        progress.TypeGrammar,
		Difficulty:  "beginner",
		Questions: []question{
			{ID: "1", Question: "Which sentence is grammatically correct?", Options: []string{"I am going to the store.", "I going to the store.", "I goes to the store.", "I go to the store."}, CorrectAnswer: "I am going to the store."},
			{ID: "2", Question: `What is the correct plural form of "child"?`, Options: []string{"Childs", "Children", "Childes", "Child"}, CorrectAnswer: "Children"},
			{ID: "3", Question: "Which sentence uses the correct past tense?", Options: []string{"I walk to school yesterday.", "I walked to school yesterday.", "I walking to school yesterday.", "I walks to school yesterday."}, CorrectAnswer: "I walked to school yesterday."},
		},
	},
	{
		Title:       "Advanced Grammar Practice",
		Description: "Challenge yourself with complex grammar structures",
		Type:        progress.TypeGrammar,
		Difficulty:  "advanced",
		Questions: []question{
			{ID: "1", Question: "Which sentence uses the subjunctive mood correctly?", Options: []string{"I wish I was taller.", "I wish I were taller.", "I wish I am taller.", "I wish I be taller."}, CorrectAnswer: "I wish I were taller."},
			{ID: "2", Question: "What is the correct form of the conditional sentence?", Options: []string{"If I would have known, I would have helped.", "If I had known, I would have helped.", "If I knew, I would help.", "If I would know, I would help."}, CorrectAnswer: "If I had known, I would have helped."},
			{ID: "3", Question: "Which sentence uses the passive voice correctly?", Options: []string{"The book was written by Shakespeare.", "Shakespeare wrote the book.", "The book wrote by Shakespeare.", "The book is writing by Shakespeare."}, CorrectAnswer: "The book was written by Shakespeare."},
		},
	},
}

// Run seeds the admin user and starter exercises. Safe to call twice:
// an existing admin short-circuits the whole run.
func Run(db *gorm.DB) error {
	var admin models.User
	if err := db.Where("email = ?", "admin@example.com").First(&admin).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&models.UserProgress{UserID: admin.ID, Level: progress.LevelBeginner}).Error; err != nil {
		return err
	}

	for _, e := range starterExercises {
		raw, err := json.Marshal(content{Questions: e.Questions})
		if err != nil {
			return err
		}
		exercise := models.Exercise{
			UserID:      admin.ID,
			Title:       e.Title,
			Description: e.Description,
			Type:        e.Type,
			Difficulty:  e.Difficulty,
			Content:     datatypes.JSON(raw),
		}
		if err := db.Create(&exercise).Error; err != nil {
			return err
		}
	}

	return nil
}
