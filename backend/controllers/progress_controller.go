package controllers

import (
	"errors"
	"sync"
	"time"

	"langlearn/backend/config"
	"langlearn/backend/models"
	"langlearn/backend/progress"
	"langlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config

	// Now supplies the calendar date for streak arithmetic. Tests
	// override it to pin the day.
	Now func() time.Time

	// Serializes load-apply-upsert per user so two concurrent
	// completions cannot lose an update.
	userLocks sync.Map
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Now: time.Now}
}

// ProgressResponse is the snapshot shape returned to the client.
type ProgressResponse struct {
	VocabularyWords    int                  `json:"vocabularyWords"`
	GrammarExercises   int                  `json:"grammarExercises"`
	ListeningExercises int                  `json:"listeningExercises"`
	SpeakingExercises  int                  `json:"speakingExercises"`
	TotalScore         int                  `json:"totalScore"`
	Level              string               `json:"level"`
	Streak             int                  `json:"streak"`
	Achievements       []models.Achievement `json:"achievements"`
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the user's cumulative progress and achievements
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} ProgressResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// Absent snapshot reads as all zeroes at Beginner.
	resp := ProgressResponse{Level: progress.LevelBeginner, Achievements: []models.Achievement{}}

	var record models.UserProgress
	if err := pc.DB.Where("user_id = ?", userID).First(&record).Error; err == nil {
		fillResponse(&resp, &record)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	var achievements []models.Achievement
	pc.DB.Where("user_id = ?", userID).Order("unlocked_at").Find(&achievements)
	if achievements != nil {
		resp.Achievements = achievements
	}

	return c.JSON(resp)
}

// UpdateProgress godoc
// @Summary Record an exercise completion
// @Description Applies a completion event to the user's progress and returns the updated snapshot
// @Tags progress
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Completion event"
// @Success 200 {object} ProgressResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [post]
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		ExerciseType string `json:"exerciseType"`
		Score        *int   `json:"score"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !progress.ValidExerciseType(input.ExerciseType) {
		return utils.BadRequest(c, "Unknown exercise type")
	}
	if input.Score == nil {
		return utils.BadRequest(c, "Score is required")
	}

	lock, _ := pc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	var record models.UserProgress
	var current *progress.Snapshot
	found := true
	if err := pc.DB.Where("user_id = ?", userID).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		found = false
	} else {
		current = &progress.Snapshot{
			VocabularyWords:    record.VocabularyWords,
			GrammarExercises:   record.GrammarExercises,
			ListeningExercises: record.ListeningExercises,
			SpeakingExercises:  record.SpeakingExercises,
			TotalScore:         record.TotalScore,
			Level:              record.Level,
			Streak:             record.Streak,
			LastActivity:       record.LastActivity,
		}
	}

	event := progress.CompletionEvent{ExerciseType: input.ExerciseType, Score: *input.Score}
	next := progress.Apply(current, event, pc.Now())

	record.UserID = userID
	record.VocabularyWords = next.VocabularyWords
	record.GrammarExercises = next.GrammarExercises
	record.ListeningExercises = next.ListeningExercises
	record.SpeakingExercises = next.SpeakingExercises
	record.TotalScore = next.TotalScore
	record.Level = next.Level
	record.Streak = next.Streak
	record.LastActivity = next.LastActivity

	if found {
		err = pc.DB.Save(&record).Error
	} else {
		err = pc.DB.Create(&record).Error
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	achievements, err := pc.awardAchievements(userID, next)
	if err != nil {
		return utils.InternalServerError(c, "Could not save achievements")
	}

	resp := ProgressResponse{Achievements: achievements}
	fillResponse(&resp, &record)
	return c.JSON(resp)
}

// awardAchievements stores any newly qualified badges and returns the
// full unlocked list.
func (pc *ProgressController) awardAchievements(userID uint, snap progress.Snapshot) ([]models.Achievement, error) {
	var unlocked []models.Achievement
	if err := pc.DB.Where("user_id = ?", userID).Find(&unlocked).Error; err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(unlocked))
	for _, a := range unlocked {
		have[a.Type] = true
	}

	for _, badge := range progress.Earned(snap) {
		if have[badge.Type] {
			continue
		}
		achievement := models.Achievement{
			UserID:      userID,
			Type:        badge.Type,
			Title:       badge.Title,
			Description: badge.Description,
			Icon:        badge.Icon,
			UnlockedAt:  pc.Now(),
		}
		if err := pc.DB.Create(&achievement).Error; err != nil {
			return nil, err
		}
		unlocked = append(unlocked, achievement)
	}

	return unlocked, nil
}

func fillResponse(resp *ProgressResponse, record *models.UserProgress) {
	resp.VocabularyWords = record.VocabularyWords
	resp.GrammarExercises = record.GrammarExercises
	resp.ListeningExercises = record.ListeningExercises
	resp.SpeakingExercises = record.SpeakingExercises
	resp.TotalScore = record.TotalScore
	resp.Level = record.Level
	resp.Streak = record.Streak
}
