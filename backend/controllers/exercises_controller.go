package controllers

import (
	"errors"
	"strconv"

	"langlearn/backend/config"
	"langlearn/backend/models"
	"langlearn/backend/progress"
	"langlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExercisesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewExercisesController(db *gorm.DB, cfg *config.Config) *ExercisesController {
	return &ExercisesController{DB: db, Cfg: cfg}
}

// GetExercises godoc
// @Summary List exercises
// @Description Returns exercises, optionally filtered by type and difficulty, with the caller's results attached
// @Tags exercises
// @Accept json
// @Produce json
// @Param type query string false "Exercise type"
// @Param difficulty query string false "Difficulty"
// @Success 200 {array} models.Exercise
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercises [get]
func (ec *ExercisesController) GetExercises(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	query := ec.DB.Model(&models.Exercise{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if d := c.Query("difficulty"); d != "" {
		query = query.Where("difficulty = ?", d)
	}

	var exercises []models.Exercise
	if err := query.
		Preload("Progress", "user_id = ?", userID).
		Find(&exercises).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(exercises)
}

// CreateExercise godoc
// @Summary Create an exercise
// @Description Creates a new exercise owned by the caller
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Exercise data"
// @Success 201 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercises [post]
func (ec *ExercisesController) CreateExercise(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Type        string         `json:"type"`
		Difficulty  string         `json:"difficulty"`
		Content     datatypes.JSON `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Description == "" || input.Difficulty == "" || len(input.Content) == 0 {
		return utils.BadRequest(c, "Missing required fields")
	}
	if !progress.ValidExerciseType(input.Type) {
		return utils.BadRequest(c, "Unknown exercise type")
	}

	exercise := models.Exercise{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Difficulty:  input.Difficulty,
		Content:     input.Content,
	}
	if err := ec.DB.Create(&exercise).Error; err != nil {
		return utils.InternalServerError(c, "Could not create exercise")
	}

	return utils.Created(c, exercise)
}

// GetExerciseDetails godoc
// @Summary Get one exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercises/{id} [get]
func (ec *ExercisesController) GetExerciseDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	exerciseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid exercise ID")
	}

	var exercise models.Exercise
	if err := ec.DB.
		Preload("Progress", "user_id = ?", userID).
		First(&exercise, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercise not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(exercise)
}

// UpdateExerciseProgress godoc
// @Summary Record a result for one exercise
// @Description Upserts the caller's score and completion flag for the exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise ID"
// @Param request body map[string]interface{} true "Result data"
// @Success 200 {object} models.ExerciseProgress
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercises/{id}/progress [post]
func (ec *ExercisesController) UpdateExerciseProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	exerciseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid exercise ID")
	}

	var input struct {
		Score     int   `json:"score"`
		Completed *bool `json:"completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Completed == nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	var exercise models.Exercise
	if err := ec.DB.First(&exercise, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercise not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var record models.ExerciseProgress
	if err := ec.DB.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		record = models.ExerciseProgress{
			UserID:     userID,
			ExerciseID: uint(exerciseID),
		}
	}

	record.Score = input.Score
	record.Completed = *input.Completed
	if err := ec.DB.Save(&record).Error; err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return c.JSON(record)
}

// GetExerciseProgress godoc
// @Summary List the caller's exercise results
// @Description Returns the caller's per-exercise results, newest first
// @Tags exercises
// @Accept json
// @Produce json
// @Success 200 {array} models.ExerciseProgress
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exercises/progress [get]
func (ec *ExercisesController) GetExerciseProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var records []models.ExerciseProgress
	if err := ec.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(records)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/exercises/{id} [delete]
func (ec *ExercisesController) DeleteExercise(c *fiber.Ctx) error {
	exerciseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid exercise ID")
	}

	var exercise models.Exercise
	if err := ec.DB.First(&exercise, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercise not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := ec.DB.Delete(&exercise).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete exercise")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
