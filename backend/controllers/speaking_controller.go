package controllers

import (
	"langlearn/backend/config"
	"langlearn/backend/speech"
	"langlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SpeakingController struct {
	Cfg *config.Config
}

func NewSpeakingController(cfg *config.Config) *SpeakingController {
	return &SpeakingController{Cfg: cfg}
}

// Evaluate godoc
// @Summary Grade a speaking attempt
// @Description Scores a speech-recognition transcript against the target phrase
// @Tags speaking
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Transcript and target phrase"
// @Success 200 {object} speech.Evaluation
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /speaking/evaluate [post]
func (sc *SpeakingController) Evaluate(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, sc.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Transcript string `json:"transcript"`
		Target     string `json:"target"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Target == "" {
		return utils.BadRequest(c, "Target phrase is required")
	}

	return c.JSON(speech.Evaluate(input.Transcript, input.Target))
}
