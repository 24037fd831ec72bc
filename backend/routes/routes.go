package routes

import (
	"langlearn/backend/config"
	"langlearn/backend/controllers"
	"langlearn/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress", authMiddleware, progressController.UpdateProgress)

	// Exercises routes. The static /progress path must be registered
	// before the /:id parameter routes.
	exercisesController := controllers.NewExercisesController(db, cfg)
	exercises := app.Group("/api/exercises", authMiddleware)
	exercises.Get("/", exercisesController.GetExercises)
	exercises.Post("/", exercisesController.CreateExercise)
	exercises.Get("/progress", exercisesController.GetExerciseProgress)
	exercises.Get("/:id", exercisesController.GetExerciseDetails)
	exercises.Post("/:id/progress", exercisesController.UpdateExerciseProgress)

	// Speaking routes
	speakingController := controllers.NewSpeakingController(cfg)
	app.Post("/api/speaking/evaluate", authMiddleware, speakingController.Evaluate)

	// Admin routes
	adminExercises := app.Group("/api/admin/exercises", authMiddleware, adminMiddleware)
	adminExercises.Delete("/:id", exercisesController.DeleteExercise)
}
