package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/training_sessions/controller"
)

func TrainingSessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrainingSessionController(db)

	sessions := api.Group("/training-sessions")
	sessions.Post("/", ctrl.CreateTrainingSession)
	sessions.Get("/", ctrl.ListTrainingSessions)
	sessions.Get("/:id", ctrl.GetTrainingSession)
}
