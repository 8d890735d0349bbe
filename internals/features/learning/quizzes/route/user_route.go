package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/quizzes/controller"
)

// QuizUserRoutes mounts the learner-facing quiz and attempt endpoints under
// the authenticated group.
func QuizUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttemptController(db)

	router.Get("/quizzes", ctrl.GetPublishedQuizzes)
	router.Post("/quizzes/:quizId/attempt", ctrl.StartOrResumeAttempt)

	router.Get("/attempts/:id", ctrl.GetAttemptState)
	router.Post("/attempts/:id/answers", ctrl.SubmitAnswer)
	router.Get("/attempts/:id/results", ctrl.GetResults)
}
