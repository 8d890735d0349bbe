package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/learning/quizzes/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// QuizAdminRoutes mounts quiz and question management under the admin group.
func QuizAdminRoutes(router fiber.Router, db *gorm.DB) {
	quizCtrl := controller.NewQuizAdminController(db)
	questionCtrl := controller.NewQuizQuestionAdminController(db)

	quizzes := router.Group("/quizzes",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("quiz management"), constants.MentorAndAbove...),
	)

	quizzes.Post("/", quizCtrl.CreateQuiz)
	quizzes.Get("/", quizCtrl.GetAllQuizzes)
	quizzes.Get("/:id", quizCtrl.GetQuizByID)
	quizzes.Patch("/:id", quizCtrl.UpdateQuiz)
	quizzes.Delete("/:id", quizCtrl.DeleteQuiz)

	quizzes.Post("/:quizId/questions", questionCtrl.CreateQuestion)
	quizzes.Get("/:quizId/questions", questionCtrl.GetQuestions)
	quizzes.Patch("/:quizId/questions/:id", questionCtrl.UpdateQuestion)
	quizzes.Delete("/:quizId/questions/:id", questionCtrl.DeleteQuestion)
}
