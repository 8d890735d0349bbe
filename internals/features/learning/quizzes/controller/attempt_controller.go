package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/quizzes/dto"
	"counseltrack_backend/internals/features/learning/quizzes/model"
	"counseltrack_backend/internals/features/learning/quizzes/service"
	helper "counseltrack_backend/internals/helpers"
)

// AttemptController is the learner-facing surface of the attempt lifecycle.
type AttemptController struct {
	DB      *gorm.DB
	Service *service.AttemptService
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db, Service: service.NewAttemptService(db)}
}

// GET /api/u/quizzes  (published quizzes only, + pagination, ?q= search)
func (ctrl *AttemptController) GetPublishedQuizzes(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.QuizModel{}).Where("quiz_is_published = TRUE")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(quiz_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count quizzes")
	}

	var quizzes []model.QuizModel
	if err := q.Order("quiz_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list quizzes")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Quizzes", dto.ToQuizResponseList(quizzes), &pagination)
}

// POST /api/u/quizzes/:quizId/attempt — start or resume the caller's attempt.
func (ctrl *AttemptController) StartOrResumeAttempt(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	state, err := ctrl.Service.StartOrResume(c.Context(), quizID, learnerID)
	if err != nil {
		return ctrl.mapAttemptError(c, err, "start attempt")
	}
	return helper.JsonOK(c, "Attempt state", state)
}

// GET /api/u/attempts/:id — resume payload for the owning learner.
func (ctrl *AttemptController) GetAttemptState(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	state, err := ctrl.Service.State(c.Context(), attemptID, learnerID)
	if err != nil {
		return ctrl.mapAttemptError(c, err, "load attempt")
	}
	return helper.JsonOK(c, "Attempt state", state)
}

// POST /api/u/attempts/:id/answers
func (ctrl *AttemptController) SubmitAnswer(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := ctrl.Service.SubmitAnswer(c.Context(), attemptID, learnerID, &req)
	if err != nil {
		return ctrl.mapAttemptError(c, err, "submit answer")
	}
	return helper.JsonOK(c, "Answer recorded", result)
}

// GET /api/u/attempts/:id/results
func (ctrl *AttemptController) GetResults(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	results, err := ctrl.Service.Results(c.Context(), attemptID, learnerID)
	if err != nil {
		return ctrl.mapAttemptError(c, err, "load results")
	}
	return helper.JsonOK(c, "Attempt results", results)
}

func (ctrl *AttemptController) mapAttemptError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrAttemptNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuizHasNoQuestions),
		errors.Is(err, service.ErrQuestionNotInQuiz),
		errors.Is(err, model.ErrOptionOutOfRange):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrAttemptCompleted):
		return helper.JsonError(c, fiber.StatusConflict, "Attempt already completed; see results")
	case errors.Is(err, service.ErrAttemptNotDone):
		return helper.JsonError(c, fiber.StatusConflict, "Attempt not completed yet")
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
