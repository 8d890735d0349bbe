package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/quizzes/dto"
	"counseltrack_backend/internals/features/learning/quizzes/model"
	helper "counseltrack_backend/internals/helpers"
)

// QuizQuestionAdminController manages the question bank of one quiz.
type QuizQuestionAdminController struct {
	DB *gorm.DB
}

func NewQuizQuestionAdminController(db *gorm.DB) *QuizQuestionAdminController {
	return &QuizQuestionAdminController{DB: db}
}

func (ctrl *QuizQuestionAdminController) loadQuiz(c *fiber.Ctx) (*model.QuizModel, error) {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	var quiz model.QuizModel
	if err := ctrl.DB.Where("quiz_id = ?", quizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}
	return &quiz, nil
}

// POST /api/a/quizzes/:quizId/questions
func (ctrl *QuizQuestionAdminController) CreateQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if quiz == nil {
		return err
	}

	var req dto.UpsertQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	question := model.QuizQuestionModel{
		QuizQuestionQuizID:   quiz.QuizID,
		QuizQuestionText:     req.QuizQuestionText,
		QuizQuestionPosition: req.QuizQuestionPosition,
	}
	if err := question.SetOptions(req.QuizQuestionOptions, req.QuizQuestionCorrectIndex); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.DB.Create(&question).Error; err != nil {
		log.Printf("[ERROR] create question quiz=%s: %v", quiz.QuizID, err)
		return helper.JsonError(c, fiber.StatusConflict, "Position already taken in this quiz")
	}

	out, err := dto.ToAdminQuestionResponse(&question)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode question options")
	}
	return helper.JsonCreated(c, "Question created", out)
}

// GET /api/a/quizzes/:quizId/questions
func (ctrl *QuizQuestionAdminController) GetQuestions(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if quiz == nil {
		return err
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_quiz_id = ?", quiz.QuizID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list questions")
	}

	out := make([]dto.AdminQuestionResponse, 0, len(questions))
	for i := range questions {
		item, err := dto.ToAdminQuestionResponse(&questions[i])
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode question options")
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "Questions", out)
}

// PATCH /api/a/quizzes/:quizId/questions/:id
func (ctrl *QuizQuestionAdminController) UpdateQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if quiz == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var req dto.UpsertQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_id = ? AND quiz_question_quiz_id = ?", id, quiz.QuizID).
		First(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	question.QuizQuestionText = req.QuizQuestionText
	question.QuizQuestionPosition = req.QuizQuestionPosition
	if err := question.SetOptions(req.QuizQuestionOptions, req.QuizQuestionCorrectIndex); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		log.Printf("[ERROR] update question %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusConflict, "Position already taken in this quiz")
	}

	out, err := dto.ToAdminQuestionResponse(&question)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode question options")
	}
	return helper.JsonUpdated(c, "Question updated", out)
}

// DELETE /api/a/quizzes/:quizId/questions/:id
func (ctrl *QuizQuestionAdminController) DeleteQuestion(c *fiber.Ctx) error {
	quiz, err := ctrl.loadQuiz(c)
	if quiz == nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_id = ? AND quiz_question_quiz_id = ?", id, quiz.QuizID).
		First(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	if err := ctrl.DB.Delete(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", nil)
}
