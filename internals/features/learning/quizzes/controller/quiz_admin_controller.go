package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/quizzes/dto"
	"counseltrack_backend/internals/features/learning/quizzes/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateQuiz = validator.New()

// QuizAdminController covers mentor/admin quiz management: CRUD plus the
// publish toggle.
type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// POST /api/a/quizzes
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "quizzes", "quiz_slug",
		helper.Slugify(req.QuizTitle, 120), nil, 120)
	if err != nil {
		log.Printf("[ERROR] quiz slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	quiz := model.QuizModel{
		QuizTitle:       req.QuizTitle,
		QuizSlug:        slug,
		QuizDescription: req.QuizDescription,
		QuizCourseID:    req.QuizCourseID,
	}
	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		log.Printf("[ERROR] create quiz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizResponse(&quiz))
}

// GET /api/a/quizzes  (+ pagination, ?q= title search, ?published= filter)
func (ctrl *QuizAdminController) GetAllQuizzes(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.QuizModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(quiz_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if published := strings.TrimSpace(c.Query("published")); published != "" {
		q = q.Where("quiz_is_published = ?", published == "true")
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

// GET /api/a/quizzes/:id  (detail including questions with answer keys)
func (ctrl *QuizAdminController) GetQuizByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Where("quiz_id = ?", id).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.
		Where("quiz_question_quiz_id = ?", quiz.QuizID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	questionsOut := make([]dto.AdminQuestionResponse, 0, len(questions))
	for i := range questions {
		item, err := dto.ToAdminQuestionResponse(&questions[i])
		if err != nil {
			log.Printf("[ERROR] question %s options: %v", questions[i].QuizQuestionID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode question options")
		}
		questionsOut = append(questionsOut, item)
	}

	return helper.JsonOK(c, "Quiz detail", fiber.Map{
		"quiz":      dto.ToQuizResponse(&quiz),
		"questions": questionsOut,
	})
}

// PATCH /api/a/quizzes/:id
func (ctrl *QuizAdminController) UpdateQuiz(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Where("quiz_id = ?", id).First(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}

	if req.QuizTitle != nil && *req.QuizTitle != quiz.QuizTitle {
		quiz.QuizTitle = *req.QuizTitle
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "quizzes", "quiz_slug",
			helper.Slugify(*req.QuizTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("quiz_id <> ?", quiz.QuizID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		quiz.QuizSlug = slug
	}
	if req.QuizDescription != nil {
		quiz.QuizDescription = req.QuizDescription
	}
	if req.QuizCourseID != nil {
		quiz.QuizCourseID = req.QuizCourseID
	}
	if req.QuizIsPublished != nil {
		if *req.QuizIsPublished && !quiz.QuizIsPublished {
			// Refuse to publish a quiz nobody can take.
			var count int64
			if err := ctrl.DB.Model(&model.QuizQuestionModel{}).
				Where("quiz_question_quiz_id = ?", quiz.QuizID).
				Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
			}
			if count == 0 {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Cannot publish a quiz with no questions")
			}
		}
		quiz.QuizIsPublished = *req.QuizIsPublished
	}

	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		log.Printf("[ERROR] update quiz %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
	}

	return helper.JsonUpdated(c, "Quiz updated", dto.ToQuizResponse(&quiz))
}

// DELETE /api/a/quizzes/:id (soft delete)
func (ctrl *QuizAdminController) DeleteQuiz(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Where("quiz_id = ?", id).First(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}
	if err := ctrl.DB.Delete(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}
	return helper.JsonDeleted(c, "Quiz deleted", nil)
}
