package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/case_studies/dto"
	"counseltrack_backend/internals/features/learning/case_studies/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateCase = validator.New()

type CaseStudyController struct {
	DB *gorm.DB
}

func NewCaseStudyController(db *gorm.DB) *CaseStudyController {
	return &CaseStudyController{DB: db}
}

// GET /api/u/case-studies  (published, list without body)
func (ctrl *CaseStudyController) GetPublishedCaseStudies(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CaseStudyModel{}).Where("case_study_is_published = TRUE")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(case_study_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count case studies")
	}

	var cases []model.CaseStudyModel
	if err := q.Order("case_study_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&cases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list case studies")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Case studies", dto.ToCaseStudyResponseList(cases), &pagination)
}

// GET /api/u/case-studies/:slug  (full narrative + caller's reflection, if any)
func (ctrl *CaseStudyController) GetPublishedCaseStudyBySlug(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var cs model.CaseStudyModel
	if err := ctrl.DB.
		Where("LOWER(case_study_slug) = ? AND case_study_is_published = TRUE", slug).
		First(&cs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Case study not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load case study")
	}

	body := fiber.Map{"case_study": dto.ToCaseStudyResponse(&cs, true)}

	var reflection model.CaseReflectionModel
	err = ctrl.DB.
		Where("case_reflection_case_study_id = ? AND case_reflection_learner_id = ?", cs.CaseStudyID, learnerID).
		First(&reflection).Error
	if err == nil {
		r := dto.ToCaseReflectionResponse(&reflection)
		body["my_reflection"] = r
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reflection")
	}

	return helper.JsonOK(c, "Case study detail", body)
}

// PUT /api/u/case-studies/:slug/reflection — create or replace the caller's
// reflection. One row per (case, learner); the upsert keeps it that way under
// concurrent submits.
func (ctrl *CaseStudyController) SubmitReflection(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var req dto.SubmitReflectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCase.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cs model.CaseStudyModel
	if err := ctrl.DB.
		Where("LOWER(case_study_slug) = ? AND case_study_is_published = TRUE", slug).
		First(&cs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Case study not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load case study")
	}

	if err := ctrl.DB.Exec(`
		INSERT INTO case_reflections (case_reflection_case_study_id, case_reflection_learner_id, case_reflection_body)
		VALUES (?, ?, ?)
		ON CONFLICT (case_reflection_case_study_id, case_reflection_learner_id)
		DO UPDATE SET case_reflection_body = EXCLUDED.case_reflection_body,
		              case_reflection_updated_at = now()
	`, cs.CaseStudyID, learnerID, req.CaseReflectionBody).Error; err != nil {
		log.Printf("[ERROR] submit reflection case=%s learner=%s: %v", cs.CaseStudyID, learnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save reflection")
	}

	var reflection model.CaseReflectionModel
	if err := ctrl.DB.
		Where("case_reflection_case_study_id = ? AND case_reflection_learner_id = ?", cs.CaseStudyID, learnerID).
		First(&reflection).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reflection")
	}

	return helper.JsonUpdated(c, "Reflection saved", dto.ToCaseReflectionResponse(&reflection))
}

// POST /api/a/case-studies
func (ctrl *CaseStudyController) CreateCaseStudy(c *fiber.Ctx) error {
	var req dto.UpsertCaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCase.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "case_studies", "case_study_slug",
		helper.Slugify(req.CaseStudyTitle, 120), nil, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	cs := model.CaseStudyModel{
		CaseStudyTitle:   req.CaseStudyTitle,
		CaseStudySlug:    slug,
		CaseStudySummary: req.CaseStudySummary,
		CaseStudyBody:    req.CaseStudyBody,
	}
	if req.CaseStudyIsPublished != nil {
		cs.CaseStudyIsPublished = *req.CaseStudyIsPublished
	}
	if err := ctrl.DB.Create(&cs).Error; err != nil {
		log.Printf("[ERROR] create case study: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create case study")
	}
	return helper.JsonCreated(c, "Case study created", dto.ToCaseStudyResponse(&cs, true))
}

// GET /api/a/case-studies
func (ctrl *CaseStudyController) GetAllCaseStudies(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CaseStudyModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count case studies")
	}

	var cases []model.CaseStudyModel
	if err := q.Order("case_study_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&cases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list case studies")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Case studies", dto.ToCaseStudyResponseList(cases), &pagination)
}

// GET /api/a/case-studies/:id/reflections — mentor review of submissions.
func (ctrl *CaseStudyController) GetReflections(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid case study id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CaseReflectionModel{}).
		Where("case_reflection_case_study_id = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count reflections")
	}

	var reflections []model.CaseReflectionModel
	if err := q.Order("case_reflection_updated_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&reflections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reflections")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Reflections", dto.ToCaseReflectionResponseList(reflections), &pagination)
}

// PATCH /api/a/case-studies/:id
func (ctrl *CaseStudyController) UpdateCaseStudy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid case study id")
	}

	var req dto.UpsertCaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCase.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cs model.CaseStudyModel
	if err := ctrl.DB.Where("case_study_id = ?", id).First(&cs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Case study not found")
	}

	if req.CaseStudyTitle != cs.CaseStudyTitle {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "case_studies", "case_study_slug",
			helper.Slugify(req.CaseStudyTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("case_study_id <> ?", cs.CaseStudyID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		cs.CaseStudySlug = slug
	}
	cs.CaseStudyTitle = req.CaseStudyTitle
	cs.CaseStudySummary = req.CaseStudySummary
	cs.CaseStudyBody = req.CaseStudyBody
	if req.CaseStudyIsPublished != nil {
		cs.CaseStudyIsPublished = *req.CaseStudyIsPublished
	}

	if err := ctrl.DB.Save(&cs).Error; err != nil {
		log.Printf("[ERROR] update case study %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update case study")
	}
	return helper.JsonUpdated(c, "Case study updated", dto.ToCaseStudyResponse(&cs, true))
}

// DELETE /api/a/case-studies/:id (soft delete)
func (ctrl *CaseStudyController) DeleteCaseStudy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid case study id")
	}

	var cs model.CaseStudyModel
	if err := ctrl.DB.Where("case_study_id = ?", id).First(&cs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Case study not found")
	}
	if err := ctrl.DB.Delete(&cs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete case study")
	}
	return helper.JsonDeleted(c, "Case study deleted", nil)
}
