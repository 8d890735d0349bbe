package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/courses/dto"
	"counseltrack_backend/internals/features/learning/courses/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GET /api/u/courses  (published only)
func (ctrl *CourseController) GetPublishedCourses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("course_is_published = TRUE")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(course_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("course_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Courses", dto.ToCourseResponseList(courses), &pagination)
}

// GET /api/u/courses/:slug
func (ctrl *CourseController) GetPublishedCourseBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var course model.CourseModel
	if err := ctrl.DB.
		Where("LOWER(course_slug) = ? AND course_is_published = TRUE", slug).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "Course detail", dto.ToCourseResponse(&course))
}

// POST /api/a/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug",
		helper.Slugify(req.CourseTitle, 120), nil, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	course := model.CourseModel{
		CourseTitle:       req.CourseTitle,
		CourseSlug:        slug,
		CourseSummary:     req.CourseSummary,
		CourseDescription: req.CourseDescription,
		CourseCategory:    req.CourseCategory,
		CourseMentorID:    req.CourseMentorID,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.ToCourseResponse(&course))
}

// GET /api/a/courses
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(course_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Courses", dto.ToCourseResponseList(courses), &pagination)
}

// PATCH /api/a/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if req.CourseTitle != nil && *req.CourseTitle != course.CourseTitle {
		course.CourseTitle = *req.CourseTitle
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug",
			helper.Slugify(*req.CourseTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("course_id <> ?", course.CourseID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		course.CourseSlug = slug
	}
	if req.CourseSummary != nil {
		course.CourseSummary = req.CourseSummary
	}
	if req.CourseDescription != nil {
		course.CourseDescription = req.CourseDescription
	}
	if req.CourseCategory != nil {
		course.CourseCategory = req.CourseCategory
	}
	if req.CourseMentorID != nil {
		course.CourseMentorID = req.CourseMentorID
	}
	if req.CourseIsPublished != nil {
		course.CourseIsPublished = *req.CourseIsPublished
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		log.Printf("[ERROR] update course %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.ToCourseResponse(&course))
}

// DELETE /api/a/courses/:id (soft delete)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	if err := ctrl.DB.Delete(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Course deleted", nil)
}
