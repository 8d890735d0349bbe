package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/content/calendar/dto"
	"counseltrack_backend/internals/features/content/calendar/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateCalendar = validator.New()

type CalendarEventController struct {
	DB *gorm.DB
}

func NewCalendarEventController(db *gorm.DB) *CalendarEventController {
	return &CalendarEventController{DB: db}
}

// applyRangeFilter reads ?from= / ?to= (RFC3339) and narrows the query.
func applyRangeFilter(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, err
		}
		q = q.Where("calendar_event_starts_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, err
		}
		q = q.Where("calendar_event_starts_at <= ?", t)
	}
	return q, nil
}

// GET /api/public/calendar  (public events, ?from= / ?to= range)
func (ctrl *CalendarEventController) GetPublicEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.CalendarEventModel{}).Where("calendar_event_is_public = TRUE")
	q, err := applyRangeFilter(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time range; use RFC3339")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.CalendarEventModel
	if err := q.Order("calendar_event_starts_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Calendar events", dto.ToCalendarEventResponseList(events), &pagination)
}

// GET /api/a/calendar  (all events incl. internal)
func (ctrl *CalendarEventController) GetAllEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.CalendarEventModel{})
	q, err := applyRangeFilter(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time range; use RFC3339")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.CalendarEventModel
	if err := q.Order("calendar_event_starts_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Calendar events", dto.ToCalendarEventResponseList(events), &pagination)
}

// POST /api/a/calendar
func (ctrl *CalendarEventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.UpsertCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCalendar.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.CalendarEventEndsAt != nil && req.CalendarEventEndsAt.Before(req.CalendarEventStartsAt) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Event cannot end before it starts")
	}

	event := model.CalendarEventModel{
		CalendarEventTitle:       req.CalendarEventTitle,
		CalendarEventDescription: req.CalendarEventDescription,
		CalendarEventLocation:    req.CalendarEventLocation,
		CalendarEventStartsAt:    req.CalendarEventStartsAt,
		CalendarEventEndsAt:      req.CalendarEventEndsAt,
		CalendarEventIsPublic:    true,
	}
	if req.CalendarEventIsPublic != nil {
		event.CalendarEventIsPublic = *req.CalendarEventIsPublic
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Printf("[ERROR] create calendar event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToCalendarEventResponse(&event))
}

// PATCH /api/a/calendar/:id
func (ctrl *CalendarEventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.UpsertCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCalendar.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.CalendarEventEndsAt != nil && req.CalendarEventEndsAt.Before(req.CalendarEventStartsAt) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Event cannot end before it starts")
	}

	var event model.CalendarEventModel
	if err := ctrl.DB.Where("calendar_event_id = ?", id).First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	event.CalendarEventTitle = req.CalendarEventTitle
	event.CalendarEventDescription = req.CalendarEventDescription
	event.CalendarEventLocation = req.CalendarEventLocation
	event.CalendarEventStartsAt = req.CalendarEventStartsAt
	event.CalendarEventEndsAt = req.CalendarEventEndsAt
	if req.CalendarEventIsPublic != nil {
		event.CalendarEventIsPublic = *req.CalendarEventIsPublic
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		log.Printf("[ERROR] update calendar event %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToCalendarEventResponse(&event))
}

// DELETE /api/a/calendar/:id (soft delete)
func (ctrl *CalendarEventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.CalendarEventModel
	if err := ctrl.DB.Where("calendar_event_id = ?", id).First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err := ctrl.DB.Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", nil)
}
