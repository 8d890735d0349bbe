package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/content/calendar/model"
)

type UpsertCalendarEventRequest struct {
	CalendarEventTitle       string     `json:"calendar_event_title" validate:"required,min=3,max=180"`
	CalendarEventDescription *string    `json:"calendar_event_description" validate:"omitempty,max=5000"`
	CalendarEventLocation    *string    `json:"calendar_event_location" validate:"omitempty,max=180"`
	CalendarEventStartsAt    time.Time  `json:"calendar_event_starts_at" validate:"required"`
	CalendarEventEndsAt      *time.Time `json:"calendar_event_ends_at" validate:"omitempty"`
	CalendarEventIsPublic    *bool      `json:"calendar_event_is_public" validate:"omitempty"`
}

type CalendarEventResponse struct {
	CalendarEventID          uuid.UUID  `json:"calendar_event_id"`
	CalendarEventTitle       string     `json:"calendar_event_title"`
	CalendarEventDescription *string    `json:"calendar_event_description,omitempty"`
	CalendarEventLocation    *string    `json:"calendar_event_location,omitempty"`
	CalendarEventStartsAt    time.Time  `json:"calendar_event_starts_at"`
	CalendarEventEndsAt      *time.Time `json:"calendar_event_ends_at,omitempty"`
	CalendarEventIsPublic    bool       `json:"calendar_event_is_public"`
}

func ToCalendarEventResponse(m *model.CalendarEventModel) CalendarEventResponse {
	return CalendarEventResponse{
		CalendarEventID:          m.CalendarEventID,
		CalendarEventTitle:       m.CalendarEventTitle,
		CalendarEventDescription: m.CalendarEventDescription,
		CalendarEventLocation:    m.CalendarEventLocation,
		CalendarEventStartsAt:    m.CalendarEventStartsAt,
		CalendarEventEndsAt:      m.CalendarEventEndsAt,
		CalendarEventIsPublic:    m.CalendarEventIsPublic,
	}
}

func ToCalendarEventResponseList(models []model.CalendarEventModel) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCalendarEventResponse(&models[i]))
	}
	return out
}
