package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventModel struct {
	CalendarEventID uuid.UUID `gorm:"column:calendar_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"calendar_event_id"`

	CalendarEventTitle       string  `gorm:"column:calendar_event_title;type:varchar(180);not null" json:"calendar_event_title"`
	CalendarEventDescription *string `gorm:"column:calendar_event_description;type:text" json:"calendar_event_description,omitempty"`
	CalendarEventLocation    *string `gorm:"column:calendar_event_location;type:varchar(180)" json:"calendar_event_location,omitempty"`

	CalendarEventStartsAt time.Time  `gorm:"column:calendar_event_starts_at;type:timestamptz;not null;index" json:"calendar_event_starts_at"`
	CalendarEventEndsAt   *time.Time `gorm:"column:calendar_event_ends_at;type:timestamptz" json:"calendar_event_ends_at,omitempty"`

	CalendarEventIsPublic bool `gorm:"column:calendar_event_is_public;not null;default:true" json:"calendar_event_is_public"`

	CalendarEventCreatedAt time.Time      `gorm:"column:calendar_event_created_at;not null;autoCreateTime" json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time      `gorm:"column:calendar_event_updated_at;not null;autoUpdateTime" json:"calendar_event_updated_at"`
	CalendarEventDeletedAt gorm.DeletedAt `gorm:"column:calendar_event_deleted_at" json:"calendar_event_deleted_at,omitempty"`
}

func (CalendarEventModel) TableName() string { return "calendar_events" }
