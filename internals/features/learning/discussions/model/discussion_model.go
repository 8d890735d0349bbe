package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscussionModel is a mentor-authored discussion prompt.
type DiscussionModel struct {
	DiscussionID       uuid.UUID `gorm:"column:discussion_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"discussion_id"`
	DiscussionAuthorID uuid.UUID `gorm:"column:discussion_author_id;type:uuid;not null;index" json:"discussion_author_id"`

	DiscussionTitle string `gorm:"column:discussion_title;type:varchar(180);not null" json:"discussion_title"`
	DiscussionSlug  string `gorm:"column:discussion_slug;type:varchar(120);uniqueIndex;not null" json:"discussion_slug"`
	DiscussionBody  string `gorm:"column:discussion_body;type:text;not null" json:"discussion_body"`

	// Closed discussions stay readable but refuse new replies.
	DiscussionIsOpen bool `gorm:"column:discussion_is_open;not null;default:true" json:"discussion_is_open"`

	DiscussionCreatedAt time.Time      `gorm:"column:discussion_created_at;not null;autoCreateTime" json:"discussion_created_at"`
	DiscussionUpdatedAt time.Time      `gorm:"column:discussion_updated_at;not null;autoUpdateTime" json:"discussion_updated_at"`
	DiscussionDeletedAt gorm.DeletedAt `gorm:"column:discussion_deleted_at;index" json:"discussion_deleted_at,omitempty"`
}

func (DiscussionModel) TableName() string { return "discussions" }

type DiscussionReplyModel struct {
	DiscussionReplyID           uuid.UUID `gorm:"column:discussion_reply_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"discussion_reply_id"`
	DiscussionReplyDiscussionID uuid.UUID `gorm:"column:discussion_reply_discussion_id;type:uuid;not null;index:idx_discussion_replies_discussion" json:"discussion_reply_discussion_id"`
	DiscussionReplyUserID       uuid.UUID `gorm:"column:discussion_reply_user_id;type:uuid;not null" json:"discussion_reply_user_id"`

	DiscussionReplyBody string `gorm:"column:discussion_reply_body;type:text;not null" json:"discussion_reply_body"`

	DiscussionReplyCreatedAt time.Time      `gorm:"column:discussion_reply_created_at;not null;autoCreateTime" json:"discussion_reply_created_at"`
	DiscussionReplyDeletedAt gorm.DeletedAt `gorm:"column:discussion_reply_deleted_at" json:"discussion_reply_deleted_at,omitempty"`
}

func (DiscussionReplyModel) TableName() string { return "discussion_replies" }
