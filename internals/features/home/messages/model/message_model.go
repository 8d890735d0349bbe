package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageThreadModel is a private conversation between a learner and a staff
// member (mentor or admin). Both participants see the thread; nobody else
// does.
type MessageThreadModel struct {
	MessageThreadID        uuid.UUID `gorm:"column:message_thread_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"message_thread_id"`
	MessageThreadLearnerID uuid.UUID `gorm:"column:message_thread_learner_id;type:uuid;not null;index:idx_message_threads_learner" json:"message_thread_learner_id"`
	MessageThreadStaffID   uuid.UUID `gorm:"column:message_thread_staff_id;type:uuid;not null;index:idx_message_threads_staff" json:"message_thread_staff_id"`

	MessageThreadSubject string `gorm:"column:message_thread_subject;type:varchar(180);not null" json:"message_thread_subject"`

	MessageThreadLastMessageAt time.Time `gorm:"column:message_thread_last_message_at;type:timestamptz;not null;default:now()" json:"message_thread_last_message_at"`

	MessageThreadCreatedAt time.Time      `gorm:"column:message_thread_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"message_thread_created_at"`
	MessageThreadDeletedAt gorm.DeletedAt `gorm:"column:message_thread_deleted_at" json:"message_thread_deleted_at,omitempty"`
}

func (MessageThreadModel) TableName() string { return "message_threads" }

// IsParticipant reports whether a user belongs to the thread.
func (m *MessageThreadModel) IsParticipant(userID uuid.UUID) bool {
	return m.MessageThreadLearnerID == userID || m.MessageThreadStaffID == userID
}

type MessageModel struct {
	MessageID       uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	MessageThreadID uuid.UUID `gorm:"column:message_thread_id;type:uuid;not null;index:idx_messages_thread" json:"message_thread_id"`
	MessageSenderID uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`

	MessageBody string `gorm:"column:message_body;type:text;not null" json:"message_body"`

	MessageReadAt *time.Time `gorm:"column:message_read_at;type:timestamptz" json:"message_read_at,omitempty"`

	MessageCreatedAt time.Time `gorm:"column:message_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"message_created_at"`
}

func (MessageModel) TableName() string { return "messages" }
