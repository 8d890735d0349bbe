package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel maps the users table. One row per account (learner, mentor or
// admin); the role column drives route-level authorization.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'learner'" json:"user_role"`

	// Profile
	UserFullName  *string `gorm:"column:user_full_name;size:100" json:"user_full_name,omitempty"`
	UserBio       *string `gorm:"column:user_bio;type:text" json:"user_bio,omitempty"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;size:255" json:"user_avatar_url,omitempty"`
	UserPhone     *string `gorm:"column:user_phone;size:30" json:"user_phone,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
