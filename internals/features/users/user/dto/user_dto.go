package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================

type UpdateProfileRequest struct {
	UserName      *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserFullName  *string `json:"user_full_name" validate:"omitempty,max=100"`
	UserBio       *string `json:"user_bio"`
	UserAvatarURL *string `json:"user_avatar_url" validate:"omitempty,url"`
	UserPhone     *string `json:"user_phone" validate:"omitempty,max=30"`
}

type AdminUpdateUserRequest struct {
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=learner mentor admin"`
	UserIsActive *bool   `json:"user_is_active"`
}

// ================== RESPONSE ==================

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserFullName  *string   `json:"user_full_name,omitempty"`
	UserBio       *string   `json:"user_bio,omitempty"`
	UserAvatarURL *string   `json:"user_avatar_url,omitempty"`
	UserPhone     *string   `json:"user_phone,omitempty"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

// ================ CONVERSION =================

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserFullName:  m.UserFullName,
		UserBio:       m.UserBio,
		UserAvatarURL: m.UserAvatarURL,
		UserPhone:     m.UserPhone,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToUserResponse(&models[i]))
	}
	return out
}

// ApplyProfileUpdate copies the non-nil fields onto the model.
func (r *UpdateProfileRequest) ApplyProfileUpdate(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserFullName != nil {
		m.UserFullName = r.UserFullName
	}
	if r.UserBio != nil {
		m.UserBio = r.UserBio
	}
	if r.UserAvatarURL != nil {
		m.UserAvatarURL = r.UserAvatarURL
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
}
