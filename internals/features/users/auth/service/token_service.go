package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "counseltrack_backend/internals/features/users/auth/model"
	userModel "counseltrack_backend/internals/features/users/user/model"
	helper "counseltrack_backend/internals/helpers"
)

// POST /api/auth/refresh-token — rotates the refresh token and issues a new
// access token.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// The stored hash must still be active
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	rt, err := findRefreshTokenByHashActive(db, hash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown refresh token")
	}

	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: revoke the old token before issuing a new pair
	if err := revokeRefreshTokenByID(db, rt.ID); err != nil {
		log.Printf("[WARN] refresh rotate revoke: %v", err)
	}

	access, refresh, err := issueTokens(db, c, &user)
	if err != nil {
		log.Printf("[ERROR] refresh issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setRefreshCookie(c, refresh, nowUTC())

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": access,
	})
}

func findRefreshTokenByHashActive(db *gorm.DB, hash []byte) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Limit(1).
		Find(&rt).Error; err != nil {
		return nil, err
	}
	if rt.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &rt, nil
}

func revokeRefreshTokenByID(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	res := db.Model(&authModel.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
