package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/configs"
	"counseltrack_backend/internals/constants"
	authHelper "counseltrack_backend/internals/features/users/auth/helper"
	authModel "counseltrack_backend/internals/features/users/auth/model"
	userModel "counseltrack_backend/internals/features/users/user/model"
	helper "counseltrack_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

var validateAuth = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	rt := authModel.RefreshToken{
		UserID:    u.UserID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required,min=8"`
}

// POST /api/auth/register — new accounts always start as learners.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(input.UserName),
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     constants.RoleLearner,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
	})
}

/* ==========================
   LOGIN
========================== */

type loginInput struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"user_password" validate:"required"`
}

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong email or password")
	}

	access, refresh, err := issueTokens(db, c, &user)
	if err != nil {
		log.Printf("[ERROR] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setRefreshCookie(c, refresh, nowUTC())

	return helper.JsonOK(c, "Login success", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"user_role": user.UserRole,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklists the current access token and revokes the
// refresh cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token := strings.TrimSpace(parts[1])
		bl := authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: nowUTC().Add(accessTTLDefault),
		}
		if err := db.Create(&bl).Error; err != nil {
			// duplicate logout is fine
			log.Printf("[WARN] blacklist insert: %v", err)
		}
	}

	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if secret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refresh, secret)
			now := nowUTC()
			_ = db.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", hash).
				Update("revoked_at", now).Error
		}
	}
	c.ClearCookie("refresh_token")

	return helper.JsonOK(c, "Logged out", nil)
}
