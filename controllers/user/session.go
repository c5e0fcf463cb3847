package user

import (
	"time"

	"rangba/database"
	"rangba/helpers"
	"rangba/models"

	"github.com/gofiber/fiber/v2"
)

type CreateSessionRequest struct {
	UserCode string `json:"user_code" validate:"required"`
	ApiKey   string `json:"api_key" validate:"required"`
}

// CreateSession exchanges api credentials for a short-lived session id the
// game client sends on subsequent requests.
func CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "USER_CODE_AND_API_KEY_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("user_code = ? AND api_key = ? AND is_active = true", req.UserCode, req.ApiKey).First(&user).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Session created", fiber.Map{
		"session_id": session.SID,
		"expires_at": session.ExpiresAt,
	})
}
