package middlewares

import (
	"time"

	"rangba/database"
	"rangba/helpers"
	"rangba/models"

	"github.com/gofiber/fiber/v2"
)

// resolveUser authenticates a request either by session id or by the
// user's api key pair, and returns the active user.
func resolveUser(c *fiber.Ctx) (*models.User, string) {
	if sid := c.Get("X-Session-Id"); sid != "" {
		var session models.Session
		if err := database.DB.Preload("User").Where("sid = ?", sid).First(&session).Error; err != nil {
			return nil, "INVALID_SESSION"
		}
		if session.Expired(time.Now()) {
			return nil, "SESSION_EXPIRED"
		}
		if !session.User.IsActive {
			return nil, "USER_INACTIVE"
		}
		return &session.User, ""
	}

	userCode := c.Get("X-User-Code")
	apiKey := c.Get("X-Api-Key")
	if userCode == "" || apiKey == "" {
		return nil, "USER_CODE_AND_API_KEY_REQUIRED"
	}

	var user models.User
	if err := database.DB.Where("user_code = ? AND api_key = ? AND is_active = true", userCode, apiKey).First(&user).Error; err != nil {
		return nil, "INVALID_CREDENTIALS"
	}
	return &user, ""
}

func UserAuth(c *fiber.Ctx) error {
	user, code := resolveUser(c)
	if user == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, code)
	}
	c.Locals("user", *user)
	return c.Next()
}

func AdminAuth(c *fiber.Ctx) error {
	user, code := resolveUser(c)
	if user == nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, code)
	}
	if !user.IsAdmin {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_ONLY")
	}
	c.Locals("user", *user)
	return c.Next()
}
