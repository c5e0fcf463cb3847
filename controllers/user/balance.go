package user

import (
	"rangba/database"
	"rangba/helpers"
	"rangba/models"

	"github.com/gofiber/fiber/v2"
)

func CheckBalance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	// Re-read: the locals copy may predate a settlement credit.
	if err := database.DB.First(&user, user.ID).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"user_code": user.UserCode,
		"balance":   user.Balance,
		"currency":  user.Currency,
	})
}
