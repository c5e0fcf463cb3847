package user

import (
	"strings"

	"rangba/database"
	"rangba/helpers"
	"rangba/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type RegisterUserRequest struct {
	UserCode string `json:"user_code" validate:"required,min=3,max=32"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "INVALID_USER_CODE")
	}

	userCode := strings.ToLower(strings.TrimSpace(req.UserCode))
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}

	var existing models.User
	if err := database.DB.Where("user_code = ?", userCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_ALREADY_EXISTS")
	}

	user := models.User{
		UserCode: userCode,
		ApiKey:   uuid.New().String(),
		Balance:  0,
		Currency: currency,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_code": user.UserCode,
		"api_key":   user.ApiKey,
		"currency":  user.Currency,
	})
}
