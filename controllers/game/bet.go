package game

import (
	"errors"

	"rangba/database"
	"rangba/helpers"
	"rangba/models"
	"rangba/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type PlaceBetRequest struct {
	RoundID uint    `json:"round_id" validate:"required"`
	Choice  string  `json:"choice" validate:"required,max=64"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// PlaceBet stakes the authenticated user on an open round. Every rejection
// reason is surfaced as its own message code so the client can show the
// specific decline.
func PlaceBet(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "ROUND_CHOICE_AND_AMOUNT_REQUIRED")
	}

	bet, err := services.PlaceBet(user.ID, req.RoundID, req.Choice, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoundNotFound):
			return helpers.JSONError(c, "ROUND_NOT_FOUND")
		case errors.Is(err, services.ErrRoundClosed):
			return helpers.JSONError(c, "ROUND_CLOSED")
		case errors.Is(err, services.ErrInvalidChoice):
			return helpers.JSONError(c, "INVALID_CHOICE")
		case errors.Is(err, services.ErrAlreadyBet):
			return helpers.JSONError(c, "ALREADY_BET_ON_ROUND")
		case errors.Is(err, services.ErrInsufficientBalance):
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		case errors.Is(err, services.ErrInvalidAmount):
			return helpers.JSONError(c, "INVALID_AMOUNT")
		case errors.Is(err, services.ErrUserInactive):
			return helpers.JSONError(c, "USER_INACTIVE")
		default:
			return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
		}
	}

	if err := database.DB.First(&user, user.ID).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"bet":     bet,
		"balance": user.Balance,
	})
}

// MyBets lists the authenticated user's recent bets.
func MyBets(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	bets, err := services.BetsForUser(user.ID, c.QueryInt("limit", 50))
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_BETS")
	}
	return helpers.JSONSuccess(c, "Bets retrieved successfully", bets)
}
