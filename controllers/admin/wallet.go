package admin

import (
	"errors"

	"rangba/helpers"
	"rangba/services"

	"github.com/gofiber/fiber/v2"
)

type AdjustBalanceRequest struct {
	UserCode string  `json:"user_code" validate:"required"`
	Amount   float64 `json:"amount" validate:"required"`
	Note     string  `json:"note" validate:"omitempty,max=255"`
}

// AdjustBalance credits an approved deposit (positive amount) or debits an
// approved withdrawal (negative amount). A withdrawal that would overdraw
// the wallet is rejected with no state change.
func AdjustBalance(c *fiber.Ctx) error {
	var req AdjustBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "USER_CODE_AND_AMOUNT_REQUIRED")
	}

	user, refID, err := services.AdjustBalance(req.UserCode, req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return helpers.JSONError(c, "USER_NOT_FOUND")
		case errors.Is(err, services.ErrInsufficientBalance):
			return helpers.JSONError(c, "INSUFFICIENT_USER_BALANCE")
		case errors.Is(err, services.ErrInvalidAmount):
			return helpers.JSONError(c, "INVALID_AMOUNT")
		default:
			return helpers.JSONError(c, "FAILED_TO_ADJUST_BALANCE")
		}
	}

	return helpers.JSONSuccess(c, "Balance updated successfully", fiber.Map{
		"user_code": user.UserCode,
		"balance":   user.Balance,
		"ref_id":    refID,
	})
}
