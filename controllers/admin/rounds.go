package admin

import (
	"errors"

	"rangba/games"
	"rangba/helpers"
	"rangba/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRoundRequest struct {
	GameType string `json:"game_type" validate:"required"`
	Duration int    `json:"duration" validate:"omitempty,gt=0"`
}

type RoundActionRequest struct {
	RoundID uint `json:"round_id" validate:"required"`
}

type SetResultRequest struct {
	RoundID uint   `json:"round_id" validate:"required"`
	Result  string `json:"result" validate:"required,max=64"`
}

func roundError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRoundNotFound):
		return helpers.JSONError(c, "ROUND_NOT_FOUND")
	case errors.Is(err, services.ErrRoundFinished):
		return helpers.JSONError(c, "ROUND_ALREADY_FINISHED")
	case errors.Is(err, services.ErrActiveRoundExists):
		return helpers.JSONError(c, "ACTIVE_ROUND_EXISTS")
	case errors.Is(err, services.ErrInvalidOutcome):
		return helpers.JSONError(c, "INVALID_RESULT_TOKEN")
	case errors.Is(err, services.ErrInvalidChoice):
		return helpers.JSONError(c, "INVALID_GAME_TYPE")
	default:
		return helpers.JSONError(c, "ROUND_OPERATION_FAILED")
	}
}

// CreateRound opens a round out-of-band, used when the auto controller is
// disabled and rounds are run by hand.
func CreateRound(c *fiber.Ctx) error {
	var req CreateRoundRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_TYPE_REQUIRED")
	}

	round, err := services.CreateRound(games.GameType(req.GameType), req.Duration)
	if err != nil {
		return roundError(c, err)
	}
	return helpers.JSONSuccess(c, "Round created", round)
}

// LockRound stops a round from accepting bets before its end time.
func LockRound(c *fiber.Ctx) error {
	var req RoundActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "ROUND_ID_REQUIRED")
	}

	round, err := services.LockRound(req.RoundID)
	if err != nil {
		return roundError(c, err)
	}
	return helpers.JSONSuccess(c, "Round locked", round)
}

// SetResult assigns an admin-chosen outcome. Settlement is the same
// routine the automatic path runs, so payouts cannot diverge between the
// two modes.
func SetResult(c *fiber.Ctx) error {
	var req SetResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "ROUND_ID_AND_RESULT_REQUIRED")
	}

	round, err := services.SetRoundResult(req.RoundID, req.Result)
	if err != nil {
		return roundError(c, err)
	}
	return helpers.JSONSuccess(c, "Round resolved", round)
}

// CancelRound refunds every stake and retires the round without a result.
func CancelRound(c *fiber.Ctx) error {
	var req RoundActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "ROUND_ID_REQUIRED")
	}

	round, err := services.CancelRound(req.RoundID)
	if err != nil {
		return roundError(c, err)
	}
	return helpers.JSONSuccess(c, "Round cancelled and refunded", round)
}
