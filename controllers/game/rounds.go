package game

import (
	"errors"

	"rangba/database"
	"rangba/games"
	"rangba/helpers"
	"rangba/models"
	"rangba/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CurrentRound returns the open or locked round of a game type so the
// client can render the countdown and accept stakes.
func CurrentRound(c *fiber.Ctx) error {
	gt := games.GameType(c.Query("game_type"))
	if !games.ValidGameType(gt) {
		return helpers.JSONError(c, "INVALID_GAME_TYPE")
	}

	duration := c.QueryInt("duration", 0)
	if duration <= 0 {
		cfg, err := services.LoadControllerConfig()
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_LOAD_ROUND")
		}
		duration = cfg.DurationFor(gt)
	}

	round, err := services.ActiveRound(gt, duration)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "NO_ACTIVE_ROUND")
		}
		return helpers.JSONError(c, "FAILED_TO_LOAD_ROUND")
	}
	return helpers.JSONSuccess(c, "Round retrieved successfully", round)
}

// RoundHistory lists recently resolved rounds of a game type, newest
// first, for the client's results feed.
func RoundHistory(c *fiber.Ctx) error {
	gt := games.GameType(c.Query("game_type"))
	if !games.ValidGameType(gt) {
		return helpers.JSONError(c, "INVALID_GAME_TYPE")
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rounds []models.Round
	err := database.DB.
		Where("game_type = ? AND status IN ?", gt, []string{models.RoundStatusCompleted, models.RoundStatusCancelled}).
		Order("round_number DESC").
		Limit(limit).
		Find(&rounds).Error
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_ROUNDS")
	}
	return helpers.JSONSuccess(c, "Rounds retrieved successfully", rounds)
}
