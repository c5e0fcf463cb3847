package admin

import (
	"rangba/games"
	"rangba/helpers"
	"rangba/services"

	"github.com/gofiber/fiber/v2"
)

// GetController reports the auto controller toggle as currently stored.
func GetController(c *fiber.Ctx) error {
	cfg, err := services.LoadControllerConfig()
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_CONTROLLER_CONFIG")
	}
	return helpers.JSONSuccess(c, "Controller config retrieved", cfg)
}

type UpdateControllerRequest struct {
	Enabled   bool           `json:"enabled"`
	Durations map[string]int `json:"durations"`
}

// UpdateController flips the toggle and/or overrides per-game-type round
// durations. The driver re-reads the row every tick, so the change applies
// on the next invocation.
func UpdateController(c *fiber.Ctx) error {
	var req UpdateControllerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	for name, d := range req.Durations {
		if !games.ValidGameType(games.GameType(name)) {
			return helpers.JSONError(c, "INVALID_GAME_TYPE")
		}
		if d <= 0 {
			return helpers.JSONError(c, "INVALID_DURATION")
		}
	}

	cfg := services.ControllerConfig{Enabled: req.Enabled, Durations: req.Durations}
	if err := services.SaveControllerConfig(cfg); err != nil {
		return helpers.JSONError(c, "FAILED_TO_SAVE_CONTROLLER_CONFIG")
	}
	return helpers.JSONSuccess(c, "Controller config updated", cfg)
}
