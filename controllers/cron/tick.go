package cron

import (
	"time"

	"rangba/services"

	"github.com/gofiber/fiber/v2"
)

// RunTick is the controller trigger surface for an external job runner. It
// takes no body and reports one status line per game type; a partial
// failure in one game type still yields an overall success response.
func RunTick(c *fiber.Ctx) error {
	results, err := services.RunControllerTick(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "TICK_FAILED",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Tick completed",
		"results": results,
	})
}
