package middlewares

import (
	"crypto/subtle"
	"os"

	"rangba/helpers"

	"github.com/gofiber/fiber/v2"
)

// CronAuth guards the controller trigger endpoint. The external job runner
// must present the shared secret; an unset secret disables the surface.
func CronAuth(c *fiber.Ctx) error {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusServiceUnavailable, "CRON_SECRET_NOT_CONFIGURED")
	}

	given := c.Get("X-Cron-Secret")
	if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_CRON_SECRET")
	}
	return c.Next()
}
