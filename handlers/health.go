package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/database"
)

// HandleCheckHealth reports service and database status
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		status := "OK"
		if err := store.HealthCheck(); err != nil {
			dbStatus = "Unavailable"
			status = "DEGRADED"
		}

		return c.JSON(fiber.Map{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "LUCT Reporting System API",
			"database":  dbStatus,
			"version":   "1.0.0",
		})
	}
}
