package report

import (
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/services"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
)

// Stats handles GET /api/reports/stats. Aggregates run over the same
// scoped row set the caller would get from the list endpoint.
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	scope, allowed := authz.ScopeReports(ident)
	if !allowed {
		return response.Forbidden(c, "Your role does not have access to report statistics")
	}

	stats, err := h.stats.ReportStats(c.Context(), scope)
	if err != nil {
		log.Println("report stats:", err)
		return response.InternalServerError(c, "Failed to compute report statistics")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"totalReports": stats.TotalReports,
			"totalStudents": fiber.Map{
				"present":    stats.TotalPresent,
				"registered": stats.TotalRegistered,
			},
			"averageAttendance": math.Round(stats.AverageAttendance*10) / 10,
			"reportsByFaculty":  facultyCounts(stats.ByFaculty),
			"reportsByLecturer": lecturerCounts(stats.ByLecturer),
		},
	})
}

func facultyCounts(groups []services.GroupCount) []fiber.Map {
	out := make([]fiber.Map, 0, len(groups))
	for _, g := range groups {
		out = append(out, fiber.Map{"faculty_name": g.Key, "count": g.Count})
	}
	return out
}

func lecturerCounts(groups []services.GroupCount) []fiber.Map {
	out := make([]fiber.Map, 0, len(groups))
	for _, g := range groups {
		out = append(out, fiber.Map{"lecturer_name": g.Key, "count": g.Count})
	}
	return out
}
