package rating

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/services"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
)

// Stats handles GET /api/ratings/stats. Statistics and the recent list run
// under the caller's rating scope, so students only aggregate their own
// submissions.
func (h *RatingHandler) Stats(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceRating, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to rating statistics")
	}

	scope := authz.ScopeRatings(ident)

	stats, err := h.stats.RatingStats(c.Context(), scope)
	if err != nil {
		log.Println("rating stats:", err)
		return response.InternalServerError(c, "Failed to compute rating statistics")
	}

	recent := []model.Rating{}
	err = scope.Apply(h.listBase(c)).Order(ratingOrder).Limit(5).Find(&recent).Error
	if err != nil {
		log.Println("rating stats:", err)
		return response.InternalServerError(c, "Failed to load recent ratings")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"statistics":    stats,
		"recentRatings": recent,
		"overallStats":  services.Overall(stats),
	})
}
