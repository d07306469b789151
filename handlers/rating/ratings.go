package rating

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/services"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/query"
	"github.com/luct-reporting/api/utils/response"
	"github.com/luct-reporting/api/utils/validation"
	"gorm.io/gorm"
)

const ratingOrder = "ratings.created_at DESC, ratings.id DESC"

// RatingHandler handles rating-related requests
type RatingHandler struct {
	db        *gorm.DB
	stats     *services.StatsService
	validator *validation.Validator
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(db *gorm.DB) *RatingHandler {
	return &RatingHandler{
		db:        db,
		stats:     services.NewStatsService(db),
		validator: validation.NewValidator(),
	}
}

// SubmitRatingRequest represents the request body for submitting a rating
type SubmitRatingRequest struct {
	TargetType  string `json:"targetType" validate:"required,oneof=lecturer course class student facility"`
	TargetID    string `json:"targetId"`
	TargetName  string `json:"targetName" validate:"required"`
	RatingScore int    `json:"ratingScore" validate:"required,gte=1,lte=5"`
	Comments    string `json:"comments"`
}

func (h *RatingHandler) listBase(c *fiber.Ctx) *gorm.DB {
	return h.db.WithContext(c.Context()).Model(&model.Rating{}).
		Select("ratings.*, raters.name AS rater_name").
		Joins("LEFT JOIN users AS raters ON raters.id = ratings.rated_by")
}

// ratingFilters builds the caller-supplied filter predicate.
func ratingFilters(c *fiber.Ctx) query.Predicate {
	var preds []query.Predicate

	if targetType := strings.TrimSpace(c.Query("targetType")); targetType != "" {
		preds = append(preds, query.Eq("ratings.target_type", targetType))
	}
	if targetName := strings.TrimSpace(c.Query("targetName")); targetName != "" {
		preds = append(preds, query.Contains("ratings.target_name", targetName))
	}

	return query.And(preds...)
}

// ListRatings handles GET /api/ratings
func (h *RatingHandler) ListRatings(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceRating, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to ratings")
	}

	page := query.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", query.DefaultLimit))
	pred := query.And(ratingFilters(c), authz.ScopeRatings(ident))

	ratings := []model.Rating{}
	total, err := query.FindPage(h.listBase(c), pred, page, ratingOrder, &ratings)
	if err != nil {
		log.Println("list ratings:", err)
		return response.InternalServerError(c, "Failed to load ratings")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"ratings":      ratings,
		"totalPages":   page.TotalPages(total),
		"currentPage":  page.Page,
		"totalRatings": total,
	})
}

// SubmitRating handles POST /api/ratings
func (h *RatingHandler) SubmitRating(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceRating, authz.ActionSubmit) {
		return response.Forbidden(c, "Your role may not submit ratings")
	}

	var req SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	targetID := req.TargetID
	if targetID == "" {
		targetID = req.TargetName
	}

	rating := model.Rating{
		TargetType:  req.TargetType,
		TargetID:    targetID,
		TargetName:  req.TargetName,
		RatingScore: req.RatingScore,
		Comments:    req.Comments,
		RatedBy:     ident.UserID,
		RaterRole:   ident.Role,
	}

	if err := h.db.Create(&rating).Error; err != nil {
		log.Println("submit rating:", err)
		return response.InternalServerError(c, "Failed to submit rating")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}
