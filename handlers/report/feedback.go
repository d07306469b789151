package report

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
	"github.com/luct-reporting/api/utils/validation"
	"gorm.io/gorm"
)

// AddFeedbackRequest represents the request body for report feedback
type AddFeedbackRequest struct {
	FeedbackText string `json:"feedbackText" validate:"required"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
}

// AddFeedback handles POST /api/reports/:id/feedback
func (h *ReportHandler) AddFeedback(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceReports, authz.ActionFeedback) {
		return response.Forbidden(c, "Only principal lecturers can add feedback")
	}

	var req AddFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var report model.Report
	if err := h.db.First(&report, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Report not found")
		}
		log.Println("add feedback:", err)
		return response.InternalServerError(c, "Failed to load report")
	}

	feedback := model.Feedback{
		ReportID:            report.ID,
		PrincipalLecturerID: ident.UserID,
		FeedbackText:        req.FeedbackText,
		Rating:              req.Rating,
	}

	if err := h.db.Create(&feedback).Error; err != nil {
		log.Println("add feedback:", err)
		return response.InternalServerError(c, "Failed to add feedback")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Feedback added successfully",
		"feedback": feedback,
	})
}

// ListFeedback handles GET /api/reports/:id/feedback
func (h *ReportHandler) ListFeedback(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceReports, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to reports")
	}

	feedback := []model.Feedback{}
	err := h.db.WithContext(c.Context()).Model(&model.Feedback{}).
		Select("feedback.*, principals.name AS principal_lecturer_name").
		Joins("LEFT JOIN users AS principals ON principals.id = feedback.principal_lecturer_id").
		Where("feedback.report_id = ?", c.Params("id")).
		Order("feedback.created_at DESC").
		Find(&feedback).Error
	if err != nil {
		log.Println("list feedback:", err)
		return response.InternalServerError(c, "Failed to load feedback")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"feedback": feedback,
	})
}
