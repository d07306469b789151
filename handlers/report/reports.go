package report

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

// reportOrder keeps pagination deterministic when created_at collides.
const reportOrder = "reports.created_at DESC, reports.id DESC"

// ReportHandler handles report-related requests
type ReportHandler struct {
	db        *gorm.DB
	stats     *services.StatsService
	validator *validation.Validator
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		db:        db,
		stats:     services.NewStatsService(db),
		validator: validation.NewValidator(),
	}
}

// CreateReportRequest represents the request body for submitting a report
type CreateReportRequest struct {
	FacultyName      string `json:"facultyName" validate:"required"`
	ClassName        string `json:"className" validate:"required"`
	WeekReporting    string `json:"weekReporting" validate:"required"`
	DateLecture      string `json:"dateLecture" validate:"required"`
	CourseName       string `json:"courseName" validate:"required"`
	CourseCode       string `json:"courseCode" validate:"required"`
	LecturerName     string `json:"lecturerName" validate:"required"`
	StudentsPresent  int    `json:"studentsPresent" validate:"gte=0,ltefield=TotalStudents"`
	TotalStudents    int    `json:"totalStudents" validate:"gte=0"`
	Venue            string `json:"venue" validate:"required"`
	LectureTime      string `json:"lectureTime" validate:"required"`
	TopicTaught      string `json:"topicTaught" validate:"required"`
	LearningOutcomes string `json:"learningOutcomes" validate:"required"`
	Recommendations  string `json:"recommendations"`
}

// listBase joins the submitting user so each row carries sender details.
func (h *ReportHandler) listBase(c *fiber.Ctx) *gorm.DB {
	return h.db.WithContext(c.Context()).Model(&model.Report{}).
		Select("reports.*, senders.name AS sender_name, senders.role AS sender_role, senders.email AS sender_email").
		Joins("LEFT JOIN users AS senders ON senders.id = reports.created_by")
}

// reportFilters builds the caller-supplied filter predicate. Blank and
// whitespace-only parameters count as not supplied.
func reportFilters(c *fiber.Ctx) query.Predicate {
	var preds []query.Predicate

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		preds = append(preds, query.Or(
			query.Contains("reports.class_name", search),
			query.Contains("reports.course_name", search),
			query.Contains("reports.lecturer_name", search),
			query.Contains("reports.faculty_name", search),
		))
	}
	if faculty := strings.TrimSpace(c.Query("faculty")); faculty != "" {
		preds = append(preds, query.Eq("reports.faculty_name", faculty))
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		preds = append(preds, query.Eq("reports.course_code", course))
	}
	if lecturer := strings.TrimSpace(c.Query("lecturer")); lecturer != "" {
		preds = append(preds, query.Contains("reports.lecturer_name", lecturer))
	}

	return query.And(preds...)
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	scope, allowed := authz.ScopeReports(ident)
	if !allowed {
		return response.Forbidden(c, "Your role does not have access to reports")
	}

	page := query.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", query.DefaultLimit))
	pred := query.And(reportFilters(c), scope)

	reports := []model.Report{}
	total, err := query.FindPage(h.listBase(c), pred, page, reportOrder, &reports)
	if err != nil {
		log.Println("list reports:", err)
		return response.InternalServerError(c, "Failed to load reports")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"reports":      reports,
		"totalPages":   page.TotalPages(total),
		"currentPage":  page.Page,
		"totalReports": total,
	})
}

// GetReport handles GET /api/reports/:id
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceReports, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to reports")
	}

	var report model.Report
	err := h.listBase(c).Where("reports.id = ?", c.Params("id")).First(&report).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Report not found")
		}
		log.Println("get report:", err)
		return response.InternalServerError(c, "Failed to load report")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

// CreateReport handles POST /api/reports
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceReports, authz.ActionCreate) {
		return response.Forbidden(c, "Your role may not submit reports")
	}

	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	report := model.Report{
		FacultyName:      req.FacultyName,
		ClassName:        req.ClassName,
		WeekReporting:    req.WeekReporting,
		DateLecture:      req.DateLecture,
		CourseName:       req.CourseName,
		CourseCode:       req.CourseCode,
		LecturerName:     req.LecturerName,
		StudentsPresent:  req.StudentsPresent,
		TotalStudents:    req.TotalStudents,
		Venue:            req.Venue,
		LectureTime:      req.LectureTime,
		TopicTaught:      req.TopicTaught,
		LearningOutcomes: req.LearningOutcomes,
		Recommendations:  req.Recommendations,
		CreatedBy:        ident.UserID,
	}

	if err := h.db.Create(&report).Error; err != nil {
		log.Println("create report:", err)
		return response.InternalServerError(c, "Failed to submit report")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Report submitted successfully",
		"report":  report,
	})
}
