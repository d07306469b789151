package dashboard

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/utils/cache"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
	"gorm.io/gorm"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = time.Minute
)

// DashboardHandler handles dashboard requests
type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewDashboardHandler creates a new dashboard handler. cache may be nil
// when Redis is unavailable; stats are then computed on every request.
func NewDashboardHandler(db *gorm.DB, redisCache *cache.RedisCache) *DashboardHandler {
	return &DashboardHandler{
		db:    db,
		cache: redisCache,
	}
}

type dashboardStats struct {
	TotalReports         int64          `json:"totalReports"`
	TotalStudentsPresent int64          `json:"totalStudentsPresent"`
	TotalCourses         int64          `json:"totalCourses"`
	RecentReports        []model.Report `json:"recentReports"`
}

// Stats handles GET /api/dashboard/stats. The figures are the same for
// every caller, so they are cached briefly.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceDashboard, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to the dashboard")
	}

	if h.cache != nil {
		var cached dashboardStats
		if err := h.cache.GetJSON(c.Context(), statsCacheKey, &cached); err == nil {
			return c.JSON(fiber.Map{"success": true, "stats": cached})
		}
	}

	stats, err := h.computeStats(c)
	if err != nil {
		log.Println("dashboard stats:", err)
		return response.InternalServerError(c, "Failed to load dashboard statistics")
	}

	if h.cache != nil {
		h.cache.SetJSON(c.Context(), statsCacheKey, stats, statsCacheTTL)
	}

	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func (h *DashboardHandler) computeStats(c *fiber.Ctx) (*dashboardStats, error) {
	db := h.db.WithContext(c.Context())
	stats := &dashboardStats{RecentReports: []model.Report{}}

	if err := db.Model(&model.Report{}).Count(&stats.TotalReports).Error; err != nil {
		return nil, err
	}

	var present struct{ Total int64 }
	err := db.Model(&model.Report{}).
		Select("COALESCE(SUM(students_present), 0) AS total").
		Scan(&present).Error
	if err != nil {
		return nil, err
	}
	stats.TotalStudentsPresent = present.Total

	err = db.Model(&model.Report{}).
		Distinct("course_code").
		Count(&stats.TotalCourses).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&model.Report{}).
		Select("reports.*, senders.name AS sender_name").
		Joins("LEFT JOIN users AS senders ON senders.id = reports.created_by").
		Order("reports.created_at DESC, reports.id DESC").
		Limit(5).
		Find(&stats.RecentReports).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Data handles GET /api/dashboard/data: recent reports narrowed by the
// caller's report scope, plus headline counters for program leaders.
func (h *DashboardHandler) Data(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}
	if !authz.Allows(ident.Role, authz.ResourceDashboard, authz.ActionView) {
		return response.Forbidden(c, "Your role does not have access to the dashboard")
	}

	db := h.db.WithContext(c.Context())

	recentQuery := db.Model(&model.Report{}).
		Order("created_at DESC, id DESC").
		Limit(5)

	// The dashboard preview follows the report scope for the reporting
	// roles. Students keep the campus-wide preview they have always had;
	// the reports module itself stays closed to them.
	switch ident.Role {
	case model.RoleLecturer:
		recentQuery = recentQuery.Where("lecturer_name = ?", ident.Name)
	case model.RolePrincipalLecturer:
		recentQuery = recentQuery.Where("faculty_name = ?", ident.Faculty)
	}

	recent := []model.Report{}
	if err := recentQuery.Find(&recent).Error; err != nil {
		log.Println("dashboard data:", err)
		return response.InternalServerError(c, "Failed to load dashboard data")
	}

	stats := fiber.Map{}
	if ident.Role == model.RoleProgramLeader {
		var lecturers, courses, faculties int64

		err := db.Model(&model.User{}).
			Where("role IN ?", []string{model.RoleLecturer, model.RolePrincipalLecturer}).
			Count(&lecturers).Error
		if err == nil {
			err = db.Model(&model.Report{}).Distinct("course_code").Count(&courses).Error
		}
		if err == nil {
			err = db.Model(&model.Report{}).Distinct("faculty_name").Count(&faculties).Error
		}
		if err != nil {
			log.Println("dashboard data:", err)
			return response.InternalServerError(c, "Failed to load dashboard data")
		}

		stats = fiber.Map{
			"totalLecturers": lecturers,
			"totalCourses":   courses,
			"totalFaculties": faculties,
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"recentReports": recent,
		"stats":         stats,
	})
}
