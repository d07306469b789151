package report

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/authz"
	"github.com/luct-reporting/api/model"
	"github.com/luct-reporting/api/services"
	"github.com/luct-reporting/api/utils/middleware"
	"github.com/luct-reporting/api/utils/response"
)

// Export handles GET /api/reports/export. The spreadsheet contains exactly
// the rows the caller could list, unpaginated.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "User not authenticated")
	}

	scope, allowed := authz.ScopeReports(ident)
	if !allowed {
		return response.Forbidden(c, "Your role does not have access to reports")
	}

	reports := []model.Report{}
	err := scope.Apply(h.listBase(c)).Order(reportOrder).Find(&reports).Error
	if err != nil {
		log.Println("export reports:", err)
		return response.InternalServerError(c, "Failed to load reports for export")
	}

	if len(reports) == 0 {
		return response.NotFound(c, "No reports found to export")
	}

	buf, err := services.ExportReportsXLSX(reports)
	if err != nil {
		log.Println("export reports:", err)
		return response.InternalServerError(c, "Failed to generate export file")
	}

	filename := fmt.Sprintf("reports_export_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Cache-Control", "no-cache")
	return c.Send(buf)
}
