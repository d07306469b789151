package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/luct-reporting/api/model"
	"github.com/xuri/excelize/v2"
)

// reportExportColumns defines the spreadsheet layout for a report export.
var reportExportColumns = []struct {
	header string
	width  float64
}{
	{"Report ID", 10},
	{"Faculty", 20},
	{"Class", 15},
	{"Week", 10},
	{"Date", 12},
	{"Course Name", 25},
	{"Course Code", 15},
	{"Lecturer", 20},
	{"Students Present", 15},
	{"Total Students", 15},
	{"Attendance Rate", 15},
	{"Venue", 15},
	{"Lecture Time", 15},
	{"Topic Taught", 30},
	{"Learning Outcomes", 30},
	{"Recommendations", 30},
	{"Submitted By", 20},
	{"Submitter Role", 15},
	{"Submitted At", 20},
}

// ExportReportsXLSX renders the given reports as an XLSX workbook. The rows
// must already be scoped to what the caller may see; this function only
// formats.
func ExportReportsXLSX(reports []model.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reports"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range reportExportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return nil, err
		}
	}

	for i, r := range reports {
		recommendations := r.Recommendations
		if recommendations == "" {
			recommendations = "None"
		}
		row := []interface{}{
			r.ID,
			r.FacultyName,
			r.ClassName,
			r.WeekReporting,
			r.DateLecture,
			r.CourseName,
			r.CourseCode,
			r.LecturerName,
			r.StudentsPresent,
			r.TotalStudents,
			strconv.FormatFloat(r.AttendanceRate(), 'f', 1, 64) + "%",
			r.Venue,
			r.LectureTime,
			r.TopicTaught,
			r.LearningOutcomes,
			recommendations,
			r.SenderName,
			r.SenderRole,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
