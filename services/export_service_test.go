package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/luct-reporting/api/model"
	"github.com/xuri/excelize/v2"
)

func TestExportReportsXLSX(t *testing.T) {
	reports := []model.Report{
		{
			ID:               1,
			FacultyName:      "Faculty of ICT",
			ClassName:        "BSCITY2S1",
			WeekReporting:    "Week 6",
			DateLecture:      "2026-02-10",
			CourseName:       "Web Application Development",
			CourseCode:       "DIWA2110",
			LecturerName:     "Dr. John Smith",
			StudentsPresent:  28,
			TotalStudents:    50,
			Venue:            "Room 101",
			LectureTime:      "08:30 - 10:30",
			TopicTaught:      "React components",
			LearningOutcomes: "Build reusable components",
			SenderName:       "Dr. John Smith",
			SenderRole:       "lecturer",
			CreatedAt:        time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		},
	}

	data, err := ExportReportsXLSX(reports)
	if err != nil {
		t.Fatalf("ExportReportsXLSX failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Reports")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one report", len(rows))
	}
	if rows[0][0] != "Report ID" {
		t.Errorf("first header = %q, want Report ID", rows[0][0])
	}
	if rows[1][1] != "Faculty of ICT" {
		t.Errorf("faculty cell = %q", rows[1][1])
	}
	if rows[1][10] != "56.0%" {
		t.Errorf("attendance cell = %q, want 56.0%%", rows[1][10])
	}
	if rows[1][15] != "None" {
		t.Errorf("empty recommendations cell = %q, want None", rows[1][15])
	}
}

func TestExportReportsXLSXEmpty(t *testing.T) {
	data, err := ExportReportsXLSX(nil)
	if err != nil {
		t.Fatalf("ExportReportsXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Reports")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}
