package report

import (
	"testing"

	"github.com/luct-reporting/api/utils/validation"
)

func validCreateRequest() CreateReportRequest {
	return CreateReportRequest{
		FacultyName:      "Faculty of Information Communication Technology",
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
		TopicTaught:      "React components and props",
		LearningOutcomes: "Students can build reusable components",
	}
}

func TestCreateReportRequestValidation(t *testing.T) {
	v := validation.NewValidator()

	if err := v.ValidateStruct(validCreateRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*CreateReportRequest)
		wantField string
	}{
		{
			name:      "missing faculty",
			mutate:    func(r *CreateReportRequest) { r.FacultyName = "" },
			wantField: "facultyname",
		},
		{
			name:      "negative attendance",
			mutate:    func(r *CreateReportRequest) { r.StudentsPresent = -1 },
			wantField: "studentspresent",
		},
		{
			name:      "present exceeds registered",
			mutate:    func(r *CreateReportRequest) { r.StudentsPresent = 51 },
			wantField: "studentspresent",
		},
		{
			name:      "missing topic",
			mutate:    func(r *CreateReportRequest) { r.TopicTaught = "" },
			wantField: "topictaught",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := v.ValidateStruct(req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			fields := validation.FormatValidationErrors(err)
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, fields)
			}
		})
	}

	// Recommendations stays optional.
	req := validCreateRequest()
	req.Recommendations = ""
	if err := v.ValidateStruct(req); err != nil {
		t.Errorf("request without recommendations rejected: %v", err)
	}
}
