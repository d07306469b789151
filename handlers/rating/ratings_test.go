package rating

import (
	"testing"

	"github.com/luct-reporting/api/utils/validation"
)

func TestSubmitRatingRequestValidation(t *testing.T) {
	v := validation.NewValidator()

	valid := SubmitRatingRequest{
		TargetType:  "lecturer",
		TargetName:  "Dr. John Smith",
		RatingScore: 4,
		Comments:    "Clear explanations",
	}
	if err := v.ValidateStruct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(*SubmitRatingRequest)
		wantField string
	}{
		{
			name:      "score above range",
			mutate:    func(r *SubmitRatingRequest) { r.RatingScore = 6 },
			wantField: "ratingscore",
		},
		{
			name:      "score of zero",
			mutate:    func(r *SubmitRatingRequest) { r.RatingScore = 0 },
			wantField: "ratingscore",
		},
		{
			name:      "unknown target type",
			mutate:    func(r *SubmitRatingRequest) { r.TargetType = "building" },
			wantField: "targettype",
		},
		{
			name:      "missing target name",
			mutate:    func(r *SubmitRatingRequest) { r.TargetName = "" },
			wantField: "targetname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
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
}
