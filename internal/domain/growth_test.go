package domain

import (
	"testing"
	"time"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func intptr(v int) *int { return &v }

func TestGrowthInputValidate_Ranges(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		input     GrowthInput
		wantField string
	}{
		{name: "all absent is valid", input: GrowthInput{}},
		{
			name:  "all present within range",
			input: GrowthInput{Height: f64(42.5), LeafCount: intptr(17), StemDiameter: f64(1.2), HealthStatus: "good"},
		},
		{
			name:      "height over max",
			input:     GrowthInput{Height: f64(200.1)},
			wantField: "height",
		},
		{
			name:      "negative leaf count",
			input:     GrowthInput{LeafCount: intptr(-1)},
			wantField: "leaf_count",
		},
		{
			name:      "stem diameter over max",
			input:     GrowthInput{StemDiameter: f64(50.5)},
			wantField: "stem_diameter",
		},
		{
			name:      "unknown health status",
			input:     GrowthInput{HealthStatus: "thriving"},
			wantField: "health_status",
		},
		{
			name:      "malformed measured_at",
			input:     GrowthInput{MeasuredAt: strptr("yesterday")},
			wantField: "measured_at",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.input.Validate(now)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error on %s", tc.wantField)
			}
			assertFieldError(t, err, tc.wantField)
		})
	}
}

func TestGrowthInputValidate_MeasuredAtDefault(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	input := GrowthInput{}
	measuredAt, err := input.Validate(now)
	if err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if !measuredAt.Equal(now) {
		t.Fatalf("measuredAt = %v, want now %v", measuredAt, now)
	}

	input = GrowthInput{MeasuredAt: strptr("2026-08-20T08:30:00Z")}
	measuredAt, err = input.Validate(now)
	if err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	want := time.Date(2026, 8, 20, 8, 30, 0, 0, time.UTC)
	if !measuredAt.Equal(want) {
		t.Fatalf("measuredAt = %v, want %v", measuredAt, want)
	}
}

func TestCheckChronology(t *testing.T) {
	samplingDate := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	if err := CheckChronology(time.Date(2026, 8, 10, 6, 0, 0, 0, time.UTC), samplingDate); err != nil {
		t.Fatalf("same-day measurement rejected: %v", err)
	}
	if err := CheckChronology(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), samplingDate); err != nil {
		t.Fatalf("later measurement rejected: %v", err)
	}

	err := CheckChronology(time.Date(2026, 8, 9, 23, 0, 0, 0, time.UTC), samplingDate)
	if err == nil {
		t.Fatal("measurement before sampling date accepted")
	}
	if err.Code != apperrors.CodeMeasuredTooEarly {
		t.Fatalf("code = %q, want %q", err.Code, apperrors.CodeMeasuredTooEarly)
	}
}

func TestValidateRole(t *testing.T) {
	if err := ValidateRole(""); err != nil {
		t.Fatalf("empty role rejected: %v", err)
	}
	if err := ValidateRole("lead_researcher"); err != nil {
		t.Fatalf("lead_researcher rejected: %v", err)
	}
	if err := ValidateRole("janitor"); err == nil {
		t.Fatal("unknown role accepted")
	}
}
