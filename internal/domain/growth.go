package domain

import (
	"time"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// GrowthInput is a growth metric payload. All measurements are
// optional; the chronology invariant against the owning specimen is
// checked separately because it needs the specimen row.
type GrowthInput struct {
	Height       *float64 `json:"height"`
	LeafCount    *int     `json:"leaf_count"`
	StemDiameter *float64 `json:"stem_diameter"`
	HealthStatus string   `json:"health_status,omitempty"`
	MeasuredAt   *string  `json:"measured_at,omitempty"` // RFC 3339; defaults to now
}

// Validate checks measurement ranges and the health_status enum, and
// parses measured_at (falling back to now when absent).
func (g *GrowthInput) Validate(now time.Time) (time.Time, *apperrors.AppError) {
	var fieldErrors []apperrors.FieldError

	if g.Height != nil && (*g.Height < 0 || *g.Height > 200) {
		fieldErrors = append(fieldErrors, outOfRange("height", 0, 200))
	}
	if g.LeafCount != nil && (*g.LeafCount < 0 || *g.LeafCount > 100000) {
		fieldErrors = append(fieldErrors, outOfRange("leaf_count", 0, 100000))
	}
	if g.StemDiameter != nil && (*g.StemDiameter < 0 || *g.StemDiameter > 50) {
		fieldErrors = append(fieldErrors, outOfRange("stem_diameter", 0, 50))
	}
	if g.HealthStatus != "" && !isOneOf(g.HealthStatus, HealthStatuses) {
		fieldErrors = append(fieldErrors, invalidEnum("health_status", HealthStatuses))
	}

	measuredAt := now
	if g.MeasuredAt != nil {
		parsed, err := time.Parse(time.RFC3339, *g.MeasuredAt)
		if err != nil {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field:   "measured_at",
				Code:    apperrors.CodeInvalidDate,
				Message: "measured_at must be RFC 3339",
			})
		} else {
			measuredAt = parsed
		}
	}

	return measuredAt, validationError(fieldErrors)
}

// CheckChronology rejects measurements dated before the specimen's
// sampling date.
func CheckChronology(measuredAt, samplingDate time.Time) *apperrors.AppError {
	if dateAfter(samplingDate, measuredAt) {
		return apperrors.BadRequest(
			apperrors.CodeMeasuredTooEarly,
			"growth metric cannot predate the specimen's sampling date",
		).WithParams(map[string]interface{}{
			"measured_at":   measuredAt.Format(time.RFC3339),
			"sampling_date": samplingDate.Format(DateLayout),
		})
	}
	return nil
}

// ValidateRole checks an optional specimen-researcher link role.
func ValidateRole(role string) *apperrors.AppError {
	if role == "" || isOneOf(role, ResearcherRoles) {
		return nil
	}
	return validationError([]apperrors.FieldError{invalidEnum("role", ResearcherRoles)})
}
