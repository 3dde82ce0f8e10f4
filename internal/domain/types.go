// Package domain defines the typed attribute records for the plant
// sampling entities and their construction-time validation.
//
// The persisted layout keeps flexible per-entity attribute bundles on
// the wire (location_data, condition_data, sample_detail); this package
// is where those bundles become explicit records with presence and
// range checks, so every invariant is visible to the type system and
// the test suite instead of living in storage-engine triggers.
package domain

import (
	"fmt"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// DateLayout is the wire format for sampling dates.
const DateLayout = "2006-01-02"

// SiteTypes is the fixed enum for Location.site_type.
var SiteTypes = []string{
	"forest",
	"grassland",
	"wetland",
	"desert",
	"agricultural",
	"urban",
	"coastal",
	"mountain",
}

// SoilTypes is the fixed enum for soil_composition.type.
var SoilTypes = []string{
	"clay",
	"sandy",
	"loamy",
	"silty",
	"peaty",
	"chalky",
	"saline",
}

// ResearcherRoles is the fixed enum for specimen-researcher link roles.
var ResearcherRoles = []string{
	"lead_researcher",
	"assistant_researcher",
	"field_technician",
	"data_analyst",
	"supervisor",
}

// HealthStatuses is the fixed enum for growth metric health_status.
var HealthStatuses = []string{
	"excellent",
	"good",
	"fair",
	"poor",
	"critical",
}

func isOneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}

func missingField(field string) apperrors.FieldError {
	return apperrors.FieldError{
		Field:   field,
		Code:    apperrors.CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func outOfRange(field string, lo, hi float64) apperrors.FieldError {
	return apperrors.FieldError{
		Field:   field,
		Code:    apperrors.CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %g and %g", field, lo, hi),
	}
}

func invalidEnum(field string, valid []string) apperrors.FieldError {
	return apperrors.FieldError{
		Field:   field,
		Code:    apperrors.CodeInvalidEnum,
		Message: fmt.Sprintf("%s must be one of %v", field, valid),
	}
}

func validationError(fieldErrors []apperrors.FieldError) *apperrors.AppError {
	if len(fieldErrors) == 0 {
		return nil
	}
	return apperrors.BadRequest(
		apperrors.CodeValidationFailed,
		"request payload failed validation",
	).WithFieldErrors(fieldErrors)
}
