package domain

import (
	"time"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// SpecimenDetail is the sample_detail attribute bundle of a specimen.
type SpecimenDetail struct {
	Species      string  `json:"species"`
	CommonName   *string `json:"common_name"`
	SamplingDate string  `json:"sampling_date"`
	Description  string  `json:"description,omitempty"`
}

// ValidateForCreate checks required keys, parses the sampling date, and
// rejects dates after today. Returns the parsed date on success.
func (d *SpecimenDetail) ValidateForCreate(today time.Time) (time.Time, *apperrors.AppError) {
	date, fieldErrors := d.validateShape()
	if len(fieldErrors) == 0 && dateAfter(date, today) {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field:   "sample_detail.sampling_date",
			Code:    apperrors.CodeFutureSamplingDay,
			Message: "sampling date cannot be in the future",
		})
	}
	return date, validationError(fieldErrors)
}

// ValidateForUpdate checks required keys and parses the sampling date.
// The date is deliberately not re-validated against the clock: a
// specimen recorded in the past stays valid even when edited later.
func (d *SpecimenDetail) ValidateForUpdate() (time.Time, *apperrors.AppError) {
	date, fieldErrors := d.validateShape()
	return date, validationError(fieldErrors)
}

func (d *SpecimenDetail) validateShape() (time.Time, []apperrors.FieldError) {
	var fieldErrors []apperrors.FieldError

	if d.Species == "" {
		fieldErrors = append(fieldErrors, missingField("sample_detail.species"))
	}
	if d.CommonName == nil {
		fieldErrors = append(fieldErrors, missingField("sample_detail.common_name"))
	}

	var date time.Time
	if d.SamplingDate == "" {
		fieldErrors = append(fieldErrors, missingField("sample_detail.sampling_date"))
	} else {
		parsed, err := time.Parse(DateLayout, d.SamplingDate)
		if err != nil {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field:   "sample_detail.sampling_date",
				Code:    apperrors.CodeInvalidDate,
				Message: "sampling_date must use YYYY-MM-DD",
			})
		} else {
			date = parsed
		}
	}
	return date, fieldErrors
}

// dateAfter reports whether a is on a later calendar day than b.
func dateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
