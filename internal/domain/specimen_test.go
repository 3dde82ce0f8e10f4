package domain

import (
	"testing"
	"time"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func strptr(s string) *string { return &s }

func validSpecimenDetail() SpecimenDetail {
	return SpecimenDetail{
		Species:      "Nepenthes attenboroughii",
		CommonName:   strptr("Attenborough's pitcher plant"),
		SamplingDate: "2026-08-01",
		Description:  "summit population",
	}
}

func TestSpecimenDetailValidateForCreate(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	t.Run("valid past date", func(t *testing.T) {
		d := validSpecimenDetail()
		date, err := d.ValidateForCreate(today)
		if err != nil {
			t.Fatalf("ValidateForCreate() = %v, want nil", err)
		}
		if got := date.Format(DateLayout); got != "2026-08-01" {
			t.Fatalf("parsed date = %s, want 2026-08-01", got)
		}
	})

	t.Run("sampling today is allowed", func(t *testing.T) {
		d := validSpecimenDetail()
		d.SamplingDate = "2026-08-28"
		if _, err := d.ValidateForCreate(today); err != nil {
			t.Fatalf("same-day sampling rejected: %v", err)
		}
	})

	t.Run("future date rejected", func(t *testing.T) {
		d := validSpecimenDetail()
		d.SamplingDate = "2026-08-29"
		_, err := d.ValidateForCreate(today)
		if err == nil {
			t.Fatal("future sampling date accepted")
		}
		found := false
		for _, fe := range err.FieldErrors {
			if fe.Code == apperrors.CodeFutureSamplingDay {
				found = true
			}
		}
		if !found {
			t.Fatalf("no %s field error: %v", apperrors.CodeFutureSamplingDay, err.FieldErrors)
		}
	})

	t.Run("missing species", func(t *testing.T) {
		d := validSpecimenDetail()
		d.Species = ""
		if _, err := d.ValidateForCreate(today); err == nil {
			t.Fatal("missing species accepted")
		}
	})

	t.Run("missing common name", func(t *testing.T) {
		d := validSpecimenDetail()
		d.CommonName = nil
		if _, err := d.ValidateForCreate(today); err == nil {
			t.Fatal("missing common_name accepted")
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		d := validSpecimenDetail()
		d.SamplingDate = "01-08-2026"
		_, err := d.ValidateForCreate(today)
		if err == nil {
			t.Fatal("malformed date accepted")
		}
		assertFieldError(t, err, "sample_detail.sampling_date")
	})
}

func TestSpecimenDetailValidateForUpdate_NoClockCheck(t *testing.T) {
	// An update does not re-validate the date against the clock, so a
	// date that would be future relative to some past moment is fine as
	// long as it parses.
	d := validSpecimenDetail()
	d.SamplingDate = "2030-01-01"
	if _, err := d.ValidateForUpdate(); err != nil {
		t.Fatalf("ValidateForUpdate() = %v, want nil", err)
	}
}

func TestDateAfter(t *testing.T) {
	testCases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "later day",
			a:    time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "same day different hours",
			a:    time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 8, 28, 1, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "earlier month",
			a:    time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "later year",
			a:    time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dateAfter(tc.a, tc.b); got != tc.want {
				t.Fatalf("dateAfter(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
