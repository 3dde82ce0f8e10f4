package domain

import (
	"testing"

	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func f64(v float64) *float64 { return &v }

func validLocationData() LocationData {
	return LocationData{
		Coordinates: &Coordinates{Latitude: f64(16.4), Longitude: f64(120.6)},
		Region:      "Cordillera",
		Country:     "Philippines",
		SiteType:    "mountain",
	}
}

func TestLocationDataValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*LocationData)
		wantField string
	}{
		{name: "valid", mutate: func(*LocationData) {}},
		{
			name:      "missing coordinates",
			mutate:    func(d *LocationData) { d.Coordinates = nil },
			wantField: "location_data.coordinates",
		},
		{
			name:      "missing latitude",
			mutate:    func(d *LocationData) { d.Coordinates.Latitude = nil },
			wantField: "location_data.coordinates.latitude",
		},
		{
			name:      "latitude out of range",
			mutate:    func(d *LocationData) { d.Coordinates.Latitude = f64(91) },
			wantField: "location_data.coordinates.latitude",
		},
		{
			name:      "longitude out of range",
			mutate:    func(d *LocationData) { d.Coordinates.Longitude = f64(-180.5) },
			wantField: "location_data.coordinates.longitude",
		},
		{
			name:      "missing region",
			mutate:    func(d *LocationData) { d.Region = "" },
			wantField: "location_data.region",
		},
		{
			name:      "missing country",
			mutate:    func(d *LocationData) { d.Country = "" },
			wantField: "location_data.country",
		},
		{
			name:      "bad site type",
			mutate:    func(d *LocationData) { d.SiteType = "volcano" },
			wantField: "location_data.site_type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validLocationData()
			tc.mutate(&d)
			err := d.Validate()
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

func TestLocationDataValidate_BoundaryCoordinates(t *testing.T) {
	d := validLocationData()
	d.Coordinates.Latitude = f64(-90)
	d.Coordinates.Longitude = f64(180)
	if err := d.Validate(); err != nil {
		t.Fatalf("boundary coordinates rejected: %v", err)
	}
}

func TestLocationDataValidate_OptionalSiteType(t *testing.T) {
	d := validLocationData()
	d.SiteType = ""
	if err := d.Validate(); err != nil {
		t.Fatalf("empty site_type rejected: %v", err)
	}
}

func assertFieldError(t *testing.T, err *apperrors.AppError, field string) {
	t.Helper()
	if err.Code != apperrors.CodeValidationFailed {
		t.Fatalf("code = %q, want %q", err.Code, apperrors.CodeValidationFailed)
	}
	for _, fe := range err.FieldErrors {
		if fe.Field == field {
			return
		}
	}
	t.Fatalf("no field error for %s in %v", field, err.FieldErrors)
}
