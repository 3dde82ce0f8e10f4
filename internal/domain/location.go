package domain

import apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"

// Coordinates is a latitude/longitude pair. Pointers distinguish a
// missing key from a legitimate zero value.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// LocationData is the location_data attribute bundle of a sampling site.
type LocationData struct {
	Coordinates *Coordinates `json:"coordinates"`
	Region      string       `json:"region"`
	Country     string       `json:"country"`
	SiteType    string       `json:"site_type,omitempty"`
}

// Validate checks required keys, coordinate ranges, and the site_type
// enum. Returns nil when the record is acceptable for persistence.
func (d *LocationData) Validate() *apperrors.AppError {
	var fieldErrors []apperrors.FieldError

	if d.Coordinates == nil {
		fieldErrors = append(fieldErrors, missingField("location_data.coordinates"))
	} else {
		if d.Coordinates.Latitude == nil {
			fieldErrors = append(fieldErrors, missingField("location_data.coordinates.latitude"))
		} else if lat := *d.Coordinates.Latitude; lat < -90 || lat > 90 {
			fieldErrors = append(fieldErrors, outOfRange("location_data.coordinates.latitude", -90, 90))
		}
		if d.Coordinates.Longitude == nil {
			fieldErrors = append(fieldErrors, missingField("location_data.coordinates.longitude"))
		} else if lon := *d.Coordinates.Longitude; lon < -180 || lon > 180 {
			fieldErrors = append(fieldErrors, outOfRange("location_data.coordinates.longitude", -180, 180))
		}
	}

	if d.Region == "" {
		fieldErrors = append(fieldErrors, missingField("location_data.region"))
	}
	if d.Country == "" {
		fieldErrors = append(fieldErrors, missingField("location_data.country"))
	}
	if d.SiteType != "" && !isOneOf(d.SiteType, SiteTypes) {
		fieldErrors = append(fieldErrors, invalidEnum("location_data.site_type", SiteTypes))
	}

	return validationError(fieldErrors)
}
