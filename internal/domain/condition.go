package domain

import apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"

// SoilComposition describes the soil at a sampling site. Nutrients is
// an open map and is stored as-is, without range checks.
type SoilComposition struct {
	PH        *float64               `json:"pH"`
	Type      string                 `json:"type"`
	Nutrients map[string]interface{} `json:"nutrients"`
}

// ConditionData is the condition_data attribute bundle of an
// environmental conditions record.
type ConditionData struct {
	SoilComposition *SoilComposition `json:"soil_composition"`
	Temperature     *float64         `json:"temperature"`
	Humidity        *float64         `json:"humidity"`
	Altitude        *float64         `json:"altitude"`
}

// Validate checks required keys and the physical ranges: temperature
// [-50,60] °C, humidity [0,100] %, altitude [-500,9000] m, pH [0,14].
func (d *ConditionData) Validate() *apperrors.AppError {
	var fieldErrors []apperrors.FieldError

	if d.SoilComposition == nil {
		fieldErrors = append(fieldErrors, missingField("condition_data.soil_composition"))
	} else {
		soil := d.SoilComposition
		if soil.PH == nil {
			fieldErrors = append(fieldErrors, missingField("condition_data.soil_composition.pH"))
		} else if ph := *soil.PH; ph < 0 || ph > 14 {
			fieldErrors = append(fieldErrors, outOfRange("condition_data.soil_composition.pH", 0, 14))
		}
		if soil.Type == "" {
			fieldErrors = append(fieldErrors, missingField("condition_data.soil_composition.type"))
		} else if !isOneOf(soil.Type, SoilTypes) {
			fieldErrors = append(fieldErrors, invalidEnum("condition_data.soil_composition.type", SoilTypes))
		}
		if soil.Nutrients == nil {
			fieldErrors = append(fieldErrors, missingField("condition_data.soil_composition.nutrients"))
		}
	}

	if d.Temperature == nil {
		fieldErrors = append(fieldErrors, missingField("condition_data.temperature"))
	} else if t := *d.Temperature; t < -50 || t > 60 {
		fieldErrors = append(fieldErrors, outOfRange("condition_data.temperature", -50, 60))
	}
	if d.Humidity == nil {
		fieldErrors = append(fieldErrors, missingField("condition_data.humidity"))
	} else if h := *d.Humidity; h < 0 || h > 100 {
		fieldErrors = append(fieldErrors, outOfRange("condition_data.humidity", 0, 100))
	}
	if d.Altitude == nil {
		fieldErrors = append(fieldErrors, missingField("condition_data.altitude"))
	} else if a := *d.Altitude; a < -500 || a > 9000 {
		fieldErrors = append(fieldErrors, outOfRange("condition_data.altitude", -500, 9000))
	}

	return validationError(fieldErrors)
}
