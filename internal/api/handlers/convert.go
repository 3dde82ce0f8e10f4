package handlers

import (
	"time"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
)

// Converters from ent rows to the API document shapes.

func locationToAPI(l *ent.Location) locationResponse {
	lat, lon := l.Latitude, l.Longitude
	return locationResponse{
		ID: l.ID,
		LocationData: domain.LocationData{
			Coordinates: &domain.Coordinates{Latitude: &lat, Longitude: &lon},
			Region:      l.Region,
			Country:     l.Country,
			SiteType:    string(l.SiteType),
		},
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func conditionToAPI(c *ent.EnvironmentalCondition) conditionResponse {
	temp, hum, alt, ph := c.Temperature, c.Humidity, c.Altitude, c.SoilPh
	return conditionResponse{
		ID: c.ID,
		ConditionData: domain.ConditionData{
			SoilComposition: &domain.SoilComposition{
				PH:        &ph,
				Type:      string(c.SoilType),
				Nutrients: c.SoilNutrients,
			},
			Temperature: &temp,
			Humidity:    &hum,
			Altitude:    &alt,
		},
		RecordedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func researcherToAPI(r *ent.Researcher) researcherResponse {
	return researcherResponse{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Affiliation: r.Affiliation,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func specimenToAPI(s *ent.Specimen) specimenResponse {
	common := s.CommonName
	resp := specimenResponse{
		ID: s.ID,
		SampleDetail: domain.SpecimenDetail{
			Species:      s.Species,
			CommonName:   &common,
			SamplingDate: s.SamplingDate.Format(domain.DateLayout),
			Description:  s.Description,
		},
		LocationID:  s.LocationID,
		ConditionID: s.ConditionID,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
	if s.DeletedAt != nil {
		deleted := s.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &deleted
	}
	return resp
}

func growthToAPI(m *ent.GrowthMetric) growthResponse {
	return growthResponse{
		ID:           m.ID,
		SpecimenID:   m.SpecimenID,
		Height:       m.Height,
		LeafCount:    m.LeafCount,
		StemDiameter: m.StemDiameter,
		HealthStatus: string(m.HealthStatus),
		MeasuredAt:   m.MeasuredAt.Format(time.RFC3339),
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

func linkToAPI(l *ent.SpecimenResearcher) linkResponse {
	return linkResponse{
		ID:           l.ID,
		SpecimenID:   l.SpecimenID,
		ResearcherID: l.ResearcherID,
		Role:         string(l.Role),
		AssignedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func auditToAPI(a *ent.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:          a.ID,
		SpecimenID:  a.SpecimenID,
		Action:      string(a.Action),
		Details:     a.Details,
		PerformedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
