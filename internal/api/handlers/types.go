package handlers

import "github.com/Kurty-byte/plant-sampling/internal/domain"

// Request bodies. The attribute bundles keep the nested document
// shapes clients already speak (location_data, condition_data,
// sample_detail).

type locationRequest struct {
	LocationData domain.LocationData `json:"location_data"`
}

type conditionRequest struct {
	ConditionData domain.ConditionData `json:"condition_data"`
}

type specimenCreateRequest struct {
	SampleDetail domain.SpecimenDetail `json:"sample_detail"`
	LocationID   string                `json:"location_id"`
	ConditionID  string                `json:"condition_id"`
}

type specimenUpdateRequest struct {
	SampleDetail domain.SpecimenDetail `json:"sample_detail"`
}

type growthCreateRequest struct {
	SpecimenID string `json:"specimen_id"`
	domain.GrowthInput
}

type linkCreateRequest struct {
	SpecimenID   string `json:"specimen_id"`
	ResearcherID string `json:"researcher_id"`
	Role         string `json:"role,omitempty"`
}

// Response bodies.

type locationResponse struct {
	ID           string              `json:"id"`
	LocationData domain.LocationData `json:"location_data"`
	CreatedAt    string              `json:"created_at"`
}

type conditionResponse struct {
	ID            string               `json:"id"`
	ConditionData domain.ConditionData `json:"condition_data"`
	RecordedAt    string               `json:"recorded_at"`
}

type researcherResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type specimenResponse struct {
	ID           string                `json:"id"`
	SampleDetail domain.SpecimenDetail `json:"sample_detail"`
	LocationID   string                `json:"location_id"`
	ConditionID  string                `json:"condition_id"`
	Status       string                `json:"status"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	DeletedAt    *string               `json:"deleted_at,omitempty"`
}

// specimenDetailResponse is the expanded GET /specimens/:id shape with
// the referenced documents and child collections inlined.
type specimenDetailResponse struct {
	specimenResponse
	Location      *locationResponse    `json:"location,omitempty"`
	Condition     *conditionResponse   `json:"condition,omitempty"`
	Researchers   []linkResponse       `json:"researchers"`
	GrowthMetrics []growthResponse     `json:"growth_metrics"`
}

// specimenTombstoneResponse is returned for a soft-deleted specimen
// instead of the full detail.
type specimenTombstoneResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	DeletedAt string `json:"deleted_at,omitempty"`
}

type growthResponse struct {
	ID           string   `json:"id"`
	SpecimenID   string   `json:"specimen_id"`
	Height       *float64 `json:"height,omitempty"`
	LeafCount    *int     `json:"leaf_count,omitempty"`
	StemDiameter *float64 `json:"stem_diameter,omitempty"`
	HealthStatus string   `json:"health_status,omitempty"`
	MeasuredAt   string   `json:"measured_at"`
	CreatedAt    string   `json:"created_at"`
}

type linkResponse struct {
	ID           string `json:"id"`
	SpecimenID   string `json:"specimen_id"`
	ResearcherID string `json:"researcher_id"`
	Role         string `json:"role,omitempty"`
	AssignedAt   string `json:"assigned_at"`
}

type auditLogResponse struct {
	ID          string                 `json:"id"`
	SpecimenID  string                 `json:"specimen_id,omitempty"`
	Action      string                 `json:"action"`
	Details     map[string]interface{} `json:"details,omitempty"`
	PerformedAt string                 `json:"performed_at"`
}
