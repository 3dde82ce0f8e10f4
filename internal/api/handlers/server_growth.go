package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListSpecimenGrowthMetrics handles GET /specimens/:id/growth-metrics.
func (s *Server) ListSpecimenGrowthMetrics(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := s.client.Specimen.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get specimen %s: %w", id, err))
		return
	}

	rows, err := s.client.GrowthMetric.Query().
		Where(growthmetric.SpecimenID(id)).
		Order(ent.Desc(growthmetric.FieldMeasuredAt)).
		All(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("list growth metrics of %s: %w", id, err))
		return
	}

	items := make([]growthResponse, 0, len(rows))
	for _, m := range rows {
		items = append(items, growthToAPI(m))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// RecordSpecimenGrowth handles POST /specimens/:id/growth-metrics.
func (s *Server) RecordSpecimenGrowth(c *gin.Context) {
	var input domain.GrowthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}

	metric, err := s.growthUC.Execute(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, growthToAPI(metric))
}

// ListGrowthMetrics handles GET /growth-metrics.
func (s *Server) ListGrowthMetrics(c *gin.Context) {
	rows, err := s.client.GrowthMetric.Query().
		Order(ent.Desc(growthmetric.FieldMeasuredAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list growth metrics: %w", err))
		return
	}

	items := make([]growthResponse, 0, len(rows))
	for _, m := range rows {
		items = append(items, growthToAPI(m))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateGrowthMetric handles POST /growth-metrics. Same write path as
// the sample-scoped route, with the specimen id in the body.
func (s *Server) CreateGrowthMetric(c *gin.Context) {
	var req growthCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if req.SpecimenID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"request payload failed validation").WithFieldErrors([]apperrors.FieldError{{
			Field: "specimen_id", Code: apperrors.CodeMissingField, Message: "specimen_id is required",
		}}))
		return
	}

	metric, err := s.growthUC.Execute(c.Request.Context(), req.SpecimenID, req.GrowthInput)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, growthToAPI(metric))
}

// GetGrowthMetric handles GET /growth-metrics/:id.
func (s *Server) GetGrowthMetric(c *gin.Context) {
	id := c.Param("id")
	m, err := s.client.GrowthMetric.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeGrowthNotFound,
				fmt.Sprintf("growth metric %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get growth metric %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, growthToAPI(m))
}

// UpdateGrowthMetric handles PUT /growth-metrics/:id. Measurement
// corrections re-run range checks and the chronology invariant.
func (s *Server) UpdateGrowthMetric(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var input domain.GrowthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}

	current, err := s.client.GrowthMetric.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeGrowthNotFound,
				fmt.Sprintf("growth metric %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get growth metric %s: %w", id, err))
		return
	}

	// An absent measured_at keeps the stored timestamp.
	measuredAt, verr := input.Validate(current.MeasuredAt)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	owner, err := s.client.Specimen.Get(ctx, current.SpecimenID)
	if err != nil {
		_ = c.Error(fmt.Errorf("get specimen %s: %w", current.SpecimenID, err))
		return
	}
	if cerr := domain.CheckChronology(measuredAt, owner.SamplingDate); cerr != nil {
		_ = c.Error(cerr)
		return
	}

	builder := s.client.GrowthMetric.UpdateOneID(id).SetMeasuredAt(measuredAt)
	if input.Height != nil {
		builder = builder.SetHeight(*input.Height)
	}
	if input.LeafCount != nil {
		builder = builder.SetLeafCount(*input.LeafCount)
	}
	if input.StemDiameter != nil {
		builder = builder.SetStemDiameter(*input.StemDiameter)
	}
	if input.HealthStatus != "" {
		builder = builder.SetHealthStatus(growthmetric.HealthStatus(input.HealthStatus))
	}
	m, err := builder.Save(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("update growth metric %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, growthToAPI(m))
}

// DeleteGrowthMetric handles DELETE /growth-metrics/:id.
func (s *Server) DeleteGrowthMetric(c *gin.Context) {
	id := c.Param("id")
	if err := s.client.GrowthMetric.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeGrowthNotFound,
				fmt.Sprintf("growth metric %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("delete growth metric %s: %w", id, err))
		return
	}
	c.Status(http.StatusNoContent)
}
