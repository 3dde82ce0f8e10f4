package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/usecase"
)

// ListSpecimens handles GET /specimens. Soft-deleted specimens are
// excluded; newest first.
func (s *Server) ListSpecimens(c *gin.Context) {
	rows, err := s.client.Specimen.Query().
		Where(specimen.StatusEQ(specimen.StatusActive)).
		Order(ent.Desc(specimen.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list specimens: %w", err))
		return
	}

	items := make([]specimenResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, specimenToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateSpecimen handles POST /specimens.
func (s *Server) CreateSpecimen(c *gin.Context) {
	var req specimenCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if req.LocationID == "" || req.ConditionID == "" {
		var fieldErrors []apperrors.FieldError
		if req.LocationID == "" {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field: "location_id", Code: apperrors.CodeMissingField, Message: "location_id is required",
			})
		}
		if req.ConditionID == "" {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field: "condition_id", Code: apperrors.CodeMissingField, Message: "condition_id is required",
			})
		}
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"request payload failed validation").WithFieldErrors(fieldErrors))
		return
	}

	created, err := s.createUC.Execute(c.Request.Context(), usecase.CreateSpecimenInput{
		Detail:      req.SampleDetail,
		LocationID:  req.LocationID,
		ConditionID: req.ConditionID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, specimenToAPI(created))
}

// GetSpecimen handles GET /specimens/:id. An active specimen returns
// the full detail with referenced documents and child collections; a
// soft-deleted one returns the tombstone shape.
func (s *Server) GetSpecimen(c *gin.Context) {
	id := c.Param("id")
	row, err := s.client.Specimen.Query().
		Where(specimen.ID(id)).
		WithLocation().
		WithCondition().
		WithResearcherLinks().
		WithGrowthMetrics(func(q *ent.GrowthMetricQuery) {
			q.Order(ent.Desc(growthmetric.FieldMeasuredAt))
		}).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get specimen %s: %w", id, err))
		return
	}

	if row.Status == specimen.StatusDeleted {
		c.JSON(http.StatusOK, tombstoneFor(row))
		return
	}

	resp := specimenDetailResponse{
		specimenResponse: specimenToAPI(row),
		Researchers:      make([]linkResponse, 0, len(row.Edges.ResearcherLinks)),
		GrowthMetrics:    make([]growthResponse, 0, len(row.Edges.GrowthMetrics)),
	}
	if row.Edges.Location != nil {
		loc := locationToAPI(row.Edges.Location)
		resp.Location = &loc
	}
	if row.Edges.Condition != nil {
		cond := conditionToAPI(row.Edges.Condition)
		resp.Condition = &cond
	}
	for _, link := range row.Edges.ResearcherLinks {
		resp.Researchers = append(resp.Researchers, linkToAPI(link))
	}
	for _, m := range row.Edges.GrowthMetrics {
		resp.GrowthMetrics = append(resp.GrowthMetrics, growthToAPI(m))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSpecimen handles PUT /specimens/:id. Soft-deleted specimens
// reject updates with a state conflict.
func (s *Server) UpdateSpecimen(c *gin.Context) {
	var req specimenUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}

	updated, err := s.updateUC.Execute(c.Request.Context(), c.Param("id"), req.SampleDetail)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, specimenToAPI(updated))
}

// SoftDeleteSpecimen handles DELETE /specimens/:id. Repeating the call
// on an already deleted specimen succeeds without another audit entry.
func (s *Server) SoftDeleteSpecimen(c *gin.Context) {
	id := c.Param("id")
	result, err := s.deleteUC.SoftDelete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if result.AlreadyDeleted {
		c.JSON(http.StatusOK, gin.H{
			"id":      id,
			"status":  string(specimen.StatusDeleted),
			"message": "specimen was already deleted",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"status":  string(specimen.StatusDeleted),
		"message": "specimen deleted",
	})
}

// HardDeleteSpecimen handles DELETE /specimens/:id/hard. Physically
// removes the specimen with its growth metrics and researcher links;
// a second call is a 404.
func (s *Server) HardDeleteSpecimen(c *gin.Context) {
	if err := s.deleteUC.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tombstoneFor(row *ent.Specimen) specimenTombstoneResponse {
	t := specimenTombstoneResponse{
		ID:      row.ID,
		Status:  string(specimen.StatusDeleted),
		Message: "this specimen has been deleted",
	}
	if row.DeletedAt != nil {
		t.DeletedAt = row.DeletedAt.Format(time.RFC3339)
	}
	return t
}
