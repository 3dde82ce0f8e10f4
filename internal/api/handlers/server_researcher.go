package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListResearchers handles GET /researchers, ordered by name.
func (s *Server) ListResearchers(c *gin.Context) {
	rows, err := s.client.Researcher.Query().
		Order(ent.Asc(researcher.FieldName)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list researchers: %w", err))
		return
	}

	items := make([]researcherResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, researcherToAPI(r))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateResearcher handles POST /researchers. Duplicate email is a
// uniqueness conflict.
func (s *Server) CreateResearcher(c *gin.Context) {
	var req domain.ResearcherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	r, err := s.client.Researcher.Create().
		SetID(newEntityID("res")).
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetAffiliation(req.Affiliation).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeDuplicateEmail,
				fmt.Sprintf("a researcher with email %s already exists", req.Email)))
			return
		}
		_ = c.Error(fmt.Errorf("create researcher: %w", err))
		return
	}
	c.JSON(http.StatusCreated, researcherToAPI(r))
}

// GetResearcher handles GET /researchers/:id.
func (s *Server) GetResearcher(c *gin.Context) {
	id := c.Param("id")
	r, err := s.client.Researcher.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeResearcherNotFound,
				fmt.Sprintf("researcher %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get researcher %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, researcherToAPI(r))
}

// UpdateResearcher handles PUT /researchers/:id.
func (s *Server) UpdateResearcher(c *gin.Context) {
	id := c.Param("id")
	var req domain.ResearcherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	r, err := s.client.Researcher.UpdateOneID(id).
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetAffiliation(req.Affiliation).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeResearcherNotFound,
				fmt.Sprintf("researcher %s not found", id)))
			return
		}
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeDuplicateEmail,
				fmt.Sprintf("a researcher with email %s already exists", req.Email)))
			return
		}
		_ = c.Error(fmt.Errorf("update researcher %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, researcherToAPI(r))
}

// DeleteResearcher handles DELETE /researchers/:id. Links to specimens
// go with the researcher.
func (s *Server) DeleteResearcher(c *gin.Context) {
	if err := s.refDelUC.DeleteResearcher(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
