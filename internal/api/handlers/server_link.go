package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListLinks handles GET /specimen-researchers.
func (s *Server) ListLinks(c *gin.Context) {
	rows, err := s.client.SpecimenResearcher.Query().
		Order(ent.Desc(specimenresearcher.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list specimen-researcher links: %w", err))
		return
	}

	items := make([]linkResponse, 0, len(rows))
	for _, l := range rows {
		items = append(items, linkToAPI(l))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateLink handles POST /specimen-researchers. Each researcher can be
// linked to a specimen once; the pair is a uniqueness conflict on
// repeat. Soft-deleted specimens cannot take new links.
func (s *Server) CreateLink(c *gin.Context) {
	ctx := c.Request.Context()
	var req linkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}

	var fieldErrors []apperrors.FieldError
	if req.SpecimenID == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field: "specimen_id", Code: apperrors.CodeMissingField, Message: "specimen_id is required",
		})
	}
	if req.ResearcherID == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{
			Field: "researcher_id", Code: apperrors.CodeMissingField, Message: "researcher_id is required",
		})
	}
	if len(fieldErrors) > 0 {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"request payload failed validation").WithFieldErrors(fieldErrors))
		return
	}
	if verr := domain.ValidateRole(req.Role); verr != nil {
		_ = c.Error(verr)
		return
	}

	target, err := s.client.Specimen.Get(ctx, req.SpecimenID)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s does not exist", req.SpecimenID)))
			return
		}
		_ = c.Error(fmt.Errorf("get specimen %s: %w", req.SpecimenID, err))
		return
	}
	if target.Status == specimen.StatusDeleted {
		_ = c.Error(apperrors.Conflict(apperrors.CodeSpecimenDeleted,
			fmt.Sprintf("specimen %s is deleted and cannot be modified", req.SpecimenID)))
		return
	}
	if _, err := s.client.Researcher.Get(ctx, req.ResearcherID); err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeResearcherNotFound,
				fmt.Sprintf("researcher %s does not exist", req.ResearcherID)))
			return
		}
		_ = c.Error(fmt.Errorf("get researcher %s: %w", req.ResearcherID, err))
		return
	}

	builder := s.client.SpecimenResearcher.Create().
		SetID(newEntityID("lnk")).
		SetSpecimenID(req.SpecimenID).
		SetResearcherID(req.ResearcherID)
	if req.Role != "" {
		builder = builder.SetRole(specimenresearcher.Role(req.Role))
	}
	link, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeDuplicateLink,
				fmt.Sprintf("researcher %s is already linked to specimen %s",
					req.ResearcherID, req.SpecimenID)))
			return
		}
		_ = c.Error(fmt.Errorf("create specimen-researcher link: %w", err))
		return
	}
	c.JSON(http.StatusCreated, linkToAPI(link))
}

// GetLink handles GET /specimen-researchers/:id.
func (s *Server) GetLink(c *gin.Context) {
	id := c.Param("id")
	link, err := s.client.SpecimenResearcher.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeLinkNotFound,
				fmt.Sprintf("specimen-researcher link %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get specimen-researcher link %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, linkToAPI(link))
}

// DeleteLink handles DELETE /specimen-researchers/:id.
func (s *Server) DeleteLink(c *gin.Context) {
	id := c.Param("id")
	if err := s.client.SpecimenResearcher.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeLinkNotFound,
				fmt.Sprintf("specimen-researcher link %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("delete specimen-researcher link %s: %w", id, err))
		return
	}
	c.Status(http.StatusNoContent)
}
