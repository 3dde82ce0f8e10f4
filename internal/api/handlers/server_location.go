package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListLocations handles GET /locations.
func (s *Server) ListLocations(c *gin.Context) {
	rows, err := s.client.Location.Query().
		Order(ent.Desc(location.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list locations: %w", err))
		return
	}

	items := make([]locationResponse, 0, len(rows))
	for _, l := range rows {
		items = append(items, locationToAPI(l))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateLocation handles POST /locations.
func (s *Server) CreateLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.LocationData.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	builder := s.client.Location.Create().
		SetID(newEntityID("loc")).
		SetLatitude(*req.LocationData.Coordinates.Latitude).
		SetLongitude(*req.LocationData.Coordinates.Longitude).
		SetRegion(req.LocationData.Region).
		SetCountry(req.LocationData.Country)
	if req.LocationData.SiteType != "" {
		builder = builder.SetSiteType(location.SiteType(req.LocationData.SiteType))
	}
	l, err := builder.Save(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("create location: %w", err))
		return
	}
	c.JSON(http.StatusCreated, locationToAPI(l))
}

// GetLocation handles GET /locations/:id.
func (s *Server) GetLocation(c *gin.Context) {
	id := c.Param("id")
	l, err := s.client.Location.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeLocationNotFound,
				fmt.Sprintf("location %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get location %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, locationToAPI(l))
}

// UpdateLocation handles PUT /locations/:id.
func (s *Server) UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.LocationData.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	builder := s.client.Location.UpdateOneID(id).
		SetLatitude(*req.LocationData.Coordinates.Latitude).
		SetLongitude(*req.LocationData.Coordinates.Longitude).
		SetRegion(req.LocationData.Region).
		SetCountry(req.LocationData.Country)
	if req.LocationData.SiteType != "" {
		builder = builder.SetSiteType(location.SiteType(req.LocationData.SiteType))
	} else {
		builder = builder.ClearSiteType()
	}
	l, err := builder.Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeLocationNotFound,
				fmt.Sprintf("location %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("update location %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, locationToAPI(l))
}

// DeleteLocation handles DELETE /locations/:id. Deletion is rejected
// while any specimen, regardless of status, references the location.
func (s *Server) DeleteLocation(c *gin.Context) {
	if err := s.refDelUC.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
