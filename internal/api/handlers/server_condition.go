package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListConditions handles GET /conditions.
func (s *Server) ListConditions(c *gin.Context) {
	rows, err := s.client.EnvironmentalCondition.Query().
		Order(ent.Desc(environmentalcondition.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list conditions: %w", err))
		return
	}

	items := make([]conditionResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, conditionToAPI(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// CreateCondition handles POST /conditions.
func (s *Server) CreateCondition(c *gin.Context) {
	var req conditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.ConditionData.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	soil := req.ConditionData.SoilComposition
	row, err := s.client.EnvironmentalCondition.Create().
		SetID(newEntityID("cond")).
		SetTemperature(*req.ConditionData.Temperature).
		SetHumidity(*req.ConditionData.Humidity).
		SetAltitude(*req.ConditionData.Altitude).
		SetSoilPh(*soil.PH).
		SetSoilType(environmentalcondition.SoilType(soil.Type)).
		SetSoilNutrients(soil.Nutrients).
		Save(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("create condition: %w", err))
		return
	}
	c.JSON(http.StatusCreated, conditionToAPI(row))
}

// GetCondition handles GET /conditions/:id.
func (s *Server) GetCondition(c *gin.Context) {
	id := c.Param("id")
	row, err := s.client.EnvironmentalCondition.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeConditionNotFound,
				fmt.Sprintf("condition %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("get condition %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, conditionToAPI(row))
}

// UpdateCondition handles PUT /conditions/:id.
func (s *Server) UpdateCondition(c *gin.Context) {
	id := c.Param("id")
	var req conditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid JSON body"))
		return
	}
	if verr := req.ConditionData.Validate(); verr != nil {
		_ = c.Error(verr)
		return
	}

	soil := req.ConditionData.SoilComposition
	row, err := s.client.EnvironmentalCondition.UpdateOneID(id).
		SetTemperature(*req.ConditionData.Temperature).
		SetHumidity(*req.ConditionData.Humidity).
		SetAltitude(*req.ConditionData.Altitude).
		SetSoilPh(*soil.PH).
		SetSoilType(environmentalcondition.SoilType(soil.Type)).
		SetSoilNutrients(soil.Nutrients).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeConditionNotFound,
				fmt.Sprintf("condition %s not found", id)))
			return
		}
		_ = c.Error(fmt.Errorf("update condition %s: %w", id, err))
		return
	}
	c.JSON(http.StatusOK, conditionToAPI(row))
}

// DeleteCondition handles DELETE /conditions/:id. Restricted while any
// specimen references the condition.
func (s *Server) DeleteCondition(c *gin.Context) {
	if err := s.refDelUC.DeleteCondition(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
