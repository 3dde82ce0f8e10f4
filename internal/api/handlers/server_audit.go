package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

// ListAuditLogs handles GET /audit-logs, newest first.
func (s *Server) ListAuditLogs(c *gin.Context) {
	rows, err := s.client.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(fmt.Errorf("list audit logs: %w", err))
		return
	}

	items := make([]auditLogResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, auditToAPI(a))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// ListSpecimenAuditLogs handles GET /specimens/:id/audit-logs. The
// trail is keyed by the loose specimen id string, so it remains
// readable after a hard delete.
func (s *Server) ListSpecimenAuditLogs(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	rows, err := s.client.AuditLog.Query().
		Where(auditlog.SpecimenID(id)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		_ = c.Error(fmt.Errorf("list audit logs of %s: %w", id, err))
		return
	}
	if len(rows) == 0 {
		// No trail and no specimen: the id never existed.
		if _, err := s.client.Specimen.Get(ctx, id); err != nil {
			if ent.IsNotFound(err) {
				_ = c.Error(apperrors.NotFound(apperrors.CodeSpecimenNotFound,
					fmt.Sprintf("specimen %s not found", id)))
				return
			}
			_ = c.Error(fmt.Errorf("get specimen %s: %w", id, err))
			return
		}
	}

	items := make([]auditLogResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, auditToAPI(a))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
