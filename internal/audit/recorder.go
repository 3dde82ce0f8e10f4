// Package audit implements the specimen audit trail.
//
// Entries are append-only compliance records: the application never
// mutates or deletes them. Every append runs inside the transaction of
// the specimen write that triggered it, so the write and its audit row
// commit or roll back together.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// Recorder appends audit records within a caller-owned transaction.
type Recorder struct{}

// NewRecorder creates a new audit Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one entry using the given transaction. A failed append
// fails the surrounding transaction; there is no best-effort path.
func (r *Recorder) Record(ctx context.Context, tx *ent.Tx, action auditlog.Action, specimenID string, details map[string]interface{}) error {
	create := tx.AuditLog.Create().
		SetID(newEntryID()).
		SetAction(action).
		SetSpecimenID(specimenID)
	if details != nil {
		create = create.SetDetails(details)
	}
	if _, err := create.Save(ctx); err != nil {
		logger.Error("failed to append audit log",
			zap.String("action", string(action)),
			zap.String("specimen_id", specimenID),
			zap.Error(err),
		)
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "audit-" + uuid.New().String()
	}
	return "audit-" + id.String()
}
