package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// SoftDeleteResult reports the outcome of a soft delete.
type SoftDeleteResult struct {
	Specimen       *ent.Specimen
	AlreadyDeleted bool
}

// DeleteSpecimenUseCase implements both halves of the delete policy:
// soft delete flips the status flag and keeps every related row; hard
// delete physically removes the specimen and cascades to its growth
// metrics and researcher links. Audit entries survive either way.
type DeleteSpecimenUseCase struct {
	client   *ent.Client
	recorder *audit.Recorder
}

// NewDeleteSpecimenUseCase creates a new DeleteSpecimenUseCase.
func NewDeleteSpecimenUseCase(client *ent.Client, recorder *audit.Recorder) *DeleteSpecimenUseCase {
	return &DeleteSpecimenUseCase{client: client, recorder: recorder}
}

// SoftDelete marks a specimen deleted. Repeating it on an already
// deleted specimen is a no-op success and appends nothing.
func (uc *DeleteSpecimenUseCase) SoftDelete(ctx context.Context, id string) (*SoftDeleteResult, error) {
	current, err := uc.client.Specimen.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", id))
		}
		return nil, fmt.Errorf("get specimen %s: %w", id, err)
	}
	if current.Status == specimen.StatusDeleted {
		return &SoftDeleteResult{Specimen: current, AlreadyDeleted: true}, nil
	}

	var deleted *ent.Specimen
	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		s, err := tx.Specimen.UpdateOneID(id).
			SetStatus(specimen.StatusDeleted).
			SetDeletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("soft delete specimen %s: %w", id, err)
		}

		if err := uc.recorder.Record(ctx, tx, auditlog.ActionDeleted, id, map[string]interface{}{
			"species":       s.Species,
			"deletion_type": "soft",
		}); err != nil {
			return err
		}

		deleted = s
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("specimen soft deleted", zap.String("specimen_id", id))
	return &SoftDeleteResult{Specimen: deleted}, nil
}

// HardDelete physically removes the specimen together with its growth
// metrics and researcher links. It works from either status; repeating
// it is a 404 because the row is gone. The audit rows keep the specimen
// id as a loose string, so the trail outlives the specimen.
func (uc *DeleteSpecimenUseCase) HardDelete(ctx context.Context, id string) error {
	current, err := uc.client.Specimen.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", id))
		}
		return fmt.Errorf("get specimen %s: %w", id, err)
	}

	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		if _, err := tx.GrowthMetric.Delete().
			Where(growthmetric.SpecimenID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete growth metrics of %s: %w", id, err)
		}
		if _, err := tx.SpecimenResearcher.Delete().
			Where(specimenresearcher.SpecimenID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete researcher links of %s: %w", id, err)
		}
		if err := tx.Specimen.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("hard delete specimen %s: %w", id, err)
		}

		return uc.recorder.Record(ctx, tx, auditlog.ActionDeleted, id, map[string]interface{}{
			"species":       current.Species,
			"deletion_type": "hard",
		})
	})
	if txErr != nil {
		return txErr
	}

	logger.Info("specimen hard deleted",
		zap.String("specimen_id", id),
		zap.String("species", current.Species),
	)
	return nil
}
