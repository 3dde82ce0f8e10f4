package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// UpdateSpecimenUseCase replaces a specimen's detail bundle and records
// the old/new snapshots in the audit trail.
type UpdateSpecimenUseCase struct {
	client   *ent.Client
	recorder *audit.Recorder
}

// NewUpdateSpecimenUseCase creates a new UpdateSpecimenUseCase.
func NewUpdateSpecimenUseCase(client *ent.Client, recorder *audit.Recorder) *UpdateSpecimenUseCase {
	return &UpdateSpecimenUseCase{client: client, recorder: recorder}
}

// Execute overwrites the specimen's detail fields. Soft-deleted
// specimens are frozen: any update attempt is a state conflict.
func (uc *UpdateSpecimenUseCase) Execute(ctx context.Context, id string, detail domain.SpecimenDetail) (*ent.Specimen, error) {
	current, err := uc.client.Specimen.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", id))
		}
		return nil, fmt.Errorf("get specimen %s: %w", id, err)
	}
	if current.Status == specimen.StatusDeleted {
		return nil, apperrors.Conflict(apperrors.CodeSpecimenDeleted,
			fmt.Sprintf("specimen %s is deleted and cannot be modified", id))
	}

	samplingDate, verr := detail.ValidateForUpdate()
	if verr != nil {
		return nil, verr
	}

	oldDetail := detailMap(current)

	var updated *ent.Specimen
	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		s, err := tx.Specimen.UpdateOneID(id).
			SetSpecies(detail.Species).
			SetCommonName(*detail.CommonName).
			SetSamplingDate(samplingDate).
			SetDescription(detail.Description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update specimen %s: %w", id, err)
		}

		if err := uc.recorder.Record(ctx, tx, auditlog.ActionUpdated, id, map[string]interface{}{
			"old_detail": oldDetail,
			"new_detail": detailMap(s),
		}); err != nil {
			return err
		}

		updated = s
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("specimen updated", zap.String("specimen_id", id))
	return updated, nil
}
