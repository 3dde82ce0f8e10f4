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
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// RecordGrowthUseCase appends a growth metric to a specimen's series
// and audits the observation.
type RecordGrowthUseCase struct {
	client   *ent.Client
	recorder *audit.Recorder
}

// NewRecordGrowthUseCase creates a new RecordGrowthUseCase.
func NewRecordGrowthUseCase(client *ent.Client, recorder *audit.Recorder) *RecordGrowthUseCase {
	return &RecordGrowthUseCase{client: client, recorder: recorder}
}

// Execute validates measurement ranges, enforces the chronology
// invariant against the specimen's sampling date, then persists the
// metric and its audit entry atomically. Soft-deleted specimens cannot
// take new measurements.
func (uc *RecordGrowthUseCase) Execute(ctx context.Context, specimenID string, input domain.GrowthInput) (*ent.GrowthMetric, error) {
	owner, err := uc.client.Specimen.Get(ctx, specimenID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSpecimenNotFound,
				fmt.Sprintf("specimen %s not found", specimenID))
		}
		return nil, fmt.Errorf("get specimen %s: %w", specimenID, err)
	}
	if owner.Status == specimen.StatusDeleted {
		return nil, apperrors.Conflict(apperrors.CodeSpecimenDeleted,
			fmt.Sprintf("specimen %s is deleted and cannot be modified", specimenID))
	}

	measuredAt, verr := input.Validate(time.Now())
	if verr != nil {
		return nil, verr
	}
	if cerr := domain.CheckChronology(measuredAt, owner.SamplingDate); cerr != nil {
		return nil, cerr
	}

	var metric *ent.GrowthMetric
	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		builder := tx.GrowthMetric.Create().
			SetID(newID("grw")).
			SetSpecimenID(specimenID).
			SetMeasuredAt(measuredAt)
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
			return fmt.Errorf("create growth metric: %w", err)
		}

		details := map[string]interface{}{
			"metric_id":   m.ID,
			"measured_at": m.MeasuredAt.Format(time.RFC3339),
		}
		if input.HealthStatus != "" {
			details["health_status"] = input.HealthStatus
		}
		if err := uc.recorder.Record(ctx, tx, auditlog.ActionGrowthRecorded, specimenID, details); err != nil {
			return err
		}

		metric = m
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("growth metric recorded",
		zap.String("specimen_id", specimenID),
		zap.String("metric_id", metric.ID),
	)
	return metric, nil
}
