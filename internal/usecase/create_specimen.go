// Package usecase contains the transactional specimen write flows.
//
// Each use case maps to one request-scoped transaction; the audit
// append for a specimen write is part of that same transaction so the
// pair is all-or-nothing. The aggregate-creation workflow (condition,
// then specimen, then researcher link) deliberately spans separate
// calls and is NOT atomic across them: a failure partway leaves earlier
// reference rows in place for caller-driven cleanup.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// CreateSpecimenInput represents the input for creating a specimen.
type CreateSpecimenInput struct {
	Detail      domain.SpecimenDetail
	LocationID  string
	ConditionID string
}

// CreateSpecimenUseCase creates a specimen and its creation audit entry
// in one transaction.
type CreateSpecimenUseCase struct {
	client   *ent.Client
	recorder *audit.Recorder
}

// NewCreateSpecimenUseCase creates a new CreateSpecimenUseCase.
func NewCreateSpecimenUseCase(client *ent.Client, recorder *audit.Recorder) *CreateSpecimenUseCase {
	return &CreateSpecimenUseCase{client: client, recorder: recorder}
}

// Execute validates the detail record, verifies both references exist,
// then persists specimen + audit entry atomically.
func (uc *CreateSpecimenUseCase) Execute(ctx context.Context, input CreateSpecimenInput) (*ent.Specimen, error) {
	// Step 1: construction-time validation of the detail bundle.
	samplingDate, verr := input.Detail.ValidateForCreate(time.Now())
	if verr != nil {
		return nil, verr
	}

	// Step 2: both references must exist at creation.
	if _, err := uc.client.Location.Get(ctx, input.LocationID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.Conflict(apperrors.CodeLocationNotFound,
				fmt.Sprintf("location %s does not exist", input.LocationID))
		}
		return nil, fmt.Errorf("get location %s: %w", input.LocationID, err)
	}
	if _, err := uc.client.EnvironmentalCondition.Get(ctx, input.ConditionID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.Conflict(apperrors.CodeConditionNotFound,
				fmt.Sprintf("condition %s does not exist", input.ConditionID))
		}
		return nil, fmt.Errorf("get condition %s: %w", input.ConditionID, err)
	}

	// Step 3: specimen row + audit entry in one transaction.
	var created *ent.Specimen
	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		builder := tx.Specimen.Create().
			SetID(newID("smp")).
			SetSpecies(input.Detail.Species).
			SetCommonName(*input.Detail.CommonName).
			SetSamplingDate(samplingDate).
			SetLocationID(input.LocationID).
			SetConditionID(input.ConditionID)
		if input.Detail.Description != "" {
			builder = builder.SetDescription(input.Detail.Description)
		}
		specimen, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create specimen: %w", err)
		}

		if err := uc.recorder.Record(ctx, tx, auditlog.ActionCreated, specimen.ID, map[string]interface{}{
			"species":     specimen.Species,
			"location_id": specimen.LocationID,
		}); err != nil {
			return err
		}

		created = specimen
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("specimen created",
		zap.String("specimen_id", created.ID),
		zap.String("species", created.Species),
	)
	return created, nil
}

// withTx runs fn in a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// newID generates a prefixed UUID v7 (time-ordered, K-sortable).
func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return prefix + "-" + uuid.New().String()
	}
	return prefix + "-" + id.String()
}

// detailMap renders a specimen's detail bundle for audit snapshots.
func detailMap(s *ent.Specimen) map[string]interface{} {
	return map[string]interface{}{
		"species":       s.Species,
		"common_name":   s.CommonName,
		"sampling_date": s.SamplingDate.Format(domain.DateLayout),
		"description":   s.Description,
	}
}
