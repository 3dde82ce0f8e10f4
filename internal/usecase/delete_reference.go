package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

// DeleteReferenceUseCase deletes reference entities under the
// referential guards: locations and conditions are restrict-delete
// while any specimen points at them (soft-deleted specimens count),
// researcher deletion cascades to the specimen links.
type DeleteReferenceUseCase struct {
	client *ent.Client
}

// NewDeleteReferenceUseCase creates a new DeleteReferenceUseCase.
func NewDeleteReferenceUseCase(client *ent.Client) *DeleteReferenceUseCase {
	return &DeleteReferenceUseCase{client: client}
}

// DeleteLocation removes a location unless a specimen still references it.
func (uc *DeleteReferenceUseCase) DeleteLocation(ctx context.Context, id string) error {
	n, err := uc.client.Specimen.Query().
		Where(specimen.LocationID(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count specimens for location %s: %w", id, err)
	}
	if n > 0 {
		return apperrors.Conflict(apperrors.CodeStillReferenced,
			fmt.Sprintf("location %s is referenced by %d specimen(s)", id, n)).
			WithParams(map[string]interface{}{"specimen_count": n})
	}
	if err := uc.client.Location.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeLocationNotFound,
				fmt.Sprintf("location %s not found", id))
		}
		return fmt.Errorf("delete location %s: %w", id, err)
	}
	logger.Info("location deleted", zap.String("location_id", id))
	return nil
}

// DeleteCondition removes a condition unless a specimen still references it.
func (uc *DeleteReferenceUseCase) DeleteCondition(ctx context.Context, id string) error {
	n, err := uc.client.Specimen.Query().
		Where(specimen.ConditionID(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count specimens for condition %s: %w", id, err)
	}
	if n > 0 {
		return apperrors.Conflict(apperrors.CodeStillReferenced,
			fmt.Sprintf("condition %s is referenced by %d specimen(s)", id, n)).
			WithParams(map[string]interface{}{"specimen_count": n})
	}
	if err := uc.client.EnvironmentalCondition.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeConditionNotFound,
				fmt.Sprintf("condition %s not found", id))
		}
		return fmt.Errorf("delete condition %s: %w", id, err)
	}
	logger.Info("condition deleted", zap.String("condition_id", id))
	return nil
}

// DeleteResearcher removes a researcher and all their specimen links.
func (uc *DeleteReferenceUseCase) DeleteResearcher(ctx context.Context, id string) error {
	if _, err := uc.client.Researcher.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeResearcherNotFound,
				fmt.Sprintf("researcher %s not found", id))
		}
		return fmt.Errorf("get researcher %s: %w", id, err)
	}

	txErr := withTx(ctx, uc.client, func(tx *ent.Tx) error {
		if _, err := tx.SpecimenResearcher.Delete().
			Where(specimenresearcher.ResearcherID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete links of researcher %s: %w", id, err)
		}
		if err := tx.Researcher.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete researcher %s: %w", id, err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	logger.Info("researcher deleted", zap.String("researcher_id", id))
	return nil
}
