package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func TestRecordGrowth_PersistsAndAudits(t *testing.T) {
	client := openClient(t, "record_growth")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewRecordGrowthUseCase(client, audit.NewRecorder())

	m, err := uc.Execute(context.Background(), s.ID, domain.GrowthInput{
		Height:       f64(18.2),
		LeafCount:    intptr(9),
		StemDiameter: f64(0.8),
		HealthStatus: "good",
	})
	if err != nil {
		t.Fatalf("record growth: %v", err)
	}
	if m.SpecimenID != s.ID {
		t.Errorf("specimen_id = %s, want %s", m.SpecimenID, s.ID)
	}
	if m.Height == nil || *m.Height != 18.2 {
		t.Errorf("height = %v, want 18.2", m.Height)
	}
	if m.MeasuredAt.IsZero() {
		t.Error("measured_at not defaulted")
	}

	entries := auditEntries(t, client, s.ID, auditlog.ActionGrowthRecorded)
	if len(entries) != 1 {
		t.Fatalf("growth_recorded audit entries = %d, want 1", len(entries))
	}
	if entries[0].Details["metric_id"] != m.ID {
		t.Errorf("audit metric_id = %v, want %s", entries[0].Details["metric_id"], m.ID)
	}
}

func TestRecordGrowth_ChronologyRejected(t *testing.T) {
	client := openClient(t, "record_growth_chrono")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewRecordGrowthUseCase(client, audit.NewRecorder())

	// Specimen was sampled 10 days ago; measure 20 days ago.
	early := time.Now().AddDate(0, 0, -20).Format(time.RFC3339)
	_, err := uc.Execute(context.Background(), s.ID, domain.GrowthInput{
		Height:     f64(5),
		MeasuredAt: &early,
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeMeasuredTooEarly {
		t.Fatalf("got %v, want %s", err, apperrors.CodeMeasuredTooEarly)
	}

	if entries := auditEntries(t, client, s.ID, auditlog.ActionGrowthRecorded); len(entries) != 0 {
		t.Errorf("growth_recorded audit entries = %d, want 0", len(entries))
	}
}

func TestRecordGrowth_SoftDeletedRejected(t *testing.T) {
	client := openClient(t, "record_growth_deleted")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	recorder := audit.NewRecorder()
	ctx := context.Background()

	if _, err := NewDeleteSpecimenUseCase(client, recorder).SoftDelete(ctx, s.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	_, err := NewRecordGrowthUseCase(client, recorder).Execute(ctx, s.ID, domain.GrowthInput{Height: f64(5)})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusConflict || appErr.Code != apperrors.CodeSpecimenDeleted {
		t.Fatalf("got %v, want 409 %s", err, apperrors.CodeSpecimenDeleted)
	}
}

func TestRecordGrowth_SpecimenNotFound(t *testing.T) {
	client := openClient(t, "record_growth_404")
	uc := NewRecordGrowthUseCase(client, audit.NewRecorder())

	_, err := uc.Execute(context.Background(), "smp-missing", domain.GrowthInput{})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
}
