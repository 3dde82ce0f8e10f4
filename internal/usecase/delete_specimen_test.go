package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func TestSoftDelete_IdempotentWithSingleAudit(t *testing.T) {
	client := openClient(t, "soft_delete")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewDeleteSpecimenUseCase(client, audit.NewRecorder())
	ctx := context.Background()

	first, err := uc.SoftDelete(ctx, s.ID)
	if err != nil {
		t.Fatalf("first soft delete: %v", err)
	}
	if first.AlreadyDeleted {
		t.Error("first delete reported AlreadyDeleted")
	}
	if first.Specimen.Status != specimen.StatusDeleted || first.Specimen.DeletedAt == nil {
		t.Errorf("specimen not tombstoned: status=%s deleted_at=%v",
			first.Specimen.Status, first.Specimen.DeletedAt)
	}

	second, err := uc.SoftDelete(ctx, s.ID)
	if err != nil {
		t.Fatalf("second soft delete: %v", err)
	}
	if !second.AlreadyDeleted {
		t.Error("second delete did not report AlreadyDeleted")
	}

	entries := auditEntries(t, client, s.ID, auditlog.ActionDeleted)
	if len(entries) != 1 {
		t.Fatalf("deleted audit entries = %d, want 1", len(entries))
	}
	if entries[0].Details["deletion_type"] != "soft" {
		t.Errorf("deletion_type = %v, want soft", entries[0].Details["deletion_type"])
	}
}

func TestSoftDelete_NotFound(t *testing.T) {
	client := openClient(t, "soft_delete_404")
	uc := NewDeleteSpecimenUseCase(client, audit.NewRecorder())

	_, err := uc.SoftDelete(context.Background(), "smp-missing")
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
}

func TestHardDelete_CascadesAndKeepsAudit(t *testing.T) {
	client := openClient(t, "hard_delete")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	recorder := audit.NewRecorder()
	ctx := context.Background()

	// Attach a growth metric and a researcher link to verify the cascade.
	if _, err := NewRecordGrowthUseCase(client, recorder).Execute(ctx, s.ID, domain.GrowthInput{
		Height: f64(12.5), LeafCount: intptr(4),
	}); err != nil {
		t.Fatalf("record growth: %v", err)
	}
	res, err := client.Researcher.Create().
		SetID(newID("res")).
		SetName("Maria Santos").
		SetEmail("maria@example.org").
		Save(ctx)
	if err != nil {
		t.Fatalf("create researcher: %v", err)
	}
	if _, err := client.SpecimenResearcher.Create().
		SetID(newID("lnk")).
		SetSpecimenID(s.ID).
		SetResearcherID(res.ID).
		Save(ctx); err != nil {
		t.Fatalf("create link: %v", err)
	}

	uc := NewDeleteSpecimenUseCase(client, recorder)
	if err := uc.HardDelete(ctx, s.ID); err != nil {
		t.Fatalf("hard delete: %v", err)
	}

	if _, err := client.Specimen.Get(ctx, s.ID); !ent.IsNotFound(err) {
		t.Errorf("specimen still present: %v", err)
	}
	if n, _ := client.GrowthMetric.Query().Count(ctx); n != 0 {
		t.Errorf("growth metrics remaining = %d, want 0", n)
	}
	if n, _ := client.SpecimenResearcher.Query().Count(ctx); n != 0 {
		t.Errorf("links remaining = %d, want 0", n)
	}
	// The researcher itself survives; only the link goes.
	if _, err := client.Researcher.Get(ctx, res.ID); err != nil {
		t.Errorf("researcher removed by specimen hard delete: %v", err)
	}

	// The audit trail outlives the specimen.
	entries := auditEntries(t, client, s.ID, auditlog.ActionDeleted)
	if len(entries) != 1 {
		t.Fatalf("deleted audit entries = %d, want 1", len(entries))
	}
	if entries[0].Details["deletion_type"] != "hard" {
		t.Errorf("deletion_type = %v, want hard", entries[0].Details["deletion_type"])
	}

	// Repeating is a 404: the row is gone.
	err = uc.HardDelete(ctx, s.ID)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("second hard delete: got %v, want 404", err)
	}
}

func TestHardDelete_WorksFromSoftDeleted(t *testing.T) {
	client := openClient(t, "hard_after_soft")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewDeleteSpecimenUseCase(client, audit.NewRecorder())
	ctx := context.Background()

	if _, err := uc.SoftDelete(ctx, s.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := uc.HardDelete(ctx, s.ID); err != nil {
		t.Fatalf("hard delete after soft: %v", err)
	}

	// One soft + one hard entry on the same trail.
	entries := auditEntries(t, client, s.ID, auditlog.ActionDeleted)
	if len(entries) != 2 {
		t.Fatalf("deleted audit entries = %d, want 2", len(entries))
	}
}
