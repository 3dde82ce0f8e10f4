package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func TestUpdateSpecimen_ReplacesDetailAndAudits(t *testing.T) {
	client := openClient(t, "update_specimen")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewUpdateSpecimenUseCase(client, audit.NewRecorder())

	detail := validDetail()
	detail.Species = "Nepenthes rajah"
	detail.Description = "relocated plot"
	updated, err := uc.Execute(context.Background(), s.ID, detail)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Species != "Nepenthes rajah" {
		t.Errorf("species = %s, want Nepenthes rajah", updated.Species)
	}
	if !updated.UpdatedAt.After(s.UpdatedAt) {
		t.Errorf("updated_at not advanced: %v <= %v", updated.UpdatedAt, s.UpdatedAt)
	}

	entries := auditEntries(t, client, s.ID, auditlog.ActionUpdated)
	if len(entries) != 1 {
		t.Fatalf("updated audit entries = %d, want 1", len(entries))
	}
	details := entries[0].Details
	oldDetail, ok := details["old_detail"].(map[string]interface{})
	if !ok {
		t.Fatalf("old_detail missing: %v", details)
	}
	newDetail, ok := details["new_detail"].(map[string]interface{})
	if !ok {
		t.Fatalf("new_detail missing: %v", details)
	}
	if oldDetail["species"] != s.Species || newDetail["species"] != "Nepenthes rajah" {
		t.Errorf("audit snapshot species = %v -> %v, want %s -> Nepenthes rajah",
			oldDetail["species"], newDetail["species"], s.Species)
	}
}

func TestUpdateSpecimen_NotFound(t *testing.T) {
	client := openClient(t, "update_specimen_404")
	uc := NewUpdateSpecimenUseCase(client, audit.NewRecorder())

	_, err := uc.Execute(context.Background(), "smp-missing", validDetail())
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %v, want 404", err)
	}
}

func TestUpdateSpecimen_SoftDeletedRejected(t *testing.T) {
	client := openClient(t, "update_specimen_deleted")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	recorder := audit.NewRecorder()

	if _, err := NewDeleteSpecimenUseCase(client, recorder).SoftDelete(context.Background(), s.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	_, err := NewUpdateSpecimenUseCase(client, recorder).Execute(context.Background(), s.ID, validDetail())
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusConflict || appErr.Code != apperrors.CodeSpecimenDeleted {
		t.Fatalf("got %v, want 409 %s", err, apperrors.CodeSpecimenDeleted)
	}

	// The rejected update must not leave an audit entry.
	if entries := auditEntries(t, client, s.ID, auditlog.ActionUpdated); len(entries) != 0 {
		t.Errorf("updated audit entries = %d, want 0", len(entries))
	}
}
