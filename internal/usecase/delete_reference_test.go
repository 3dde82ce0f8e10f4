package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func TestDeleteLocation_RestrictedWhileReferenced(t *testing.T) {
	client := openClient(t, "delete_location")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	recorder := audit.NewRecorder()
	uc := NewDeleteReferenceUseCase(client)
	ctx := context.Background()

	err := uc.DeleteLocation(ctx, locID)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusConflict || appErr.Code != apperrors.CodeStillReferenced {
		t.Fatalf("got %v, want 409 %s", err, apperrors.CodeStillReferenced)
	}

	// Soft-deleted specimens still hold the reference.
	if _, err := NewDeleteSpecimenUseCase(client, recorder).SoftDelete(ctx, s.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := uc.DeleteLocation(ctx, locID); err == nil {
		t.Fatal("location deleted while referenced by soft-deleted specimen")
	}

	// After hard delete the reference is gone and the location can go.
	if err := NewDeleteSpecimenUseCase(client, recorder).HardDelete(ctx, s.ID); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if err := uc.DeleteLocation(ctx, locID); err != nil {
		t.Fatalf("delete unreferenced location: %v", err)
	}
}

func TestDeleteCondition_RestrictedWhileReferenced(t *testing.T) {
	client := openClient(t, "delete_condition")
	locID, condID := seedRefs(t, client)
	mustCreateSpecimen(t, client, locID, condID)
	uc := NewDeleteReferenceUseCase(client)

	err := uc.DeleteCondition(context.Background(), condID)
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeStillReferenced {
		t.Fatalf("got %v, want %s", err, apperrors.CodeStillReferenced)
	}
}

func TestDeleteReference_NotFound(t *testing.T) {
	client := openClient(t, "delete_reference_404")
	uc := NewDeleteReferenceUseCase(client)
	ctx := context.Background()

	for _, fn := range []func() error{
		func() error { return uc.DeleteLocation(ctx, "loc-missing") },
		func() error { return uc.DeleteCondition(ctx, "cond-missing") },
		func() error { return uc.DeleteResearcher(ctx, "res-missing") },
	} {
		err := fn()
		appErr, ok := apperrors.IsAppError(err)
		if !ok || appErr.HTTPStatus != http.StatusNotFound {
			t.Fatalf("got %v, want 404", err)
		}
	}
}

func TestDeleteResearcher_CascadesLinks(t *testing.T) {
	client := openClient(t, "delete_researcher")
	locID, condID := seedRefs(t, client)
	s := mustCreateSpecimen(t, client, locID, condID)
	uc := NewDeleteReferenceUseCase(client)
	ctx := context.Background()

	res, err := client.Researcher.Create().
		SetID(newID("res")).
		SetName("Jun Dela Cruz").
		SetEmail("jun@example.org").
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

	if err := uc.DeleteResearcher(ctx, res.ID); err != nil {
		t.Fatalf("delete researcher: %v", err)
	}

	if _, err := client.Researcher.Get(ctx, res.ID); !ent.IsNotFound(err) {
		t.Errorf("researcher still present: %v", err)
	}
	if n, _ := client.SpecimenResearcher.Query().Count(ctx); n != 0 {
		t.Errorf("links remaining = %d, want 0", n)
	}
	// The specimen itself is untouched.
	if _, err := client.Specimen.Get(ctx, s.ID); err != nil {
		t.Errorf("specimen affected by researcher delete: %v", err)
	}
}
