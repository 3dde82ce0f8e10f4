package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	apperrors "github.com/Kurty-byte/plant-sampling/internal/pkg/errors"
)

func TestCreateSpecimen_PersistsAndAudits(t *testing.T) {
	client := openClient(t, "create_specimen")
	locID, condID := seedRefs(t, client)

	s := mustCreateSpecimen(t, client, locID, condID)

	if !strings.HasPrefix(s.ID, "smp-") {
		t.Errorf("specimen id = %q, want smp- prefix", s.ID)
	}
	if s.LocationID != locID || s.ConditionID != condID {
		t.Errorf("references = (%s, %s), want (%s, %s)", s.LocationID, s.ConditionID, locID, condID)
	}
	if s.Status.String() != "active" {
		t.Errorf("status = %s, want active", s.Status)
	}

	entries := auditEntries(t, client, s.ID, auditlog.ActionCreated)
	if len(entries) != 1 {
		t.Fatalf("created audit entries = %d, want 1", len(entries))
	}
	details := entries[0].Details
	if details["species"] != s.Species {
		t.Errorf("audit species = %v, want %s", details["species"], s.Species)
	}
	if details["location_id"] != locID {
		t.Errorf("audit location_id = %v, want %s", details["location_id"], locID)
	}
}

func TestCreateSpecimen_MissingReferences(t *testing.T) {
	client := openClient(t, "create_specimen_refs")
	locID, condID := seedRefs(t, client)
	uc := NewCreateSpecimenUseCase(client, audit.NewRecorder())
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateSpecimenInput{
		Detail: validDetail(), LocationID: "loc-missing", ConditionID: condID,
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusConflict || appErr.Code != apperrors.CodeLocationNotFound {
		t.Fatalf("missing location: got %v, want 409 %s", err, apperrors.CodeLocationNotFound)
	}

	_, err = uc.Execute(ctx, CreateSpecimenInput{
		Detail: validDetail(), LocationID: locID, ConditionID: "cond-missing",
	})
	appErr, ok = apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusConflict || appErr.Code != apperrors.CodeConditionNotFound {
		t.Fatalf("missing condition: got %v, want 409 %s", err, apperrors.CodeConditionNotFound)
	}

	// Nothing persisted and nothing audited.
	n, qerr := client.Specimen.Query().Count(ctx)
	if qerr != nil {
		t.Fatalf("count specimens: %v", qerr)
	}
	if n != 0 {
		t.Errorf("specimen count = %d, want 0", n)
	}
}

func TestCreateSpecimen_FutureDateRejected(t *testing.T) {
	client := openClient(t, "create_specimen_date")
	locID, condID := seedRefs(t, client)
	uc := NewCreateSpecimenUseCase(client, audit.NewRecorder())

	detail := validDetail()
	detail.SamplingDate = time.Now().AddDate(0, 0, 2).Format(domain.DateLayout)
	_, err := uc.Execute(context.Background(), CreateSpecimenInput{
		Detail: detail, LocationID: locID, ConditionID: condID,
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("future sampling date: got %v, want 400", err)
	}
}
