package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/domain"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
	"github.com/Kurty-byte/plant-sampling/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func strptr(s string) *string { return &s }
func f64(v float64) *float64  { return &v }
func intptr(v int) *int       { return &v }

func pastDate(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(domain.DateLayout)
}

// seedRefs creates one location and one condition for specimen tests.
func seedRefs(t *testing.T, client *ent.Client) (locID, condID string) {
	t.Helper()
	ctx := context.Background()

	loc, err := client.Location.Create().
		SetID(newID("loc")).
		SetLatitude(9.8349).
		SetLongitude(118.7384).
		SetRegion("Palawan").
		SetCountry("Philippines").
		SetSiteType(location.SiteTypeForest).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}

	cond, err := client.EnvironmentalCondition.Create().
		SetID(newID("cond")).
		SetTemperature(27.5).
		SetHumidity(85).
		SetAltitude(320).
		SetSoilPh(6.2).
		SetSoilType(environmentalcondition.SoilTypeLoamy).
		SetSoilNutrients(map[string]interface{}{"nitrogen": "medium"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed condition: %v", err)
	}
	return loc.ID, cond.ID
}

func validDetail() domain.SpecimenDetail {
	return domain.SpecimenDetail{
		Species:      "Nepenthes attenboroughii",
		CommonName:   strptr("Attenborough's pitcher plant"),
		SamplingDate: pastDate(10),
		Description:  "summit population",
	}
}

func mustCreateSpecimen(t *testing.T, client *ent.Client, locID, condID string) *ent.Specimen {
	t.Helper()
	uc := NewCreateSpecimenUseCase(client, audit.NewRecorder())
	s, err := uc.Execute(context.Background(), CreateSpecimenInput{
		Detail:      validDetail(),
		LocationID:  locID,
		ConditionID: condID,
	})
	if err != nil {
		t.Fatalf("create specimen: %v", err)
	}
	return s
}

func auditEntries(t *testing.T, client *ent.Client, specimenID string, action auditlog.Action) []*ent.AuditLog {
	t.Helper()
	rows, err := client.AuditLog.Query().
		Where(auditlog.SpecimenID(specimenID), auditlog.ActionEQ(action)).
		All(context.Background())
	if err != nil {
		t.Fatalf("query audit logs: %v", err)
	}
	return rows
}

func openClient(t *testing.T, prefix string) *ent.Client {
	return testutil.OpenEntPostgres(t, prefix)
}
