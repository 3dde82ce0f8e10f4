package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/internal/api/middleware"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
	"github.com/Kurty-byte/plant-sampling/internal/testutil"
	"github.com/Kurty-byte/plant-sampling/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newTestRouter(t *testing.T, prefix string) (*gin.Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	recorder := audit.NewRecorder()
	server := NewServer(ServerDeps{
		EntClient: client,
		CreateUC:  usecase.NewCreateSpecimenUseCase(client, recorder),
		UpdateUC:  usecase.NewUpdateSpecimenUseCase(client, recorder),
		DeleteUC:  usecase.NewDeleteSpecimenUseCase(client, recorder),
		GrowthUC:  usecase.NewRecordGrowthUseCase(client, recorder),
		RefDelUC:  usecase.NewDeleteReferenceUseCase(client),
	})

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	v1 := router.Group("/api/v1")
	{
		v1.GET("/locations", server.ListLocations)
		v1.POST("/locations", server.CreateLocation)
		v1.GET("/locations/:id", server.GetLocation)
		v1.DELETE("/locations/:id", server.DeleteLocation)
		v1.POST("/conditions", server.CreateCondition)
		v1.POST("/researchers", server.CreateResearcher)
		v1.POST("/specimens", server.CreateSpecimen)
		v1.GET("/specimens", server.ListSpecimens)
		v1.GET("/specimens/:id", server.GetSpecimen)
		v1.PUT("/specimens/:id", server.UpdateSpecimen)
		v1.DELETE("/specimens/:id", server.SoftDeleteSpecimen)
		v1.DELETE("/specimens/:id/hard", server.HardDeleteSpecimen)
		v1.POST("/specimens/:id/growth-metrics", server.RecordSpecimenGrowth)
		v1.GET("/specimens/:id/audit-logs", server.ListSpecimenAuditLogs)
		v1.POST("/specimen-researchers", server.CreateLink)
	}
	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return body
}

func createReferences(t *testing.T, router *gin.Engine) (locID, condID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/locations", map[string]interface{}{
		"location_data": map[string]interface{}{
			"coordinates": map[string]float64{"latitude": 9.83, "longitude": 118.73},
			"region":      "Palawan",
			"country":     "Philippines",
			"site_type":   "forest",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create location: status %d body %s", w.Code, w.Body.String())
	}
	locID = decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/conditions", map[string]interface{}{
		"condition_data": map[string]interface{}{
			"temperature": 27.5,
			"humidity":    85,
			"altitude":    320,
			"soil_composition": map[string]interface{}{
				"pH":        6.2,
				"type":      "loamy",
				"nutrients": map[string]string{"nitrogen": "medium"},
			},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create condition: status %d body %s", w.Code, w.Body.String())
	}
	condID = decode(t, w)["id"].(string)
	return locID, condID
}

func createSpecimenHTTP(t *testing.T, router *gin.Engine, locID, condID string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/specimens", map[string]interface{}{
		"sample_detail": map[string]interface{}{
			"species":       "Nepenthes attenboroughii",
			"common_name":   "Attenborough's pitcher plant",
			"sampling_date": time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		},
		"location_id":  locID,
		"condition_id": condID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create specimen: status %d body %s", w.Code, w.Body.String())
	}
	return decode(t, w)["id"].(string)
}

func TestSpecimenLifecycleHTTP(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_lifecycle")
	locID, condID := createReferences(t, router)
	specimenID := createSpecimenHTTP(t, router, locID, condID)

	// Detail view inlines the referenced documents.
	w := doJSON(t, router, http.MethodGet, "/api/v1/specimens/"+specimenID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get specimen: status %d body %s", w.Code, w.Body.String())
	}
	detail := decode(t, w)
	if detail["location"] == nil || detail["condition"] == nil {
		t.Errorf("detail missing inlined references: %v", detail)
	}

	// Update the detail bundle.
	w = doJSON(t, router, http.MethodPut, "/api/v1/specimens/"+specimenID, map[string]interface{}{
		"sample_detail": map[string]interface{}{
			"species":       "Nepenthes rajah",
			"common_name":   "Rajah pitcher plant",
			"sampling_date": time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update specimen: status %d body %s", w.Code, w.Body.String())
	}

	// Soft delete, then verify idempotent repeat and the tombstone view.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/specimens/"+specimenID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("soft delete: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodDelete, "/api/v1/specimens/"+specimenID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat soft delete: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/specimens/"+specimenID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get tombstone: status %d", w.Code)
	}
	tombstone := decode(t, w)
	if tombstone["status"] != "deleted" || tombstone["message"] == nil {
		t.Errorf("tombstone shape = %v", tombstone)
	}

	// Deleted specimens disappear from the list.
	w = doJSON(t, router, http.MethodGet, "/api/v1/specimens", nil)
	if total := decode(t, w)["total"].(float64); total != 0 {
		t.Errorf("active specimen total = %v, want 0", total)
	}

	// Updates against the tombstone are state conflicts.
	w = doJSON(t, router, http.MethodPut, "/api/v1/specimens/"+specimenID, map[string]interface{}{
		"sample_detail": map[string]interface{}{
			"species":       "Nepenthes rajah",
			"common_name":   "Rajah pitcher plant",
			"sampling_date": time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("update deleted specimen: status %d, want 409", w.Code)
	}

	// Hard delete removes the row; a repeat is 404. The trail survives.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/specimens/"+specimenID+"/hard", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("hard delete: status %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodDelete, "/api/v1/specimens/"+specimenID+"/hard", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("repeat hard delete: status %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/specimens/"+specimenID+"/audit-logs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("audit trail after hard delete: status %d", w.Code)
	}
	trail := decode(t, w)
	// created + updated + soft delete + hard delete
	if total := trail["total"].(float64); total != 4 {
		t.Errorf("audit trail total = %v, want 4 (%v)", total, trail["items"])
	}
}

func TestCreateSpecimenHTTP_ReferentialConflict(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_refconflict")
	_, condID := createReferences(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/specimens", map[string]interface{}{
		"sample_detail": map[string]interface{}{
			"species":       "Nepenthes rajah",
			"common_name":   "Rajah pitcher plant",
			"sampling_date": time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		},
		"location_id":  "loc-missing",
		"condition_id": condID,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestValidationErrorBody(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_validation")

	w := doJSON(t, router, http.MethodPost, "/api/v1/locations", map[string]interface{}{
		"location_data": map[string]interface{}{
			"coordinates": map[string]float64{"latitude": 95, "longitude": 0},
			"region":      "",
			"country":     "Philippines",
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	fieldErrors, ok := body["field_errors"].([]interface{})
	if !ok || len(fieldErrors) != 2 {
		t.Errorf("field_errors = %v, want 2 entries (latitude, region)", body["field_errors"])
	}
}

func TestResearcherDuplicateEmailHTTP(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_dup_email")

	payload := map[string]interface{}{"name": "Maria Santos", "email": "maria@example.org"}
	if w := doJSON(t, router, http.MethodPost, "/api/v1/researchers", payload); w.Code != http.StatusCreated {
		t.Fatalf("first create: status %d body %s", w.Code, w.Body.String())
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/researchers", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email: status %d, want 409", w.Code)
	}
}

func TestLinkDuplicatePairHTTP(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_dup_link")
	locID, condID := createReferences(t, router)
	specimenID := createSpecimenHTTP(t, router, locID, condID)

	w := doJSON(t, router, http.MethodPost, "/api/v1/researchers",
		map[string]interface{}{"name": "Jun Dela Cruz", "email": "jun@example.org"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create researcher: status %d", w.Code)
	}
	researcherID := decode(t, w)["id"].(string)

	link := map[string]interface{}{
		"specimen_id":   specimenID,
		"researcher_id": researcherID,
		"role":          "lead_researcher",
	}
	if w := doJSON(t, router, http.MethodPost, "/api/v1/specimen-researchers", link); w.Code != http.StatusCreated {
		t.Fatalf("first link: status %d body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPost, "/api/v1/specimen-researchers", link); w.Code != http.StatusConflict {
		t.Fatalf("duplicate link: status %d, want 409", w.Code)
	}
}

func TestGrowthChronologyHTTP(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_growth")
	locID, condID := createReferences(t, router)
	specimenID := createSpecimenHTTP(t, router, locID, condID)
	path := fmt.Sprintf("/api/v1/specimens/%s/growth-metrics", specimenID)

	w := doJSON(t, router, http.MethodPost, path, map[string]interface{}{
		"height": 14.2, "leaf_count": 6, "health_status": "good",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("record growth: status %d body %s", w.Code, w.Body.String())
	}

	early := time.Now().AddDate(0, 0, -30).Format(time.RFC3339)
	w = doJSON(t, router, http.MethodPost, path, map[string]interface{}{
		"height": 14.2, "measured_at": early,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("early measurement: status %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestDeleteLocationRestrictedHTTP(t *testing.T) {
	router, _ := newTestRouter(t, "handlers_loc_restrict")
	locID, condID := createReferences(t, router)
	createSpecimenHTTP(t, router, locID, condID)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/locations/"+locID, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete referenced location: status %d, want 409", w.Code)
	}
}
