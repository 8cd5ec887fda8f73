package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/generation"
	"github.com/farouk24967/dashbord-genrator/internal/http/handlers"
	"github.com/farouk24967/dashbord-genrator/internal/inquiries"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

func newTestRouter() http.Handler {
	logger := logging.Default()
	registry := workspace.NewRegistry()
	// nil client: the gateway serves the fallback dataset on every call
	generator := generation.NewService(nil, logger, nil)

	return New(&Config{
		Logger:             logger,
		Pages:              handlers.NewPages(),
		Workspaces:         handlers.NewWorkspaceHandler(registry, generator, logger),
		Patients:           handlers.NewPatientHandler(registry, logger, nil),
		Appointments:       handlers.NewAppointmentHandler(registry, logger, nil),
		Inquiries:          inquiries.NewHandler(inquiries.NewInMemoryRepository(), logger),
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}

func TestMarketingPagesRouted(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/", "/features", "/pricing", "/about", "/contact"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected status %d, got %d", path, http.StatusOK, w.Code)
		}
	}
}

func TestWorkspaceLifecycleThroughRouter(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(map[string]string{
		"clinicName": "Cabinet Essalem",
		"specialty":  "Pédiatre",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var created struct {
		ID      string             `json:"id"`
		Dataset *dashboard.Dataset `json:"dataset"`
	}
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected workspace id")
	}
	if created.Dataset.ClinicName != "Cabinet Essalem" {
		t.Errorf("expected fallback dataset stamped with clinic name, got %q", created.Dataset.ClinicName)
	}
	if len(created.Dataset.RecentPatients) != 5 {
		t.Errorf("expected 5 fallback patients, got %d", len(created.Dataset.RecentPatients))
	}

	// Patient list is seeded from the dataset.
	listReq := httptest.NewRequest(http.MethodGet, "/api/workspaces/"+created.ID+"/patients", nil)
	listW := httptest.NewRecorder()
	r.ServeHTTP(listW, listReq)

	if listW.Code != http.StatusOK {
		t.Fatalf("list patients: expected status %d, got %d", http.StatusOK, listW.Code)
	}

	var patients struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(listW.Body).Decode(&patients); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if patients.Count != 5 {
		t.Errorf("expected 5 seeded patients, got %d", patients.Count)
	}

	// Appointment routes resolve under the workspace.
	apptReq := httptest.NewRequest(http.MethodGet, "/api/workspaces/"+created.ID+"/appointments", nil)
	apptW := httptest.NewRecorder()
	r.ServeHTTP(apptW, apptReq)

	if apptW.Code != http.StatusOK {
		t.Fatalf("list appointments: expected status %d, got %d", http.StatusOK, apptW.Code)
	}

	delReq := httptest.NewRequest(http.MethodDelete, "/api/workspaces/"+created.ID, nil)
	delW := httptest.NewRecorder()
	r.ServeHTTP(delW, delReq)

	if delW.Code != http.StatusNoContent {
		t.Errorf("delete: expected status %d, got %d", http.StatusNoContent, delW.Code)
	}
}

func TestUnknownWorkspaceIs404(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces/does-not-exist/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestContactInquiryRouted(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(map[string]string{
		"name":    "Dr. Farid Boudjema",
		"email":   "f.boudjema@example.dz",
		"message": "Je souhaite une démonstration.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/workspaces", nil)
	req.Header.Set("Origin", "https://example.dz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected CORS headers on preflight")
	}
}
