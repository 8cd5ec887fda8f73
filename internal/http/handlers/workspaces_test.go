package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/records"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// stubGenerator returns a fixed dataset with the caller's identity stamped,
// matching the gateway contract.
type stubGenerator struct {
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, clinicName string, specialty dashboard.Specialty) *dashboard.Dataset {
	g.calls++
	ds := testDataset()
	ds.ClinicName = clinicName
	ds.Specialty = specialty
	return ds
}

func testDataset() *dashboard.Dataset {
	return &dashboard.Dataset{
		KPIs: []dashboard.KPI{
			{Label: "Patients / Jour", Value: "28", Trend: "+5%", TrendDirection: dashboard.TrendUp},
		},
		MonthlyPatients: []dashboard.ChartPoint{
			{Name: "Jan", Value: 350},
		},
		RevenueDistribution: []dashboard.ChartPoint{
			{Name: "Consultations", Value: 65},
		},
		Recommendations: []string{"Relancer les patients inactifs."},
		RecentPatients: []dashboard.Patient{
			{ID: "p1", Name: "Amine Benali", Age: 34, Phone: "0550 12 34 56", LastVisit: "12/05/2024", Condition: "Suivi diabète"},
		},
		UpcomingAppointments: []dashboard.Appointment{
			{ID: "a1", PatientName: "Karim Ziani", Date: "Aujourd'hui", Time: "09:00", Type: dashboard.TypeConsultation, Status: dashboard.StatusConfirme},
		},
	}
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be exercised without the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	return withURLParams(r, map[string]string{key: value})
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newTestWorkspace(t *testing.T, registry *workspace.Registry) *workspace.Workspace {
	t.Helper()
	ws := workspace.New(workspace.Branding{
		ClinicName:   "Cabinet Essalem",
		Specialty:    dashboard.SpecialtyGeneraliste,
		PrimaryColor: workspace.DefaultPrimaryColor,
	}, testDataset())
	registry.Put(ws)
	return ws
}

func TestCreateWorkspace_Success(t *testing.T) {
	registry := workspace.NewRegistry()
	gen := &stubGenerator{}
	handler := NewWorkspaceHandler(registry, gen, logging.Default())

	body, _ := json.Marshal(CreateWorkspaceRequest{
		ClinicName: "Clinique El Amal",
		Specialty:  "Dentiste",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWorkspace(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.calls)
	}

	var resp WorkspaceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected workspace id to be set")
	}
	if resp.Branding.ClinicName != "Clinique El Amal" {
		t.Errorf("expected clinic name to round-trip, got %q", resp.Branding.ClinicName)
	}
	if resp.Dataset.ClinicName != "Clinique El Amal" {
		t.Errorf("expected dataset stamped with clinic name, got %q", resp.Dataset.ClinicName)
	}
	if resp.Dataset.Specialty != dashboard.SpecialtyDentiste {
		t.Errorf("expected specialty Dentiste, got %q", resp.Dataset.Specialty)
	}

	if _, err := registry.Get(resp.ID); err != nil {
		t.Errorf("expected workspace registered: %v", err)
	}
}

func TestCreateWorkspace_MissingClinicName(t *testing.T) {
	handler := NewWorkspaceHandler(workspace.NewRegistry(), &stubGenerator{}, logging.Default())

	body, _ := json.Marshal(CreateWorkspaceRequest{ClinicName: "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWorkspace(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateWorkspace_DefaultsSpecialty(t *testing.T) {
	registry := workspace.NewRegistry()
	handler := NewWorkspaceHandler(registry, &stubGenerator{}, logging.Default())

	body, _ := json.Marshal(CreateWorkspaceRequest{ClinicName: "Cabinet Nour"})
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWorkspace(w, req)

	var resp WorkspaceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Branding.Specialty != dashboard.SpecialtyGeneraliste {
		t.Errorf("expected default specialty, got %q", resp.Branding.Specialty)
	}
}

func TestCreateWorkspace_UnknownSpecialty(t *testing.T) {
	handler := NewWorkspaceHandler(workspace.NewRegistry(), &stubGenerator{}, logging.Default())

	body, _ := json.Marshal(CreateWorkspaceRequest{ClinicName: "Cabinet Nour", Specialty: "Cardiologue"})
	req := httptest.NewRequest(http.MethodPost, "/api/workspaces", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWorkspace(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetWorkspace_NotFound(t *testing.T) {
	handler := NewWorkspaceHandler(workspace.NewRegistry(), &stubGenerator{}, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces/nope", nil)
	req = withURLParam(req, "workspaceID", "nope")
	w := httptest.NewRecorder()

	handler.GetWorkspace(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetDashboard(t *testing.T) {
	registry := workspace.NewRegistry()
	ws := newTestWorkspace(t, registry)
	handler := NewWorkspaceHandler(registry, &stubGenerator{}, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces/"+ws.ID+"/dashboard", nil)
	req = withURLParam(req, "workspaceID", ws.ID)
	w := httptest.NewRecorder()

	handler.GetDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.KPIs) != 1 || resp.KPIs[0].Value != "28" {
		t.Errorf("unexpected KPIs: %+v", resp.KPIs)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(resp.Recommendations))
	}
}

func TestResetDemoData(t *testing.T) {
	registry := workspace.NewRegistry()
	ws := newTestWorkspace(t, registry)
	handler := NewWorkspaceHandler(registry, &stubGenerator{}, logging.Default())

	if len(ws.Patients.List()) == 0 {
		t.Fatal("expected seeded patients before reset")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/workspaces/"+ws.ID+"/reset", nil)
	req = withURLParam(req, "workspaceID", ws.ID)
	w := httptest.NewRecorder()

	handler.ResetDemoData(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if got := len(ws.Patients.List()); got != 0 {
		t.Errorf("expected empty patient store after reset, got %d", got)
	}
	if got := len(ws.Appointments.List(records.SortSchedule)); got != 0 {
		t.Errorf("expected empty appointment store after reset, got %d", got)
	}
}

func TestDeleteWorkspace(t *testing.T) {
	registry := workspace.NewRegistry()
	ws := newTestWorkspace(t, registry)
	handler := NewWorkspaceHandler(registry, &stubGenerator{}, logging.Default())

	req := httptest.NewRequest(http.MethodDelete, "/api/workspaces/"+ws.ID, nil)
	req = withURLParam(req, "workspaceID", ws.ID)
	w := httptest.NewRecorder()

	handler.DeleteWorkspace(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if _, err := registry.Get(ws.ID); err == nil {
		t.Error("expected workspace to be gone after delete")
	}
}
