package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// Generator produces a dashboard dataset for a clinic. It never fails: any
// upstream problem resolves to the built-in fallback dataset.
type Generator interface {
	Generate(ctx context.Context, clinicName string, specialty dashboard.Specialty) *dashboard.Dataset
}

// WorkspaceHandler handles demo workspace creation and lifecycle.
type WorkspaceHandler struct {
	registry  *workspace.Registry
	generator Generator
	logger    *logging.Logger
}

// NewWorkspaceHandler creates a new workspace handler.
func NewWorkspaceHandler(registry *workspace.Registry, generator Generator, logger *logging.Logger) *WorkspaceHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WorkspaceHandler{
		registry:  registry,
		generator: generator,
		logger:    logger,
	}
}

// CreateWorkspaceRequest is the branding form payload.
type CreateWorkspaceRequest struct {
	ClinicName   string `json:"clinicName"`
	Specialty    string `json:"specialty"`
	PrimaryColor string `json:"primaryColor"`
}

// WorkspaceResponse is the created/fetched workspace representation.
type WorkspaceResponse struct {
	ID        string             `json:"id"`
	Branding  workspace.Branding `json:"branding"`
	Dataset   *dashboard.Dataset `json:"dataset"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CreateWorkspace handles POST /api/workspaces: generates the demo dataset
// and seeds a new workspace with it. The only failure mode is bad input; the
// generation call itself always yields a dataset.
func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ClinicName) == "" {
		http.Error(w, "clinicName is required", http.StatusBadRequest)
		return
	}

	specialty := dashboard.SpecialtyGeneraliste
	if req.Specialty != "" {
		parsed, err := dashboard.ParseSpecialty(req.Specialty)
		if err != nil {
			http.Error(w, "unknown specialty", http.StatusBadRequest)
			return
		}
		specialty = parsed
	}

	ds := h.generator.Generate(r.Context(), req.ClinicName, specialty)

	ws := workspace.New(workspace.Branding{
		ClinicName:   req.ClinicName,
		Specialty:    specialty,
		PrimaryColor: req.PrimaryColor,
	}, ds)
	h.registry.Put(ws)

	h.logger.Info("workspace created", "workspace_id", ws.ID, "clinic", req.ClinicName, "specialty", string(specialty))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(WorkspaceResponse{
		ID:        ws.ID,
		Branding:  ws.Branding,
		Dataset:   ws.Dataset,
		CreatedAt: ws.CreatedAt,
	})
}

// GetWorkspace handles GET /api/workspaces/{workspaceID}.
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WorkspaceResponse{
		ID:        ws.ID,
		Branding:  ws.Branding,
		Dataset:   ws.Dataset,
		CreatedAt: ws.CreatedAt,
	})
}

// DashboardResponse holds the display-only dashboard figures from the seed.
type DashboardResponse struct {
	KPIs                []dashboard.KPI        `json:"kpis"`
	MonthlyPatients     []dashboard.ChartPoint `json:"monthlyPatients"`
	RevenueDistribution []dashboard.ChartPoint `json:"revenueDistribution"`
	Recommendations     []string               `json:"recommendations"`
}

// GetDashboard handles GET /api/workspaces/{workspaceID}/dashboard.
func (h *WorkspaceHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DashboardResponse{
		KPIs:                ws.Dataset.KPIs,
		MonthlyPatients:     ws.Dataset.MonthlyPatients,
		RevenueDistribution: ws.Dataset.RevenueDistribution,
		Recommendations:     ws.Dataset.Recommendations,
	})
}

// ResetDemoData handles POST /api/workspaces/{workspaceID}/reset: clears both
// record stores so real records can be entered.
func (h *WorkspaceHandler) ResetDemoData(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	ws.ResetDemoData()
	h.logger.Info("demo data reset", "workspace_id", ws.ID)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteWorkspace handles DELETE /api/workspaces/{workspaceID}: discards the
// workspace and releases its held resources.
func (h *WorkspaceHandler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workspaceID")
	if id == "" {
		http.Error(w, "missing workspace id", http.StatusBadRequest)
		return
	}
	h.registry.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkspaceHandler) lookup(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
	id := chi.URLParam(r, "workspaceID")
	if id == "" {
		http.Error(w, "missing workspace id", http.StatusBadRequest)
		return nil, false
	}
	ws, err := h.registry.Get(id)
	if err != nil {
		http.Error(w, "workspace not found", http.StatusNotFound)
		return nil, false
	}
	return ws, true
}
