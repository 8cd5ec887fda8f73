package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/observability/metrics"
	"github.com/farouk24967/dashbord-genrator/internal/records"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// PatientHandler exposes the workspace patient store over HTTP.
type PatientHandler struct {
	registry *workspace.Registry
	logger   *logging.Logger
	metrics  *metrics.RecordMetrics
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(registry *workspace.Registry, logger *logging.Logger, m *metrics.RecordMetrics) *PatientHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PatientHandler{
		registry: registry,
		logger:   logger,
		metrics:  m,
	}
}

// PatientListResponse is the response for patient list and mutations.
type PatientListResponse struct {
	Patients []dashboard.Patient `json:"patients"`
	Count    int                 `json:"count"`
}

// ListPatients handles GET /api/workspaces/{workspaceID}/patients.
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	patients := ws.Patients.List()
	writeJSON(w, http.StatusOK, PatientListResponse{Patients: patients, Count: len(patients)})
}

// CreatePatientResponse carries the created record plus the new snapshot.
type CreatePatientResponse struct {
	Patient  dashboard.Patient   `json:"patient"`
	Patients []dashboard.Patient `json:"patients"`
}

// CreatePatient handles POST /api/workspaces/{workspaceID}/patients.
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var in records.PatientInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, snapshot, err := ws.Patients.Add(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.metrics.ObserveMutation("patients", "add")
	h.logger.Info("patient added", "workspace_id", ws.ID, "patient_id", created.ID)
	writeJSON(w, http.StatusCreated, CreatePatientResponse{Patient: created, Patients: snapshot})
}

// UpdatePatient handles PUT /api/workspaces/{workspaceID}/patients/{patientID}.
// An unknown patient id is a no-op: the snapshot comes back unchanged.
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var p dashboard.Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = chi.URLParam(r, "patientID")

	snapshot := ws.Patients.Update(p)
	h.metrics.ObserveMutation("patients", "update")
	writeJSON(w, http.StatusOK, PatientListResponse{Patients: snapshot, Count: len(snapshot)})
}

// DeletePatient handles DELETE /api/workspaces/{workspaceID}/patients/{patientID}.
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	snapshot := ws.Patients.Delete(chi.URLParam(r, "patientID"))
	h.metrics.ObserveMutation("patients", "delete")
	writeJSON(w, http.StatusOK, PatientListResponse{Patients: snapshot, Count: len(snapshot)})
}

func (h *PatientHandler) lookup(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
