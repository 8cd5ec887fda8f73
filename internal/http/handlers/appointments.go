package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/observability/metrics"
	"github.com/farouk24967/dashbord-genrator/internal/records"
	"github.com/farouk24967/dashbord-genrator/internal/workspace"
	"github.com/farouk24967/dashbord-genrator/pkg/logging"
)

// AppointmentHandler exposes the workspace appointment store over HTTP.
type AppointmentHandler struct {
	registry *workspace.Registry
	logger   *logging.Logger
	metrics  *metrics.RecordMetrics
	now      func() time.Time
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(registry *workspace.Registry, logger *logging.Logger, m *metrics.RecordMetrics) *AppointmentHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentHandler{
		registry: registry,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// AppointmentView is an appointment plus its display date label: a date equal
// to the current day renders as "Aujourd'hui".
type AppointmentView struct {
	dashboard.Appointment
	DisplayDate string `json:"displayDate"`
}

// AppointmentListResponse is the response for appointment list and mutations.
type AppointmentListResponse struct {
	Appointments []AppointmentView `json:"appointments"`
	Count        int               `json:"count"`
}

// ListAppointments handles GET /api/workspaces/{workspaceID}/appointments.
// The default ordering is calendar-aware; ?order=lexical selects the raw
// string ordering instead.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	order := records.SortSchedule
	if r.URL.Query().Get("order") == "lexical" {
		order = records.SortLexical
	}

	h.writeList(w, http.StatusOK, ws.Appointments.List(order))
}

// CreateAppointmentResponse carries the created record plus the new snapshot.
type CreateAppointmentResponse struct {
	Appointment  dashboard.Appointment `json:"appointment"`
	Appointments []AppointmentView     `json:"appointments"`
}

// CreateAppointment handles POST /api/workspaces/{workspaceID}/appointments.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var in records.AppointmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, snapshot, err := ws.Appointments.Add(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.metrics.ObserveMutation("appointments", "add")
	h.logger.Info("appointment added", "workspace_id", ws.ID, "appointment_id", created.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CreateAppointmentResponse{
		Appointment:  created,
		Appointments: h.views(snapshot),
	})
}

// GetEditDraft handles GET /api/workspaces/{workspaceID}/appointments/{appointmentID}/draft.
// The draft has relative date tokens normalized to concrete ISO dates for the
// edit form; the stored record is untouched.
func (h *AppointmentHandler) GetEditDraft(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	draft, found := ws.Appointments.EditDraft(chi.URLParam(r, "appointmentID"))
	if !found {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

// UpdateAppointment handles PUT /api/workspaces/{workspaceID}/appointments/{appointmentID}.
// An unknown id is a no-op; invalid type/status values are rejected at entry.
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var a dashboard.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	a.ID = chi.URLParam(r, "appointmentID")

	snapshot, err := ws.Appointments.Update(a)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.metrics.ObserveMutation("appointments", "update")
	h.writeList(w, http.StatusOK, snapshot)
}

// DeleteAppointment handles DELETE /api/workspaces/{workspaceID}/appointments/{appointmentID}.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.lookup(w, r)
	if !ok {
		return
	}

	snapshot := ws.Appointments.Delete(chi.URLParam(r, "appointmentID"))
	h.metrics.ObserveMutation("appointments", "delete")
	h.writeList(w, http.StatusOK, snapshot)
}

func (h *AppointmentHandler) writeList(w http.ResponseWriter, status int, appts []dashboard.Appointment) {
	views := h.views(appts)
	writeJSON(w, status, AppointmentListResponse{Appointments: views, Count: len(views)})
}

func (h *AppointmentHandler) views(appts []dashboard.Appointment) []AppointmentView {
	now := h.now()
	views := make([]AppointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, AppointmentView{
			Appointment: a,
			DisplayDate: dashboard.DisplayLabel(a.Date, now),
		})
	}
	return views
}

func (h *AppointmentHandler) lookup(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
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
