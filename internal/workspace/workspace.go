package workspace

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
	"github.com/farouk24967/dashbord-genrator/internal/records"
)

// ErrWorkspaceNotFound is returned when a workspace id is unknown
var ErrWorkspaceNotFound = errors.New("workspace: not found")

// DefaultPrimaryColor is the branding color used when the form omits one.
const DefaultPrimaryColor = "#0A5FFF"

// Branding carries the clinic identity captured by the configuration form.
type Branding struct {
	ClinicName   string              `json:"clinicName"`
	Specialty    dashboard.Specialty `json:"specialty"`
	PrimaryColor string              `json:"primaryColor"`
}

// Logo is an uploaded clinic logo held in memory. It is a scoped resource:
// the workspace owns at most one, and storing a replacement releases the
// previous one.
type Logo struct {
	ContentType string
	Data        []byte
}

// Workspace is one generated demo dashboard: the immutable dataset seed, the
// branding, and the two working record stores. Everything lives in memory and
// dies with the registry.
type Workspace struct {
	ID           string
	Branding     Branding
	Dataset      *dashboard.Dataset
	Patients     *records.PatientStore
	Appointments *records.AppointmentStore
	CreatedAt    time.Time

	mu   sync.Mutex
	logo *Logo
}

// New seeds a workspace from a generated dataset. The dataset's collections
// are copied into the stores; the seed itself is never mutated afterwards.
func New(branding Branding, ds *dashboard.Dataset) *Workspace {
	if branding.PrimaryColor == "" {
		branding.PrimaryColor = DefaultPrimaryColor
	}

	ws := &Workspace{
		ID:           uuid.NewString(),
		Branding:     branding,
		Dataset:      ds,
		Patients:     records.NewPatientStore(),
		Appointments: records.NewAppointmentStore(),
		CreatedAt:    time.Now().UTC(),
	}
	ws.Patients.Seed(ds.RecentPatients)
	ws.Appointments.Seed(ds.UpcomingAppointments)
	return ws
}

// ResetDemoData clears both record stores so the user can start entering real
// records. The dataset seed and branding stay.
func (w *Workspace) ResetDemoData() {
	w.Patients.Clear()
	w.Appointments.Clear()
}

// SetLogo stores the uploaded logo, releasing any previous one.
func (w *Workspace) SetLogo(l Logo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.releaseLogoLocked()
	w.logo = &l
}

// Logo returns the current logo, if any.
func (w *Workspace) Logo() (Logo, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.logo == nil {
		return Logo{}, false
	}
	return *w.logo, true
}

// RemoveLogo releases the current logo.
func (w *Workspace) RemoveLogo() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.releaseLogoLocked()
}

func (w *Workspace) releaseLogoLocked() {
	if w.logo != nil {
		w.logo.Data = nil
		w.logo = nil
	}
}

// Registry is the in-memory workspace index. Nothing it holds survives the
// process.
type Registry struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace
}

// NewRegistry creates an empty workspace registry.
func NewRegistry() *Registry {
	return &Registry{workspaces: make(map[string]*Workspace)}
}

// Put registers a workspace.
func (r *Registry) Put(ws *Workspace) {
	r.mu.Lock()
	r.workspaces[ws.ID] = ws
	r.mu.Unlock()
}

// Get retrieves a workspace by id.
func (r *Registry) Get(id string) (*Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, ok := r.workspaces[id]
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return ws, nil
}

// Delete discards a workspace and releases its held resources.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	ws, ok := r.workspaces[id]
	delete(r.workspaces, id)
	r.mu.Unlock()

	if ok {
		ws.RemoveLogo()
	}
}
