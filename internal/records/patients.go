package records

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
)

// ErrPatientNameRequired is returned when adding a patient without a name
var ErrPatientNameRequired = errors.New("records: patient name is required")

// lastVisitLayout is the fr-FR short date stamped on newly added patients.
const lastVisitLayout = "02/01/2006"

// PatientInput carries the caller-supplied fields for a new patient. Age,
// phone and condition are optional and default to zero values.
type PatientInput struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Condition string `json:"condition"`
}

// PatientStore holds the working patient collection of one demo workspace.
// Seeded once from the generated dataset; every mutation returns a fresh
// snapshot, so callers never alias internal state.
type PatientStore struct {
	mu       sync.Mutex
	patients []dashboard.Patient
	seq      idSequence
	now      func() time.Time
}

// NewPatientStore creates an empty patient store.
func NewPatientStore() *PatientStore {
	return &PatientStore{now: time.Now}
}

// Seed replaces the collection with a copy of the generated patients.
func (s *PatientStore) Seed(seed []dashboard.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append([]dashboard.Patient(nil), seed...)
}

// Add creates a patient record with a fresh id and prepends it to the
// collection, newest first. Returns the created record and the new snapshot.
func (s *PatientStore) Add(in PatientInput) (dashboard.Patient, []dashboard.Patient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return dashboard.Patient{}, nil, ErrPatientNameRequired
	}
	if in.Age < 0 {
		in.Age = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := dashboard.Patient{
		ID:        s.seq.next(now),
		Name:      in.Name,
		Age:       in.Age,
		Phone:     in.Phone,
		LastVisit: now.Format(lastVisitLayout),
		Condition: in.Condition,
	}
	s.patients = append([]dashboard.Patient{p}, s.patients...)
	return p, s.snapshot(), nil
}

// Update fully replaces the record matching p.ID. Unknown ids are a no-op;
// the id itself is never changed by an update.
func (s *PatientStore) Update(p dashboard.Patient) []dashboard.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID == p.ID {
			s.patients[i] = p
			break
		}
	}
	return s.snapshot()
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *PatientStore) Delete(id string) []dashboard.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			break
		}
	}
	return s.snapshot()
}

// List returns a snapshot of the collection in insertion order.
func (s *PatientStore) List() []dashboard.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Clear drops every record. Used by the workspace demo-data reset.
func (s *PatientStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = nil
}

func (s *PatientStore) snapshot() []dashboard.Patient {
	return append([]dashboard.Patient(nil), s.patients...)
}
