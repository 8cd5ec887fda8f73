package records

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
)

var (
	// ErrPatientNameMissing is returned when adding an appointment without a patient name
	ErrPatientNameMissing = errors.New("records: appointment patient name is required")

	// ErrInvalidAppointmentType is returned when the type is outside the closed set
	ErrInvalidAppointmentType = errors.New("records: invalid appointment type")

	// ErrInvalidAppointmentStatus is returned when the status is outside the closed set
	ErrInvalidAppointmentStatus = errors.New("records: invalid appointment status")
)

// SortOrder selects how List orders appointments for display.
type SortOrder int

const (
	// SortSchedule orders calendar-aware: relative tokens resolve against the
	// current day, resolvable dates come first, opaque values trail in raw
	// string order. Ties break on the time field.
	SortSchedule SortOrder = iota
	// SortLexical orders by the raw date string byte-wise. Kept for
	// compatibility with the historical display ordering; not calendar-correct
	// when relative tokens and ISO dates mix.
	SortLexical
)

// AppointmentInput carries the caller-supplied fields for a new appointment.
// Zero-valued fields take the create-form defaults: today's date, 09:00,
// Consultation, En attente.
type AppointmentInput struct {
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

// AppointmentStore holds the working appointment collection of one demo
// workspace. Same ownership and snapshot contract as PatientStore.
type AppointmentStore struct {
	mu    sync.Mutex
	appts []dashboard.Appointment
	seq   idSequence
	now   func() time.Time
}

// NewAppointmentStore creates an empty appointment store.
func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{now: time.Now}
}

// Seed replaces the collection with a copy of the generated appointments.
// Seeded values are stored as-is; relative date tokens stay untouched.
func (s *AppointmentStore) Seed(seed []dashboard.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = append([]dashboard.Appointment(nil), seed...)
}

// Add creates an appointment with a fresh id. Type and status are validated
// against their closed sets here, at entry; storage itself keeps free strings.
func (s *AppointmentStore) Add(in AppointmentInput) (dashboard.Appointment, []dashboard.Appointment, error) {
	if strings.TrimSpace(in.PatientName) == "" {
		return dashboard.Appointment{}, nil, ErrPatientNameMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	a := dashboard.Appointment{
		ID:          s.seq.next(now),
		PatientName: in.PatientName,
		Date:        in.Date,
		Time:        in.Time,
		Type:        in.Type,
		Status:      in.Status,
	}
	if a.Date == "" {
		a.Date = now.Format(dashboard.ISODate)
	}
	if a.Time == "" {
		a.Time = "09:00"
	}
	if a.Type == "" {
		a.Type = dashboard.TypeConsultation
	}
	if a.Status == "" {
		a.Status = dashboard.StatusEnAttente
	}

	if !dashboard.ValidAppointmentType(a.Type) {
		return dashboard.Appointment{}, nil, ErrInvalidAppointmentType
	}
	if !dashboard.ValidAppointmentStatus(a.Status) {
		return dashboard.Appointment{}, nil, ErrInvalidAppointmentStatus
	}

	s.appts = append([]dashboard.Appointment{a}, s.appts...)
	return a, s.snapshot(), nil
}

// Update fully replaces the record matching a.ID. Unknown ids are a no-op.
// Submitted values go through the same entry validation as Add.
func (s *AppointmentStore) Update(a dashboard.Appointment) ([]dashboard.Appointment, error) {
	if !dashboard.ValidAppointmentType(a.Type) {
		return nil, ErrInvalidAppointmentType
	}
	if !dashboard.ValidAppointmentStatus(a.Status) {
		return nil, ErrInvalidAppointmentStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts {
		if s.appts[i].ID == a.ID {
			s.appts[i] = a
			break
		}
	}
	return s.snapshot(), nil
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *AppointmentStore) Delete(id string) []dashboard.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts {
		if s.appts[i].ID == id {
			s.appts = append(s.appts[:i], s.appts[i+1:]...)
			break
		}
	}
	return s.snapshot()
}

// List returns a snapshot sorted per the requested order.
func (s *AppointmentStore) List(order SortOrder) []dashboard.Appointment {
	s.mu.Lock()
	out := s.snapshot()
	now := s.now()
	s.mu.Unlock()

	switch order {
	case SortLexical:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date < out[j].Date
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return scheduleLess(out[i], out[j], now)
		})
	}
	return out
}

// EditDraft returns a copy of the record prepared for an edit form: a
// relative date token is normalized to its concrete ISO date. The stored
// record is not rewritten; only a submitted Update changes it.
func (s *AppointmentStore) EditDraft(id string) (dashboard.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts {
		if s.appts[i].ID == id {
			draft := s.appts[i]
			draft.Date = dashboard.NormalizeForEdit(draft.Date, s.now())
			return draft, true
		}
	}
	return dashboard.Appointment{}, false
}

// Clear drops every record. Used by the workspace demo-data reset.
func (s *AppointmentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = nil
}

func (s *AppointmentStore) snapshot() []dashboard.Appointment {
	return append([]dashboard.Appointment(nil), s.appts...)
}

func scheduleLess(a, b dashboard.Appointment, now time.Time) bool {
	dayA, okA := dashboard.ParseScheduleDate(a.Date).Resolve(now)
	dayB, okB := dashboard.ParseScheduleDate(b.Date).Resolve(now)

	switch {
	case okA && okB:
		if !dayA.Equal(dayB) {
			return dayA.Before(dayB)
		}
		return a.Time < b.Time
	case okA:
		return true
	case okB:
		return false
	default:
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	}
}
