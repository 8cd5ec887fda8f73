package dashboard

import "fmt"

// Specialty identifies the clinic's medical specialty.
type Specialty string

const (
	SpecialtyGeneraliste Specialty = "Généraliste"
	SpecialtyDentiste    Specialty = "Dentiste"
	SpecialtyPediatre    Specialty = "Pédiatre"
	SpecialtyMulti       Specialty = "Multispecialité"
)

// ParseSpecialty validates a raw specialty value against the closed set.
func ParseSpecialty(raw string) (Specialty, error) {
	switch s := Specialty(raw); s {
	case SpecialtyGeneraliste, SpecialtyDentiste, SpecialtyPediatre, SpecialtyMulti:
		return s, nil
	}
	return "", fmt.Errorf("dashboard: unknown specialty %q", raw)
}

// TrendDirection indicates whether a KPI is improving, declining, or flat.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// KPI is a pre-formatted key performance indicator. Display-only.
type KPI struct {
	Label          string         `json:"label"`
	Value          string         `json:"value"`
	Trend          string         `json:"trend"`
	TrendDirection TrendDirection `json:"trendDirection"`
}

// ChartPoint is one labeled data point of a chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Patient is a patient record held by the patient store.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	LastVisit string `json:"lastVisit"`
	Condition string `json:"condition"`
}

// Appointment is a scheduled visit held by the appointment store.
// Date is either an ISO calendar date or a relative token ("Aujourd'hui",
// "Demain"); see schedule.go for the conversions.
type Appointment struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

// Appointment types accepted at entry. Storage keeps the raw string.
const (
	TypeConsultation = "Consultation"
	TypeUrgence      = "Urgence"
	TypeControle     = "Contrôle"
	TypeSoins        = "Soins"
	TypeChirurgie    = "Chirurgie"
)

// Appointment statuses.
const (
	StatusConfirme  = "Confirmé"
	StatusEnAttente = "En attente"
	StatusAnnule    = "Annulé"
)

// ValidAppointmentType reports whether t belongs to the closed type set.
func ValidAppointmentType(t string) bool {
	switch t {
	case TypeConsultation, TypeUrgence, TypeControle, TypeSoins, TypeChirurgie:
		return true
	}
	return false
}

// ValidAppointmentStatus reports whether s belongs to the closed status set.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case StatusConfirme, StatusEnAttente, StatusAnnule:
		return true
	}
	return false
}

// Dataset is the full dashboard payload produced by one generation call.
// It is an immutable seed: the record stores copy its collections and never
// mutate it in place.
type Dataset struct {
	ClinicName           string        `json:"clinicName"`
	Specialty            Specialty     `json:"specialty"`
	KPIs                 []KPI         `json:"kpis"`
	MonthlyPatients      []ChartPoint  `json:"monthlyPatients"`
	RevenueDistribution  []ChartPoint  `json:"revenueDistribution"`
	Recommendations      []string      `json:"recommendations"`
	RecentPatients       []Patient     `json:"recentPatients"`
	UpcomingAppointments []Appointment `json:"upcomingAppointments"`
}

// Complete reports whether every required collection is present. A decoded
// generation response failing this check is treated the same as a malformed
// response.
func (d *Dataset) Complete() bool {
	return len(d.KPIs) > 0 &&
		len(d.MonthlyPatients) > 0 &&
		len(d.RevenueDistribution) > 0 &&
		len(d.Recommendations) > 0 &&
		len(d.RecentPatients) > 0 &&
		len(d.UpcomingAppointments) > 0
}
