package generation

import "github.com/farouk24967/dashbord-genrator/internal/dashboard"

// FallbackDataset returns the built-in Algeria demo dataset used whenever the
// generation call cannot produce a usable result. The literal values are part
// of the gateway's contract.
func FallbackDataset(clinicName string, specialty dashboard.Specialty) *dashboard.Dataset {
	return &dashboard.Dataset{
		ClinicName: clinicName,
		Specialty:  specialty,
		KPIs: []dashboard.KPI{
			{Label: "Patients / Jour", Value: "28", Trend: "+5%", TrendDirection: dashboard.TrendUp},
			{Label: "RDV Honorés", Value: "92%", Trend: "+2%", TrendDirection: dashboard.TrendUp},
			{Label: "Liste d'attente", Value: "12", Trend: "-1%", TrendDirection: dashboard.TrendDown},
			{Label: "Revenus (Mois)", Value: "450 000 DA", Trend: "+8%", TrendDirection: dashboard.TrendUp},
		},
		MonthlyPatients: []dashboard.ChartPoint{
			{Name: "Jan", Value: 350},
			{Name: "Fév", Value: 300},
			{Name: "Mar", Value: 450},
			{Name: "Avr", Value: 400},
			{Name: "Mai", Value: 550},
			{Name: "Juin", Value: 600},
		},
		RevenueDistribution: []dashboard.ChartPoint{
			{Name: "Consultations", Value: 65},
			{Name: "Actes", Value: 25},
			{Name: "Urgences", Value: 10},
		},
		Recommendations: []string{
			"Réduisez les non-présentations avec des SMS de rappel.",
			"Optimisez votre planning du matin.",
			"Augmentez le tarif des consultations urgentes.",
		},
		RecentPatients: []dashboard.Patient{
			{ID: "1", Name: "Amine Benali", Age: 34, Phone: "0550 12 34 56", LastVisit: "12/10/2023", Condition: "Contrôle routine"},
			{ID: "2", Name: "Yasmina Saidi", Age: 28, Phone: "0661 98 76 54", LastVisit: "10/10/2023", Condition: "Douleur dentaire"},
			{ID: "3", Name: "Mohamed Khelif", Age: 55, Phone: "0770 11 22 33", LastVisit: "08/10/2023", Condition: "Hypertension"},
			{ID: "4", Name: "Sofiane Mansouri", Age: 42, Phone: "0540 55 66 77", LastVisit: "05/10/2023", Condition: "Grippe"},
			{ID: "5", Name: "Meriem Bouzid", Age: 30, Phone: "0662 33 44 55", LastVisit: "01/10/2023", Condition: "Consultation"},
		},
		UpcomingAppointments: []dashboard.Appointment{
			{ID: "1", PatientName: "Karim Ziani", Date: "Aujourd'hui", Time: "09:00", Type: "Consultation", Status: "Confirmé"},
			{ID: "2", PatientName: "Leila Haddad", Date: "Aujourd'hui", Time: "10:30", Type: "Urgence", Status: "En attente"},
			{ID: "3", PatientName: "Omar Belkacem", Date: "Demain", Time: "14:00", Type: "Contrôle", Status: "Confirmé"},
			{ID: "4", PatientName: "Nadia Fekir", Date: "Demain", Time: "15:30", Type: "Soins", Status: "Annulé"},
			{ID: "5", PatientName: "Riad Mahrez", Date: "25 Oct", Time: "11:00", Type: "Consultation", Status: "Confirmé"},
		},
	}
}
