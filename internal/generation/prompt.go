package generation

import (
	"fmt"

	"github.com/farouk24967/dashbord-genrator/internal/dashboard"
)

const promptTemplate = `Generate realistic medical practice management data for a clinic in Algeria named %q specializing in %q.

The data should be localized for Algeria (Currency: DA or DZD, Names: Algerian names).

1. Generate 4 Key Performance Indicators (KPIs) (e.g., Patients/Jour, Revenus (in DA), Taux d'occupation).
2. Generate monthly patient evolution chart data for the last 6 months.
3. Generate revenue distribution chart data (percentages).
4. Provide 3 business recommendations.
5. Generate a list of 5 realistic patients (Algerian names) with id, name, age, phone, lastVisit, condition.
6. Generate a list of 5 upcoming appointments with id, patientName, date (recent), time, type, status.`

func buildPrompt(clinicName string, specialty dashboard.Specialty) string {
	return fmt.Sprintf(promptTemplate, clinicName, string(specialty))
}
