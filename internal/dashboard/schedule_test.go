package dashboard

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 5, 7, 15, 30, 0, 0, time.UTC)

func TestParseScheduleDate(t *testing.T) {
	cases := []struct {
		raw  string
		kind ScheduleDateKind
	}{
		{"Aujourd'hui", DateToday},
		{"Demain", DateTomorrow},
		{"2024-05-10", DateConcrete},
		{"25 Oct", DateOpaque},
		{"", DateOpaque},
	}

	for _, tc := range cases {
		if got := ParseScheduleDate(tc.raw); got.Kind != tc.kind {
			t.Errorf("ParseScheduleDate(%q).Kind = %v, want %v", tc.raw, got.Kind, tc.kind)
		}
	}
}

func TestResolveRelativeTokens(t *testing.T) {
	today, ok := ParseScheduleDate(TokenToday).Resolve(testNow)
	if !ok {
		t.Fatal("expected today token to resolve")
	}
	if today.Format(ISODate) != "2024-05-07" {
		t.Fatalf("expected today to resolve to 2024-05-07, got %s", today.Format(ISODate))
	}

	tomorrow, ok := ParseScheduleDate(TokenTomorrow).Resolve(testNow)
	if !ok {
		t.Fatal("expected tomorrow token to resolve")
	}
	if tomorrow.Format(ISODate) != "2024-05-08" {
		t.Fatalf("expected tomorrow to resolve to 2024-05-08, got %s", tomorrow.Format(ISODate))
	}

	if _, ok := ParseScheduleDate("25 Oct").Resolve(testNow); ok {
		t.Fatal("expected opaque date to not resolve")
	}
}

func TestNormalizeForEdit(t *testing.T) {
	cases := map[string]string{
		"Aujourd'hui": "2024-05-07",
		"Demain":      "2024-05-08",
		"2024-06-01":  "2024-06-01",
		"25 Oct":      "25 Oct",
	}

	for raw, want := range cases {
		if got := NormalizeForEdit(raw, testNow); got != want {
			t.Errorf("NormalizeForEdit(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel("2024-05-07", testNow); got != TokenToday {
		t.Errorf("expected today's date to display as token, got %q", got)
	}
	if got := DisplayLabel("2024-05-08", testNow); got != "2024-05-08" {
		t.Errorf("expected other dates unchanged, got %q", got)
	}
}

func TestParseSpecialty(t *testing.T) {
	for _, valid := range []string{"Généraliste", "Dentiste", "Pédiatre", "Multispecialité"} {
		if _, err := ParseSpecialty(valid); err != nil {
			t.Errorf("ParseSpecialty(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseSpecialty("Cardiologue"); err == nil {
		t.Error("expected error for unknown specialty")
	}
}

func TestDatasetComplete(t *testing.T) {
	d := &Dataset{
		KPIs:                 []KPI{{Label: "Patients / Jour"}},
		MonthlyPatients:      []ChartPoint{{Name: "Jan", Value: 350}},
		RevenueDistribution:  []ChartPoint{{Name: "Consultations", Value: 65}},
		Recommendations:      []string{"a"},
		RecentPatients:       []Patient{{ID: "1"}},
		UpcomingAppointments: []Appointment{{ID: "1"}},
	}
	if !d.Complete() {
		t.Fatal("expected dataset to be complete")
	}

	d.Recommendations = nil
	if d.Complete() {
		t.Fatal("expected dataset missing recommendations to be incomplete")
	}
}
