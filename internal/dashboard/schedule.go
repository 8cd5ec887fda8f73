package dashboard

import "time"

// Relative date tokens that generated appointments may carry in place of a
// calendar date.
const (
	TokenToday    = "Aujourd'hui"
	TokenTomorrow = "Demain"
)

// ISODate is the calendar date layout used by editable date fields.
const ISODate = "2006-01-02"

// ScheduleDateKind discriminates the schedule date variant.
type ScheduleDateKind int

const (
	// DateConcrete is an ISO calendar date.
	DateConcrete ScheduleDateKind = iota
	// DateToday is the relative token "Aujourd'hui".
	DateToday
	// DateTomorrow is the relative token "Demain".
	DateTomorrow
	// DateOpaque is any other free-form value (e.g. "25 Oct"). It cannot be
	// resolved to a calendar day and sorts by its raw string.
	DateOpaque
)

// ScheduleDate is the tagged representation of an appointment date string.
type ScheduleDate struct {
	Kind ScheduleDateKind
	Raw  string
	day  time.Time
}

// ParseScheduleDate classifies a raw appointment date value.
func ParseScheduleDate(raw string) ScheduleDate {
	switch raw {
	case TokenToday:
		return ScheduleDate{Kind: DateToday, Raw: raw}
	case TokenTomorrow:
		return ScheduleDate{Kind: DateTomorrow, Raw: raw}
	}
	if day, err := time.Parse(ISODate, raw); err == nil {
		return ScheduleDate{Kind: DateConcrete, Raw: raw, day: day}
	}
	return ScheduleDate{Kind: DateOpaque, Raw: raw}
}

// Resolve returns the calendar day the date refers to, relative to now.
// Opaque values do not resolve.
func (d ScheduleDate) Resolve(now time.Time) (time.Time, bool) {
	switch d.Kind {
	case DateConcrete:
		return d.day, true
	case DateToday:
		return startOfDay(now), true
	case DateTomorrow:
		return startOfDay(now).AddDate(0, 0, 1), true
	}
	return time.Time{}, false
}

// NormalizeForEdit rewrites a relative token to the concrete ISO date it
// stands for, so it can populate an editable date field. Any other value is
// returned unchanged. This is a display-layer transform: the stored record
// keeps its raw date until an edit is submitted.
func NormalizeForEdit(raw string, now time.Time) string {
	d := ParseScheduleDate(raw)
	switch d.Kind {
	case DateToday, DateTomorrow:
		day, _ := d.Resolve(now)
		return day.Format(ISODate)
	}
	return raw
}

// DisplayLabel renders a stored date for listing: an ISO date equal to the
// current day shows as "Aujourd'hui", everything else as stored.
func DisplayLabel(raw string, now time.Time) string {
	if raw == now.Format(ISODate) {
		return TokenToday
	}
	return raw
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
