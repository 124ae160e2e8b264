package calendar

import (
	"time"
)

// WeekWindow is one timesheet period from the ordered multi-year catalog.
// Windows never overlap and Index is the position within the catalog.
type WeekWindow struct {
	ID        string
	Label     string
	StartDate time.Time
	EndDate   time.Time
	Index     int
}

// WeekDay describes one slot of the canonical week grid derived from a
// window: the date it covers and whether entry is allowed on it.
type WeekDay struct {
	Weekday  string
	Date     time.Time
	Holiday  bool
	Disabled bool
}

// Holiday is a company holiday from the holiday calendar.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether d falls inside the window, comparing by
// calendar day ([start 00:00, end 23:59:59.999]).
func (w WeekWindow) Contains(d time.Time) bool {
	day := Midnight(d)
	return !day.Before(Midnight(w.StartDate)) && !day.After(Midnight(w.EndDate))
}

// Days expands the window into its ordered day slots. Holiday and
// cutoff flags are applied per slot: dates past cutoff or listed in
// holidays are not open for entry.
func (w WeekWindow) Days(holidays []Holiday, cutoff time.Time) []WeekDay {
	holidaySet := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[Midnight(h.Date)] = true
	}

	var days []WeekDay
	cutoffDay := Midnight(cutoff)
	for d := Midnight(w.StartDate); !d.After(Midnight(w.EndDate)); d = d.AddDate(0, 0, 1) {
		days = append(days, WeekDay{
			Weekday:  d.Weekday().String(),
			Date:     d,
			Holiday:  holidaySet[d],
			Disabled: d.After(cutoffDay) || holidaySet[d],
		})
	}
	return days
}

// Midnight truncates t to the start of its calendar day in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
