package timesheet

import (
	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
)

// MapEntriesToWeek aligns arbitrary dated entries onto the canonical
// week grid. The result always has exactly one cell per week day, in
// week-day order. A slot with no matching entry gets a zero placeholder
// carrying the slot's own disabled flag. When several entries share a
// date, the last one in iteration order wins.
func MapEntriesToWeek(entries []DayEntry, weekDays []calendar.WeekDay) []DayCell {
	byDate := make(map[string]DayEntry, len(entries))
	for _, e := range entries {
		byDate[e.Date.Format("2006-01-02")] = e
	}

	cells := make([]DayCell, len(weekDays))
	for i, day := range weekDays {
		cell := DayCell{
			Weekday:  day.Weekday,
			Date:     day.Date,
			Hours:    "00:00",
			Disabled: day.Disabled,
		}
		if e, ok := byDate[day.Date.Format("2006-01-02")]; ok {
			cell.Hours = e.Hours
			cell.Holiday = e.Holiday
			cell.Disabled = e.Disabled
		}
		cells[i] = cell
	}
	return cells
}

// BuildWeekFromTimesheet reconciles stored days against a desired week
// window. A day is in range iff start <= day <= end. Out-of-range days
// and days with no stored entry are disabled, except that a stored
// entry with nonzero hours is always kept enabled: recorded time is
// never hidden behind a range filter.
func BuildWeekFromTimesheet(days []DayEntry, window calendar.WeekWindow) []DayCell {
	var cells []DayCell
	for _, d := range days {
		inRange := window.Contains(d.Date)
		disabled := !inRange || d.Hours == ""
		if !timefmt.IsZero(d.Hours) {
			disabled = false
		}

		hours := d.Hours
		if hours == "" {
			hours = "00:00"
		}
		cells = append(cells, DayCell{
			Weekday:  d.Date.Weekday().String(),
			Date:     d.Date,
			Hours:    hours,
			Holiday:  d.Holiday,
			Disabled: disabled,
		})
	}
	return cells
}
