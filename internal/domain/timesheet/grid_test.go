package timesheet

import (
	"testing"
	"time"

	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func weekDays(start string) []calendar.WeekDay {
	var days []calendar.WeekDay
	d := date(start)
	for i := 0; i < 7; i++ {
		days = append(days, calendar.WeekDay{
			Weekday: d.Weekday().String(),
			Date:    d,
		})
		d = d.AddDate(0, 0, 1)
	}
	return days
}

func TestMapEntriesToWeekEmpty(t *testing.T) {
	cells := MapEntriesToWeek(nil, weekDays("2024-12-01"))
	if len(cells) != 7 {
		t.Fatalf("len(cells) = %d, want 7", len(cells))
	}
	for i, c := range cells {
		if c.Hours != "00:00" {
			t.Errorf("cells[%d].Hours = %q, want 00:00", i, c.Hours)
		}
		if c.Holiday || c.Disabled {
			t.Errorf("cells[%d] = %+v, want clean placeholder", i, c)
		}
	}
}

func TestMapEntriesToWeekPartial(t *testing.T) {
	entries := []DayEntry{
		{Date: date("2024-12-02"), Hours: "08:00"},
		{Date: date("2024-12-04"), Hours: "06:30", Holiday: true},
	}
	cells := MapEntriesToWeek(entries, weekDays("2024-12-01"))
	if len(cells) != 7 {
		t.Fatalf("len(cells) = %d, want 7", len(cells))
	}
	if cells[1].Hours != "08:00" {
		t.Errorf("cells[1].Hours = %q, want 08:00", cells[1].Hours)
	}
	if cells[3].Hours != "06:30" || !cells[3].Holiday {
		t.Errorf("cells[3] = %+v, want 06:30 holiday", cells[3])
	}
	if cells[0].Hours != "00:00" || cells[6].Hours != "00:00" {
		t.Error("gap slots should be zero placeholders")
	}
}

func TestMapEntriesToWeekDuplicateDates(t *testing.T) {
	// The last matching entry in iteration order wins.
	entries := []DayEntry{
		{Date: date("2024-12-02"), Hours: "01:00"},
		{Date: date("2024-12-02"), Hours: "02:00"},
		{Date: date("2024-12-02"), Hours: "03:00"},
	}
	cells := MapEntriesToWeek(entries, weekDays("2024-12-01"))
	if cells[1].Hours != "03:00" {
		t.Errorf("cells[1].Hours = %q, want 03:00", cells[1].Hours)
	}
}

func TestMapEntriesToWeekOutOfRangeEntries(t *testing.T) {
	// Ten entries, most outside the week: output stays exactly 7 cells.
	var entries []DayEntry
	d := date("2024-11-25")
	for i := 0; i < 10; i++ {
		entries = append(entries, DayEntry{Date: d, Hours: "01:00"})
		d = d.AddDate(0, 0, 1)
	}
	cells := MapEntriesToWeek(entries, weekDays("2024-12-01"))
	if len(cells) != 7 {
		t.Fatalf("len(cells) = %d, want 7", len(cells))
	}
}

func TestMapEntriesToWeekSlotDisabledFlag(t *testing.T) {
	days := weekDays("2024-12-01")
	days[5].Disabled = true
	days[6].Disabled = true

	cells := MapEntriesToWeek(nil, days)
	if !cells[5].Disabled || !cells[6].Disabled {
		t.Error("placeholder cells should carry the slot's disabled flag")
	}
	if cells[0].Disabled {
		t.Error("enabled slot should produce an enabled placeholder")
	}
}

func TestBuildWeekFromTimesheet(t *testing.T) {
	window := calendar.WeekWindow{
		StartDate: date("2024-12-01"),
		EndDate:   date("2024-12-07"),
	}
	days := []DayEntry{
		{Date: date("2024-11-30"), Hours: "00:00"}, // out of range, zero
		{Date: date("2024-12-02"), Hours: "08:00"}, // in range, stored
		{Date: date("2024-12-03"), Hours: ""},      // in range, no entry
		{Date: date("2024-12-09"), Hours: "04:00"}, // out of range, recorded time
	}

	cells := BuildWeekFromTimesheet(days, window)
	if len(cells) != 4 {
		t.Fatalf("len(cells) = %d, want 4", len(cells))
	}
	if !cells[0].Disabled {
		t.Error("out-of-range zero day should be disabled")
	}
	if cells[1].Disabled {
		t.Error("stored in-range day should be enabled")
	}
	if !cells[2].Disabled || cells[2].Hours != "00:00" {
		t.Errorf("missing-entry day = %+v, want disabled 00:00", cells[2])
	}
	// Recorded historical time is never hidden by the range filter.
	if cells[3].Disabled {
		t.Error("nonzero out-of-range day should be force-enabled")
	}
}
