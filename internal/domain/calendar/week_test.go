package calendar

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func window(start, end string, index int) WeekWindow {
	return WeekWindow{
		Label:     start + " - " + end,
		StartDate: date(start),
		EndDate:   date(end),
		Index:     index,
	}
}

func testCatalog() []WeekWindow {
	return []WeekWindow{
		window("2024-01-01", "2024-01-07", 0),
		window("2024-01-08", "2024-01-14", 1),
		window("2024-01-15", "2024-01-21", 2),
		window("2024-01-22", "2024-01-28", 3),
	}
}

func TestFindCurrentWeekIndex(t *testing.T) {
	catalog := testCatalog()
	cases := []struct {
		today string
		want  int
	}{
		{"2024-01-01", 0},
		{"2024-01-07", 0},
		{"2024-01-08", 1},
		{"2024-01-10", 1},
		{"2024-01-21", 2},
		{"2024-01-28", 3},
		// Outside the covered span: fall back to the last window.
		{"2023-12-25", 3},
		{"2024-06-01", 3},
	}
	for _, c := range cases {
		got := FindCurrentWeekIndex(catalog, date(c.today))
		if got != c.want {
			t.Errorf("FindCurrentWeekIndex(today=%s) = %d, want %d", c.today, got, c.want)
		}
	}
}

func TestFindCurrentWeekIndexEmptyCatalog(t *testing.T) {
	if got := FindCurrentWeekIndex(nil, date("2024-01-01")); got != -1 {
		t.Errorf("FindCurrentWeekIndex(empty) = %d, want -1", got)
	}
}

func TestResolveWindow(t *testing.T) {
	catalog := testCatalog()

	w, err := ResolveWindow(catalog, 2)
	if err != nil {
		t.Fatalf("ResolveWindow(2) returned error: %v", err)
	}
	if !w.StartDate.Equal(date("2024-01-15")) {
		t.Errorf("ResolveWindow(2).StartDate = %v, want 2024-01-15", w.StartDate)
	}

	for _, idx := range []int{-1, 4, 100} {
		if _, err := ResolveWindow(catalog, idx); err != ErrWeekIndexOutOfRange {
			t.Errorf("ResolveWindow(%d) error = %v, want ErrWeekIndexOutOfRange", idx, err)
		}
	}
}

func TestDisabledMask(t *testing.T) {
	catalog := []WeekWindow{
		window("2024-01-01", "2024-01-07", 0),
		window("2024-01-08", "2024-01-14", 1),
	}

	// Catalog entirely in the past: no window disabled, trailing true appended.
	mask := DisabledMask(catalog, MaskAll, date("2024-01-20"))
	want := []bool{false, false, true}
	if len(mask) != len(want) {
		t.Fatalf("mask length = %d, want %d", len(mask), len(want))
	}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], want[i])
		}
	}

	// Today inside the first window: second window starts in the future.
	mask = DisabledMask(catalog, MaskAll, date("2024-01-03"))
	if len(mask) != 2 || mask[0] || !mask[1] {
		t.Errorf("mask = %v, want [false true]", mask)
	}

	// pastDue shares the disabling rule.
	pastDue := DisabledMask(catalog, MaskPastDue, date("2024-01-03"))
	if len(pastDue) != 2 || pastDue[0] || !pastDue[1] {
		t.Errorf("pastDue mask = %v, want [false true]", pastDue)
	}
}

func TestFutureCutoffMask(t *testing.T) {
	catalog := []WeekWindow{
		window("2024-01-01", "2024-01-07", 0),
		window("2024-02-05", "2024-02-11", 1),
		window("2024-03-04", "2024-03-10", 2),
	}

	// Cutoff is one calendar month after today.
	mask := FutureCutoffMask(catalog, date("2024-01-15"))
	if len(mask) != 3 || mask[0] || mask[1] || !mask[2] {
		t.Errorf("mask = %v, want [false false true]", mask)
	}

	// Everything within a month: trailing true appended.
	mask = FutureCutoffMask(catalog[:1], date("2024-01-15"))
	if len(mask) != 2 || mask[0] || !mask[1] {
		t.Errorf("mask = %v, want [false true]", mask)
	}
}

func TestWindowDays(t *testing.T) {
	w := window("2024-12-01", "2024-12-07", 0)
	holidays := []Holiday{{Name: "Founders Day", Date: date("2024-12-05")}}

	days := w.Days(holidays, date("2024-12-05"))
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	if days[0].Weekday != "Sunday" {
		t.Errorf("days[0].Weekday = %s, want Sunday", days[0].Weekday)
	}
	if !days[4].Holiday || !days[4].Disabled {
		t.Errorf("holiday slot = %+v, want holiday and disabled", days[4])
	}
	// Days past the cutoff are closed for entry.
	if !days[5].Disabled || !days[6].Disabled {
		t.Errorf("cutoff slots = %+v %+v, want disabled", days[5], days[6])
	}
	if days[3].Disabled {
		t.Errorf("days[3] = %+v, want enabled", days[3])
	}
}

func TestWindowContains(t *testing.T) {
	w := window("2024-01-08", "2024-01-14", 1)
	if !w.Contains(date("2024-01-08")) || !w.Contains(date("2024-01-14")) {
		t.Error("Contains should include both boundary days")
	}
	if w.Contains(date("2024-01-07")) || w.Contains(date("2024-01-15")) {
		t.Error("Contains should exclude days outside the window")
	}
	// Time of day within the end date still counts.
	if !w.Contains(date("2024-01-14").Add(23 * time.Hour)) {
		t.Error("Contains should include late hours of the end date")
	}
}
