package timesheet

import (
	"testing"
)

func rowsWith(statuses ...RowStatus) []TimesheetRow {
	rows := make([]TimesheetRow, len(statuses))
	for i, s := range statuses {
		rows[i] = TimesheetRow{LocalID: i + 1, Status: s}
	}
	return rows
}

func TestReduceStatus(t *testing.T) {
	cases := []struct {
		name     string
		statuses []RowStatus
		want     RowStatus
	}{
		{"empty", nil, StatusNone},
		{"accepted and rejected collapse", []RowStatus{StatusAccepted, StatusRejected}, StatusNone},
		{"accepted wins", []RowStatus{StatusSaved, StatusAccepted, StatusSubmitted}, StatusAccepted},
		{"rejected beats submitted", []RowStatus{StatusSubmitted, StatusRejected}, StatusRejected},
		{"submitted beats saved", []RowStatus{StatusSaved, StatusSubmitted}, StatusSubmitted},
		{"single rejected", []RowStatus{StatusRejected}, StatusRejected},
		{"all saved", []RowStatus{StatusSaved, StatusSaved}, StatusSaved},
		{"only pending", []RowStatus{StatusPending}, StatusNone},
		{"statusless rows", []RowStatus{StatusNone, StatusNone}, StatusNone},
	}
	for _, c := range cases {
		got := ReduceStatus(rowsWith(c.statuses...))
		if got != c.want {
			t.Errorf("%s: ReduceStatus = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestStatusSlotsCaching(t *testing.T) {
	slots := NewStatusSlots()
	rows := rowsWith(StatusSaved)

	if got := slots.Get(ViewAll, rows); got != StatusSaved {
		t.Fatalf("Get(all) = %q, want saved", got)
	}

	// Without invalidation the cached slot is served even if rows moved on.
	rows[0].Status = StatusSubmitted
	if got := slots.Get(ViewAll, rows); got != StatusSaved {
		t.Errorf("Get(all) after silent change = %q, want cached saved", got)
	}

	slots.Invalidate(ViewAll)
	if got := slots.Get(ViewAll, rows); got != StatusSubmitted {
		t.Errorf("Get(all) after invalidation = %q, want submitted", got)
	}
}

func TestStatusSlotsPerView(t *testing.T) {
	slots := NewStatusSlots()

	all := rowsWith(StatusSaved, StatusSubmitted)
	rejected := rowsWith(StatusRejected)

	if got := slots.Get(ViewAll, all); got != StatusSubmitted {
		t.Errorf("Get(all) = %q, want submitted", got)
	}
	if got := slots.Get(ViewRejected, rejected); got != StatusRejected {
		t.Errorf("Get(rejected) = %q, want rejected", got)
	}

	// Invalidating one view leaves the other's slot alone.
	slots.Invalidate(ViewRejected)
	if got := slots.Get(ViewAll, nil); got != StatusSubmitted {
		t.Errorf("Get(all) after foreign invalidation = %q, want cached submitted", got)
	}
}
