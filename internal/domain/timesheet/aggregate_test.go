package timesheet

import (
	"testing"
)

func sampleRow(localID int) TimesheetRow {
	return TimesheetRow{
		LocalID: localID,
		Cells: []DayCell{
			{Weekday: "Sunday", Hours: "08:00"},
			{Weekday: "Monday", Hours: "07:30"},
			{Weekday: "Tuesday", Hours: "06:00"},
			{Weekday: "Wednesday", Hours: "05:00"},
			{Weekday: "Thursday", Hours: "00:00", Holiday: true},
			{Weekday: "Friday", Hours: "00:00", Disabled: true},
			{Weekday: "Saturday", Hours: "00:00", Disabled: true},
		},
		Status: StatusSaved,
	}
}

func TestRowTotal(t *testing.T) {
	total, err := RowTotal(sampleRow(1))
	if err != nil {
		t.Fatalf("RowTotal returned error: %v", err)
	}
	if total != "26:30" {
		t.Errorf("RowTotal = %q, want 26:30", total)
	}
}

func TestAggregateTwoRows(t *testing.T) {
	rows := []TimesheetRow{sampleRow(1), sampleRow(2)}

	agg, err := Aggregate(rows, 7)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if agg.GrandTotal != "53:00" {
		t.Errorf("GrandTotal = %q, want 53:00", agg.GrandTotal)
	}
	if len(agg.RowTotals) != 2 || agg.RowTotals[0] != "26:30" || agg.RowTotals[1] != "26:30" {
		t.Errorf("RowTotals = %v, want [26:30 26:30]", agg.RowTotals)
	}
	wantPerDay := []string{"16:00", "15:00", "12:00", "10:00", "0:00", "0:00", "0:00"}
	for i, want := range wantPerDay {
		if agg.PerDayTotals[i] != want {
			t.Errorf("PerDayTotals[%d] = %q, want %q", i, agg.PerDayTotals[i], want)
		}
	}
	if agg.OverallStatus != StatusSaved {
		t.Errorf("OverallStatus = %q, want saved", agg.OverallStatus)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg, err := Aggregate(nil, 7)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if agg.GrandTotal != "0:00" {
		t.Errorf("GrandTotal = %q, want 0:00", agg.GrandTotal)
	}
	if len(agg.PerDayTotals) != 7 {
		t.Errorf("len(PerDayTotals) = %d, want 7", len(agg.PerDayTotals))
	}
	if agg.OverallStatus != StatusNone {
		t.Errorf("OverallStatus = %q, want none", agg.OverallStatus)
	}
}

func TestAggregateMalformedCell(t *testing.T) {
	rows := []TimesheetRow{{
		LocalID: 1,
		Cells:   []DayCell{{Weekday: "Sunday", Hours: "garbage"}},
	}}
	if _, err := Aggregate(rows, 7); err == nil {
		t.Error("Aggregate should fail on a malformed cell, not coerce to zero")
	}
}

func TestAggregatePreservesRowOrder(t *testing.T) {
	rows := []TimesheetRow{
		{LocalID: 1, Cells: []DayCell{{Hours: "01:00"}}},
		{LocalID: 2, Cells: []DayCell{{Hours: "02:00"}}},
		{LocalID: 3, Cells: []DayCell{{Hours: "03:00"}}},
	}
	agg, err := Aggregate(rows, 1)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	want := []string{"1:00", "2:00", "3:00"}
	for i := range want {
		if agg.RowTotals[i] != want[i] {
			t.Errorf("RowTotals[%d] = %q, want %q", i, agg.RowTotals[i], want[i])
		}
	}
}
