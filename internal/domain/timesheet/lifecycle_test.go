package timesheet

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		status  RowStatus
		action  ActionKind
		want    RowStatus
		wantErr error
	}{
		{StatusNone, ActionEdit, StatusNone, nil},
		{StatusSaved, ActionEdit, StatusSaved, nil},
		{StatusRejected, ActionEdit, StatusPending, nil},
		{StatusPending, ActionEdit, StatusPending, nil},
		{StatusAccepted, ActionEdit, StatusAccepted, ErrRowImmutable},
		{StatusSubmitted, ActionEdit, StatusSubmitted, ErrRowImmutable},

		{StatusNone, ActionSave, StatusSaved, nil},
		{StatusPending, ActionSave, StatusSaved, nil},
		{StatusRejected, ActionSave, StatusSaved, nil},
		{StatusAccepted, ActionSave, StatusAccepted, ErrRowImmutable},

		{StatusSaved, ActionSubmit, StatusSubmitted, nil},
		{StatusPending, ActionSubmit, StatusSubmitted, nil},
		{StatusAccepted, ActionSubmit, StatusAccepted, ErrRowImmutable},

		{StatusSaved, ActionDelete, StatusSaved, nil},
		{StatusRejected, ActionDelete, StatusRejected, nil},
		{StatusAccepted, ActionDelete, StatusAccepted, ErrInvalidTransition},
		{StatusSubmitted, ActionDelete, StatusSubmitted, ErrInvalidTransition},
	}
	for _, c := range cases {
		got, err := Transition(c.status, c.action)
		if !errors.Is(err, c.wantErr) {
			t.Errorf("Transition(%q, %q) error = %v, want %v", c.status, c.action, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("Transition(%q, %q) = %q, want %q", c.status, c.action, got, c.want)
		}
	}
}

func TestRowSetLocalIDsMonotonic(t *testing.T) {
	set := NewRowSet()
	a := set.Add("user-1", "proj-1", "cat-1", nil)
	b := set.Add("user-1", "proj-2", "cat-1", nil)
	if a.LocalID != 1 || b.LocalID != 2 {
		t.Errorf("local IDs = %d, %d, want 1, 2", a.LocalID, b.LocalID)
	}

	// Removal never reuses an ID.
	if _, err := set.Remove(a.LocalID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	c := set.Add("user-1", "proj-3", "cat-1", nil)
	if c.LocalID != 3 {
		t.Errorf("LocalID after removal = %d, want 3", c.LocalID)
	}
}

func TestRowSetEditRejectedFlipsToPending(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{
		{ID: "r-1", Status: StatusRejected, Cells: []DayCell{{Hours: "00:00"}}},
		{ID: "r-2", Status: StatusSaved, Cells: []DayCell{{Hours: "00:00"}}},
	})
	rows := set.Rows()

	if err := set.EditCell(rows[0].LocalID, 0, "90", ViewRejected); err != nil {
		t.Fatalf("EditCell returned error: %v", err)
	}

	rows = set.Rows()
	if rows[0].Status != StatusPending {
		t.Errorf("edited row status = %q, want pending", rows[0].Status)
	}
	if rows[0].Cells[0].Hours != "01:30" {
		t.Errorf("edited cell = %q, want 01:30", rows[0].Cells[0].Hours)
	}
	// Sibling rows keep their status.
	if rows[1].Status != StatusSaved {
		t.Errorf("sibling status = %q, want saved", rows[1].Status)
	}
}

func TestRowSetEditInvalidatesViewSlot(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{{ID: "r-1", Status: StatusRejected, Cells: []DayCell{{Hours: "00:00"}}}})

	if got := set.OverallStatus(ViewRejected); got != StatusRejected {
		t.Fatalf("OverallStatus = %q, want rejected", got)
	}

	localID := set.Rows()[0].LocalID
	if err := set.EditCell(localID, 0, "45", ViewRejected); err != nil {
		t.Fatalf("EditCell returned error: %v", err)
	}

	// Pending reduces to none, and the slot must have been refreshed.
	if got := set.OverallStatus(ViewRejected); got != StatusNone {
		t.Errorf("OverallStatus after edit = %q, want none", got)
	}
}

func TestRowSetTerminalRowsRejectEdits(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{
		{ID: "r-1", Status: StatusAccepted, Cells: []DayCell{{Hours: "08:00"}}},
		{ID: "r-2", Status: StatusSubmitted, Cells: []DayCell{{Hours: "08:00"}}},
	})
	for _, row := range set.Rows() {
		if err := set.EditCell(row.LocalID, 0, "90", ViewAll); !errors.Is(err, ErrRowImmutable) {
			t.Errorf("EditCell on %q row error = %v, want ErrRowImmutable", row.Status, err)
		}
		if err := set.EditTaskDetail(row.LocalID, "late edit", ViewAll); !errors.Is(err, ErrRowImmutable) {
			t.Errorf("EditTaskDetail on %q row error = %v, want ErrRowImmutable", row.Status, err)
		}
		if _, err := set.Remove(row.LocalID); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Remove on %q row error = %v, want ErrInvalidTransition", row.Status, err)
		}
	}
}

func TestRowSetEditCellBounds(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{{ID: "r-1", Status: StatusSaved, Cells: make([]DayCell, 7)}})
	localID := set.Rows()[0].LocalID

	if err := set.EditCell(localID, 7, "90", ViewAll); !errors.Is(err, ErrCellOutOfRange) {
		t.Errorf("EditCell(day 7) error = %v, want ErrCellOutOfRange", err)
	}
	if err := set.EditCell(99, 0, "90", ViewAll); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("EditCell(unknown row) error = %v, want ErrRowNotFound", err)
	}
}

func TestRowSetSavePayloadExcludesAccepted(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{
		{ID: "r-1", Status: StatusAccepted},
		{ID: "r-2", Status: StatusSaved},
		{Status: StatusNone},
	})

	payload := set.SavePayload()
	if len(payload) != 2 {
		t.Fatalf("len(payload) = %d, want 2", len(payload))
	}
	for _, row := range payload {
		if row.Status == StatusAccepted {
			t.Error("save payload must not contain accepted rows")
		}
	}
}

func TestRowSetMarkSaved(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{
		{ID: "r-1", Status: StatusAccepted},
		{Status: StatusNone},
	})
	unsaved := set.Rows()[1]

	set.MarkSaved(map[int]string{unsaved.LocalID: "r-9"})

	rows := set.Rows()
	if rows[0].Status != StatusAccepted {
		t.Errorf("accepted row status = %q, want accepted untouched", rows[0].Status)
	}
	if rows[1].Status != StatusSaved || rows[1].ID != "r-9" {
		t.Errorf("saved row = %+v, want saved with ID r-9", rows[1])
	}
}

func TestRowSetMarkSubmitted(t *testing.T) {
	set := NewRowSet()
	set.Load([]TimesheetRow{
		{ID: "r-1", Status: StatusAccepted},
		{ID: "r-2", Status: StatusSaved},
	})
	set.MarkSubmitted()

	rows := set.Rows()
	if rows[0].Status != StatusAccepted {
		t.Errorf("accepted row status = %q, want accepted", rows[0].Status)
	}
	if rows[1].Status != StatusSubmitted {
		t.Errorf("saved row status = %q, want submitted", rows[1].Status)
	}
}
