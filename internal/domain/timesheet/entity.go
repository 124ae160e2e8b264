package timesheet

import (
	"time"
)

// RowStatus is the approval status of one timesheet row. The zero value
// means the row has no status yet (unsaved, or an empty reduction).
type RowStatus string

const (
	StatusNone      RowStatus = ""
	StatusSaved     RowStatus = "saved"
	StatusSubmitted RowStatus = "submitted"
	StatusAccepted  RowStatus = "accepted"
	StatusRejected  RowStatus = "rejected"
	// StatusPending marks a rejected row that has been edited but not
	// yet re-saved. It never comes back from storage.
	StatusPending RowStatus = "pending"
)

// Terminal reports whether direct user edits are forbidden in this
// status. The only way out is an approval decision.
func (s RowStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusSubmitted
}

// DayCell is one day slot of a row's week grid.
type DayCell struct {
	Weekday  string
	Date     time.Time
	Hours    string // canonical "HH:MM" duration
	Holiday  bool
	Disabled bool
}

// DayEntry is a dated time entry as it comes back from storage, before
// it is aligned onto the week grid.
type DayEntry struct {
	Date     time.Time
	Hours    string
	Holiday  bool
	Disabled bool
}

// TimesheetRow is one project/task line item with its week of cells.
// LocalID is the session-scoped identity and stays stable across
// re-renders; ID is assigned by storage on first save and is the
// addressing key from then on.
type TimesheetRow struct {
	ID         string
	LocalID    int
	UserID     string
	ProjectID  string
	CategoryID string
	TaskDetail string
	Cells      []DayCell
	Status     RowStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	ProjectName  *string
	CategoryName *string
}

// WeekAggregate is derived per view and never stored: totals per day
// across rows, per row, and overall, plus the reduced view status.
type WeekAggregate struct {
	PerDayTotals  []string
	RowTotals     []string
	GrandTotal    string
	OverallStatus RowStatus
}
