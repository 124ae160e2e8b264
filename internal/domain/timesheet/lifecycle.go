package timesheet

import (
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
)

// ActionKind tags a user action driving the row lifecycle.
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionSave   ActionKind = "save"
	ActionSubmit ActionKind = "submit"
	ActionDelete ActionKind = "delete"
)

// Transition applies one action to a row status and returns the next
// status. It is the whole state machine in one place, so it can be
// exercised without any storage or transport around it.
//
//	none/pending/saved/rejected --save--> saved
//	saved/pending/none/rejected --submit--> submitted
//	rejected --edit--> pending
//	accepted, submitted: terminal for edit and delete
func Transition(status RowStatus, action ActionKind) (RowStatus, error) {
	switch action {
	case ActionEdit:
		if status.Terminal() {
			return status, ErrRowImmutable
		}
		if status == StatusRejected {
			return StatusPending, nil
		}
		return status, nil

	case ActionSave:
		// Accepted rows are silently excluded from save payloads at the
		// set level; a direct save on one is a misuse.
		if status == StatusAccepted {
			return status, ErrRowImmutable
		}
		return StatusSaved, nil

	case ActionSubmit:
		if status == StatusAccepted {
			return status, ErrRowImmutable
		}
		return StatusSubmitted, nil

	case ActionDelete:
		if status.Terminal() {
			return status, ErrInvalidTransition
		}
		return status, nil

	default:
		return status, ErrInvalidTransition
	}
}

// RowSet owns the in-memory rows of one week view and serializes every
// mutation through its methods, so two event handlers can never race an
// update past each other. Row order is insertion order and survives all
// transformations.
type RowSet struct {
	rows        []TimesheetRow
	nextLocalID int
	slots       *StatusSlots
}

func NewRowSet() *RowSet {
	return &RowSet{nextLocalID: 1, slots: NewStatusSlots()}
}

// Load replaces the set's rows with rows from storage, assigning fresh
// local IDs and keeping storage order.
func (s *RowSet) Load(rows []TimesheetRow) {
	s.rows = make([]TimesheetRow, len(rows))
	for i, row := range rows {
		row.LocalID = s.nextLocalID
		s.nextLocalID++
		s.rows[i] = row
	}
	s.slots.InvalidateAll()
}

// Add appends a new unsaved row for a picked project and task category.
func (s *RowSet) Add(userID, projectID, categoryID string, cells []DayCell) TimesheetRow {
	row := TimesheetRow{
		LocalID:    s.nextLocalID,
		UserID:     userID,
		ProjectID:  projectID,
		CategoryID: categoryID,
		Cells:      cells,
		Status:     StatusNone,
	}
	s.nextLocalID++
	s.rows = append(s.rows, row)
	s.slots.InvalidateAll()
	return row
}

// Rows returns the rows in insertion order.
func (s *RowSet) Rows() []TimesheetRow {
	return s.rows
}

// OverallStatus returns the view's cached reduced status.
func (s *RowSet) OverallStatus(view ViewKind) RowStatus {
	return s.slots.Get(view, s.rows)
}

func (s *RowSet) find(localID int) (int, error) {
	for i := range s.rows {
		if s.rows[i].LocalID == localID {
			return i, nil
		}
	}
	return 0, ErrRowNotFound
}

// EditCell normalizes raw keystrokes into the addressed cell. Editing a
// rejected row flips it to pending and drops the view's cached status;
// sibling rows are untouched.
func (s *RowSet) EditCell(localID, dayIndex int, raw string, view ViewKind) error {
	i, err := s.find(localID)
	if err != nil {
		return err
	}
	row := &s.rows[i]

	if dayIndex < 0 || dayIndex >= len(row.Cells) {
		return ErrCellOutOfRange
	}

	next, err := Transition(row.Status, ActionEdit)
	if err != nil {
		return err
	}

	row.Cells[dayIndex].Hours = timefmt.ParseKeystrokes(raw)
	if next != row.Status {
		row.Status = next
		s.slots.Invalidate(view)
	}
	return nil
}

// EditTaskDetail updates a row's free-text task detail under the same
// lifecycle rules as a cell edit.
func (s *RowSet) EditTaskDetail(localID int, detail string, view ViewKind) error {
	i, err := s.find(localID)
	if err != nil {
		return err
	}
	row := &s.rows[i]

	next, err := Transition(row.Status, ActionEdit)
	if err != nil {
		return err
	}

	row.TaskDetail = detail
	if next != row.Status {
		row.Status = next
		s.slots.Invalidate(view)
	}
	return nil
}

// Remove deletes a row by local ID and returns it so the caller can
// issue a storage delete when the row had been persisted. Accepted and
// submitted rows cannot be removed.
func (s *RowSet) Remove(localID int) (TimesheetRow, error) {
	i, err := s.find(localID)
	if err != nil {
		return TimesheetRow{}, err
	}

	row := s.rows[i]
	if _, err := Transition(row.Status, ActionDelete); err != nil {
		return TimesheetRow{}, err
	}

	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.slots.InvalidateAll()
	return row, nil
}

// SavePayload returns the rows to persist on save: every row except the
// accepted ones, which are immutable once approved and filtered out
// rather than erroring.
func (s *RowSet) SavePayload() []TimesheetRow {
	var payload []TimesheetRow
	for _, row := range s.rows {
		if row.Status == StatusAccepted {
			continue
		}
		payload = append(payload, row)
	}
	return payload
}

// MarkSaved applies the save transition and the storage-assigned IDs to
// the rows that went out in the save payload. ids maps LocalID to the
// persisted row ID.
func (s *RowSet) MarkSaved(ids map[int]string) {
	for i := range s.rows {
		row := &s.rows[i]
		if row.Status == StatusAccepted {
			continue
		}
		if id, ok := ids[row.LocalID]; ok && row.ID == "" {
			row.ID = id
		}
		row.Status = StatusSaved
	}
	s.slots.InvalidateAll()
}

// MarkSubmitted applies the submit transition to every non-accepted row.
func (s *RowSet) MarkSubmitted() {
	for i := range s.rows {
		if s.rows[i].Status == StatusAccepted {
			continue
		}
		s.rows[i].Status = StatusSubmitted
	}
	s.slots.InvalidateAll()
}
