package timesheet

// ViewKind names one of the logical timesheet views. Each view keeps
// its own overall-status slot; switching views swaps slots rather than
// recomputing one global status.
type ViewKind string

const (
	ViewAll      ViewKind = "all"
	ViewPastDue  ViewKind = "pastDue"
	ViewAccepted ViewKind = "accepted"
	ViewRejected ViewKind = "rejected"
)

// ReduceStatus collapses a set of row statuses into one overall status.
// Priority: accepted > rejected > submitted > saved > none. An empty
// set reduces to none, and so does a set holding both an accepted and a
// rejected row: the mixed result is deliberately collapsed instead of
// being surfaced as either side.
func ReduceStatus(rows []TimesheetRow) RowStatus {
	if len(rows) == 0 {
		return StatusNone
	}

	var hasAccepted, hasRejected, hasSubmitted, hasSaved bool
	for _, row := range rows {
		switch row.Status {
		case StatusAccepted:
			hasAccepted = true
		case StatusRejected:
			hasRejected = true
		case StatusSubmitted:
			hasSubmitted = true
		case StatusSaved:
			hasSaved = true
		}
	}

	switch {
	case hasAccepted && hasRejected:
		return StatusNone
	case hasAccepted:
		return StatusAccepted
	case hasRejected:
		return StatusRejected
	case hasSubmitted:
		return StatusSubmitted
	case hasSaved:
		return StatusSaved
	default:
		return StatusNone
	}
}

// StatusSlots caches the reduced overall status per view. A slot is
// recomputed lazily after invalidation, so an edit only pays for the
// views that are actually read afterwards.
type StatusSlots struct {
	slots map[ViewKind]RowStatus
	valid map[ViewKind]bool
}

func NewStatusSlots() *StatusSlots {
	return &StatusSlots{
		slots: make(map[ViewKind]RowStatus),
		valid: make(map[ViewKind]bool),
	}
}

// Get returns the view's overall status, reducing rows only when the
// cached slot has been invalidated.
func (s *StatusSlots) Get(view ViewKind, rows []TimesheetRow) RowStatus {
	if s.valid[view] {
		return s.slots[view]
	}
	status := ReduceStatus(rows)
	s.slots[view] = status
	s.valid[view] = true
	return status
}

// Invalidate drops the cached status for one view.
func (s *StatusSlots) Invalidate(view ViewKind) {
	s.valid[view] = false
}

// InvalidateAll drops every cached slot.
func (s *StatusSlots) InvalidateAll() {
	for view := range s.valid {
		s.valid[view] = false
	}
}
