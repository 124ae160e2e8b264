package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access for timesheet rows and their
// day entries. All reads and writes are scoped to a user ID so one
// user's rows can never leak into another's week view.
type TimesheetRepository interface {
	// ListRows returns a user's rows whose entries fall inside
	// [from, to], with day entries attached, in insertion order.
	ListRows(ctx context.Context, userID string, from, to time.Time) ([]TimesheetRow, error)

	// GetByID retrieves one row with its day entries.
	GetByID(ctx context.Context, id string) (TimesheetRow, error)

	// Upsert creates the row when it has no ID yet, otherwise replaces
	// its fields and day entries. Returns the row with its storage ID.
	Upsert(ctx context.Context, row TimesheetRow) (TimesheetRow, error)

	// UpdateStatus sets the status of the given rows.
	UpdateStatus(ctx context.Context, ids []string, status RowStatus) error

	// SetDecision records an approval decision on a submitted row.
	SetDecision(ctx context.Context, id string, status RowStatus, reviewerID string, reason *string) error

	// Delete removes a row and its day entries.
	Delete(ctx context.Context, id string, userID string) error

	// ListByStatus returns rows in one status across users, for the
	// approval queue. Paginated; returns rows and the total count.
	ListByStatus(ctx context.Context, status RowStatus, from, to time.Time, page, limit int) ([]TimesheetRow, int64, error)

	// CountByStatus counts a user's rows in one status within a range.
	CountByStatus(ctx context.Context, userID string, status RowStatus, from, to time.Time) (int, error)
}
