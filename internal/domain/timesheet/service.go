package timesheet

import (
	"context"
)

// TimesheetService defines business logic for weekly timesheets.
type TimesheetService interface {
	// GetWeekView resolves a week window (current week when no index is
	// given), loads the user's rows onto the week grid and returns them
	// with the derived aggregate for the requested view.
	GetWeekView(ctx context.Context, req WeekViewRequest) (WeekViewResponse, error)

	// Save persists the payload rows. Accepted rows are filtered out of
	// the payload rather than rejected.
	Save(ctx context.Context, req SaveTimesheetRequest) (SaveTimesheetResponse, error)

	// Submit performs an implicit save, then marks every non-accepted
	// payload row as submitted.
	Submit(ctx context.Context, req SaveTimesheetRequest) (SaveTimesheetResponse, error)

	// DeleteRow removes a persisted row. Accepted and submitted rows
	// cannot be deleted.
	DeleteRow(ctx context.Context, req DeleteRowRequest) error

	// ListForApproval returns submitted rows for the approval queue
	// (manager only).
	ListForApproval(ctx context.Context, req ApprovalListRequest) (ApprovalListResponse, error)

	// Review records an accept/reject decision on a submitted row and
	// notifies the row's owner.
	Review(ctx context.Context, req ReviewRequest) (RowResponse, error)

	// Dashboard summarizes the current week for the signed-in user.
	Dashboard(ctx context.Context) (DashboardResponse, error)

	// FlagOverdue emails users whose rows in the most recent past-due
	// week were saved but never submitted. Run from the scheduler.
	FlagOverdue(ctx context.Context) error
}
