package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidTransition = errors.New("action is not allowed in the row's current status")
	ErrRowImmutable      = errors.New("row has been submitted or accepted and can no longer be edited")
	ErrRowNotFound       = errors.New("timesheet row not found")
	ErrCellOutOfRange    = errors.New("day index is outside the week grid")
	ErrNotRowOwner       = errors.New("timesheet row belongs to another user")
	ErrNotSubmitted      = errors.New("only submitted rows can be approved or rejected")
)
