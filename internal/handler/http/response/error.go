package response

import (
	"errors"
	"net/http"

	"github.com/workfriar/timesheet-backend-go/internal/domain/auth"
	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/domain/project"
	"github.com/workfriar/timesheet-backend-go/internal/domain/timesheet"
	"github.com/workfriar/timesheet-backend-go/internal/domain/user"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed duration strings surface as a bad request with the
	// offending value attached.
	var formatErr *timefmt.FormatError
	if errors.As(err, &formatErr) {
		BadRequest(w, "Invalid duration format", map[string]string{
			"value": formatErr.Input,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrWeekIndexOutOfRange):
		BadRequest(w, "Week index is out of range", nil)
	case errors.Is(err, calendar.ErrEmptyCatalog):
		NotFound(w, "No week windows configured")
	case errors.Is(err, calendar.ErrWindowNotFound):
		NotFound(w, "Week window not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrCategoryNotFound):
		NotFound(w, "Task category not found")
	case errors.Is(err, project.ErrNotAssigned):
		Forbidden(w, "User is not assigned to this project")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrRowNotFound):
		NotFound(w, "Timesheet row not found")
	case errors.Is(err, timesheet.ErrNotRowOwner):
		Forbidden(w, "Timesheet row belongs to another user")
	case errors.Is(err, timesheet.ErrRowImmutable):
		Conflict(w, "Row can no longer be edited")
	case errors.Is(err, timesheet.ErrInvalidTransition):
		Conflict(w, "Action is not allowed in the row's current status")
	case errors.Is(err, timesheet.ErrNotSubmitted):
		Conflict(w, "Only submitted rows can be reviewed")
	case errors.Is(err, timesheet.ErrCellOutOfRange):
		BadRequest(w, "Day index is outside the week grid", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
