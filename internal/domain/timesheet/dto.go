package timesheet

import (
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type WeekViewRequest struct {
	WeekIndex *int   `json:"week_index,omitempty"`
	View      string `json:"view"`
	Today     string `json:"today,omitempty"`
}

func (r *WeekViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.View != "" && !validator.IsInSlice(r.View, []string{
		string(ViewAll), string(ViewPastDue), string(ViewAccepted), string(ViewRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "view",
			Message: "view must be one of: all, pastDue, accepted, rejected",
		})
	}

	if r.Today != "" {
		if _, ok := validator.IsValidDate(r.Today); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "today",
				Message: "today must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ViewKind resolves the requested view, defaulting to the all view.
func (r *WeekViewRequest) ViewKind() ViewKind {
	if r.View == "" {
		return ViewAll
	}
	return ViewKind(r.View)
}

// DayCellPayload is one enabled day cell as sent to storage. Disabled
// cells never travel in a payload.
type DayCellPayload struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	Hours   string `json:"hours"`
	Holiday bool   `json:"holiday"`
}

// RowPayload is one row of a save/submit request. TimesheetID is null
// until the row has been persisted once.
type RowPayload struct {
	TimesheetID *string          `json:"timesheet_id"`
	LocalID     int              `json:"local_id"`
	ProjectID   string           `json:"project_id"`
	CategoryID  string           `json:"category_id"`
	TaskDetail  string           `json:"task_detail"`
	DataSheet   []DayCellPayload `json:"data_sheet"`
}

func (p *RowPayload) validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".project_id",
			Message: "project_id is required",
		})
	}
	if validator.IsEmpty(p.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".category_id",
			Message: "category_id is required",
		})
	}
	for i, cell := range p.DataSheet {
		if _, ok := validator.IsValidDate(cell.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".data_sheet." + validator.Itoa(i) + ".date",
				Message: "date must be a valid date (YYYY-MM-DD)",
			})
		}
		if _, err := timefmt.ToMinutes(cell.Hours); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".data_sheet." + validator.Itoa(i) + ".hours",
				Message: "hours must be a valid HH:MM duration",
			})
		}
	}
	return errs
}

type SaveTimesheetRequest struct {
	Rows []RowPayload `json:"rows"`
}

func (r *SaveTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors
	for i, row := range r.Rows {
		errs = append(errs, row.validate("rows."+validator.Itoa(i))...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteRowRequest struct {
	TimesheetID string `json:"timesheet_id"`
}

func (r *DeleteRowRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TimesheetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "timesheet_id",
			Message: "timesheet_id is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	TimesheetID string `json:"timesheet_id"`
	Decision    string `json:"decision"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TimesheetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "timesheet_id",
			Message: "timesheet_id is required",
		})
	}
	if !validator.IsInSlice(r.Decision, []string{"accept", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be accept or reject",
		})
	}
	if r.Decision == "reject" && (r.Reason == nil || validator.IsEmpty(*r.Reason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required when rejecting",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayCellResponse struct {
	Weekday  string `json:"weekday"`
	Date     string `json:"date"`
	Hours    string `json:"hours"`
	Holiday  bool   `json:"holiday"`
	Disabled bool   `json:"disabled"`
}

type RowResponse struct {
	ID           string            `json:"id,omitempty"`
	LocalID      int               `json:"local_id"`
	ProjectID    string            `json:"project_id"`
	ProjectName  *string           `json:"project_name,omitempty"`
	CategoryID   string            `json:"category_id"`
	CategoryName *string           `json:"category_name,omitempty"`
	TaskDetail   string            `json:"task_detail,omitempty"`
	Status       string            `json:"status,omitempty"`
	Cells        []DayCellResponse `json:"cells"`
	Total        string            `json:"total"`
}

type WeekAggregateResponse struct {
	PerDayTotals  []string `json:"per_day_totals"`
	GrandTotal    string   `json:"grand_total"`
	OverallStatus string   `json:"overall_status,omitempty"`
}

type WeekViewResponse struct {
	WeekIndex int                   `json:"week_index"`
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Rows      []RowResponse         `json:"rows"`
	Aggregate WeekAggregateResponse `json:"aggregate"`
}

type SaveTimesheetResponse struct {
	Rows []RowResponse `json:"rows"`
}

type ApprovalListRequest struct {
	View  string `json:"view"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type ApprovalListResponse struct {
	Rows          []RowResponse `json:"rows"`
	OverallStatus string        `json:"overall_status,omitempty"`
	TotalItems    int64         `json:"total_items"`
}

type DashboardResponse struct {
	WeekIndex       int               `json:"week_index"`
	TotalThisWeek   string            `json:"total_this_week"`
	PerProject      map[string]string `json:"per_project"`
	PendingApproval int               `json:"pending_approval"`
	OverallStatus   string            `json:"overall_status,omitempty"`
}
