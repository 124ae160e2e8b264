package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/domain/project"
	"github.com/workfriar/timesheet-backend-go/internal/domain/timesheet"
	"github.com/workfriar/timesheet-backend-go/internal/domain/user"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/database"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/email"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/sse"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/validator"
	"github.com/workfriar/timesheet-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.TimesheetRepository
	calendar.WeekWindowRepository
	calendar.HolidayRepository
	project.ProjectRepository
	user.UserRepository
	hub   *sse.Hub
	email email.EmailService
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	weekWindowRepo calendar.WeekWindowRepository,
	holidayRepo calendar.HolidayRepository,
	projectRepo project.ProjectRepository,
	userRepo user.UserRepository,
	hub *sse.Hub,
	emailService email.EmailService,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                   db,
		TimesheetRepository:  timesheetRepo,
		WeekWindowRepository: weekWindowRepo,
		HolidayRepository:    holidayRepo,
		ProjectRepository:    projectRepo,
		UserRepository:       userRepo,
		hub:                  hub,
		email:                emailService,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func roleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", fmt.Errorf("role claim is missing or invalid")
	}
	return user.Role(roleStr), nil
}

// resolveWindow picks the requested window, or the current week when no
// index is given.
func (t *TimesheetServiceImpl) resolveWindow(ctx context.Context, weekIndex *int, today time.Time) (calendar.WeekWindow, error) {
	catalog, err := t.WeekWindowRepository.ListWindows(ctx)
	if err != nil {
		return calendar.WeekWindow{}, fmt.Errorf("failed to list week windows: %w", err)
	}
	if len(catalog) == 0 {
		return calendar.WeekWindow{}, calendar.ErrEmptyCatalog
	}

	idx := calendar.FindCurrentWeekIndex(catalog, today)
	if weekIndex != nil {
		idx = *weekIndex
	}
	return calendar.ResolveWindow(catalog, idx)
}

func referenceDate(raw string) time.Time {
	if raw != "" {
		if d, ok := validator.IsValidDate(raw); ok {
			return d
		}
	}
	return calendar.Midnight(time.Now())
}

// GetWeekView implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) GetWeekView(ctx context.Context, req timesheet.WeekViewRequest) (timesheet.WeekViewResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.WeekViewResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.WeekViewResponse{}, err
	}

	today := referenceDate(req.Today)
	window, err := t.resolveWindow(ctx, req.WeekIndex, today)
	if err != nil {
		return timesheet.WeekViewResponse{}, err
	}

	holidays, err := t.HolidayRepository.ListHolidays(ctx, window.StartDate, window.EndDate)
	if err != nil {
		return timesheet.WeekViewResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	weekDays := window.Days(holidays, today)

	stored, err := t.TimesheetRepository.ListRows(ctx, userID, window.StartDate, window.EndDate)
	if err != nil {
		return timesheet.WeekViewResponse{}, fmt.Errorf("failed to list timesheet rows: %w", err)
	}

	view := req.ViewKind()
	var rows []timesheet.TimesheetRow
	for _, row := range stored {
		switch view {
		case timesheet.ViewAccepted:
			if row.Status != timesheet.StatusAccepted {
				continue
			}
		case timesheet.ViewRejected:
			if row.Status != timesheet.StatusRejected {
				continue
			}
		}
		row.Cells = alignToWeek(row.Cells, weekDays)
		rows = append(rows, row)
	}

	set := timesheet.NewRowSet()
	set.Load(rows)

	agg, err := timesheet.Aggregate(set.Rows(), len(weekDays))
	if err != nil {
		return timesheet.WeekViewResponse{}, err
	}

	resp := timesheet.WeekViewResponse{
		WeekIndex: window.Index,
		StartDate: window.StartDate.Format("2006-01-02"),
		EndDate:   window.EndDate.Format("2006-01-02"),
		Rows:      []timesheet.RowResponse{},
		Aggregate: timesheet.WeekAggregateResponse{
			PerDayTotals:  agg.PerDayTotals,
			GrandTotal:    agg.GrandTotal,
			OverallStatus: string(set.OverallStatus(view)),
		},
	}
	for i, row := range set.Rows() {
		resp.Rows = append(resp.Rows, rowResponse(row, agg.RowTotals[i]))
	}
	return resp, nil
}

// alignToWeek snaps stored cells onto the week grid so every row shows
// exactly one cell per week day.
func alignToWeek(cells []timesheet.DayCell, weekDays []calendar.WeekDay) []timesheet.DayCell {
	entries := make([]timesheet.DayEntry, 0, len(cells))
	for _, c := range cells {
		entries = append(entries, timesheet.DayEntry{
			Date:     c.Date,
			Hours:    c.Hours,
			Holiday:  c.Holiday,
			Disabled: c.Disabled,
		})
	}
	return timesheet.MapEntriesToWeek(entries, weekDays)
}

func rowResponse(row timesheet.TimesheetRow, total string) timesheet.RowResponse {
	resp := timesheet.RowResponse{
		ID:           row.ID,
		LocalID:      row.LocalID,
		ProjectID:    row.ProjectID,
		ProjectName:  row.ProjectName,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		TaskDetail:   row.TaskDetail,
		Status:       string(row.Status),
		Cells:        []timesheet.DayCellResponse{},
		Total:        total,
	}
	for _, cell := range row.Cells {
		resp.Cells = append(resp.Cells, timesheet.DayCellResponse{
			Weekday:  cell.Weekday,
			Date:     cell.Date.Format("2006-01-02"),
			Hours:    cell.Hours,
			Holiday:  cell.Holiday,
			Disabled: cell.Disabled,
		})
	}
	return resp
}

// Save implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Save(ctx context.Context, req timesheet.SaveTimesheetRequest) (timesheet.SaveTimesheetResponse, error) {
	return t.persist(ctx, req, timesheet.ActionSave)
}

// Submit implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Submit(ctx context.Context, req timesheet.SaveTimesheetRequest) (timesheet.SaveTimesheetResponse, error) {
	return t.persist(ctx, req, timesheet.ActionSubmit)
}

// persist runs the shared save/submit path. Accepted rows are filtered
// out of the payload without erroring; everything else moves to the
// action's target status in one transaction.
func (t *TimesheetServiceImpl) persist(ctx context.Context, req timesheet.SaveTimesheetRequest, action timesheet.ActionKind) (timesheet.SaveTimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.SaveTimesheetResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.SaveTimesheetResponse{}, err
	}

	resp := timesheet.SaveTimesheetResponse{Rows: []timesheet.RowResponse{}}
	err = postgresql.WithTransaction(ctx, t.db, func(txCtx context.Context, _ pgx.Tx) error {
		for _, payload := range req.Rows {
			row, skip, err := t.prepareRow(txCtx, userID, payload, action)
			if err != nil {
				return err
			}
			if skip {
				continue
			}

			saved, err := t.TimesheetRepository.Upsert(txCtx, row)
			if err != nil {
				return err
			}

			total, err := timesheet.RowTotal(saved)
			if err != nil {
				return err
			}
			resp.Rows = append(resp.Rows, rowResponse(saved, total))
		}
		return nil
	})
	if err != nil {
		return timesheet.SaveTimesheetResponse{}, err
	}
	return resp, nil
}

func (t *TimesheetServiceImpl) prepareRow(ctx context.Context, userID string, payload timesheet.RowPayload, action timesheet.ActionKind) (timesheet.TimesheetRow, bool, error) {
	row := timesheet.TimesheetRow{
		LocalID:    payload.LocalID,
		UserID:     userID,
		ProjectID:  payload.ProjectID,
		CategoryID: payload.CategoryID,
		TaskDetail: payload.TaskDetail,
		Status:     timesheet.StatusNone,
	}

	if payload.TimesheetID != nil && *payload.TimesheetID != "" {
		existing, err := t.TimesheetRepository.GetByID(ctx, *payload.TimesheetID)
		if err != nil {
			return timesheet.TimesheetRow{}, false, err
		}
		if existing.UserID != userID {
			return timesheet.TimesheetRow{}, false, timesheet.ErrNotRowOwner
		}
		if existing.Status == timesheet.StatusAccepted {
			return timesheet.TimesheetRow{}, true, nil
		}
		row.ID = existing.ID
		row.Status = existing.Status
	} else {
		assigned, err := t.ProjectRepository.IsAssigned(ctx, userID, payload.ProjectID)
		if err != nil {
			return timesheet.TimesheetRow{}, false, fmt.Errorf("failed to check project assignment: %w", err)
		}
		if !assigned {
			return timesheet.TimesheetRow{}, false, project.ErrNotAssigned
		}
	}

	next, err := timesheet.Transition(row.Status, action)
	if err != nil {
		return timesheet.TimesheetRow{}, false, err
	}
	row.Status = next

	for _, cell := range payload.DataSheet {
		date, _ := validator.IsValidDate(cell.Date)
		row.Cells = append(row.Cells, timesheet.DayCell{
			Weekday: cell.Weekday,
			Date:    date,
			Hours:   timefmt.ParseKeystrokes(cell.Hours),
			Holiday: cell.Holiday,
		})
	}
	return row, false, nil
}

// DeleteRow implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) DeleteRow(ctx context.Context, req timesheet.DeleteRowRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	row, err := t.TimesheetRepository.GetByID(ctx, req.TimesheetID)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return timesheet.ErrNotRowOwner
	}
	if _, err := timesheet.Transition(row.Status, timesheet.ActionDelete); err != nil {
		return err
	}

	return t.TimesheetRepository.Delete(ctx, req.TimesheetID, userID)
}

// ListForApproval implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) ListForApproval(ctx context.Context, req timesheet.ApprovalListRequest) (timesheet.ApprovalListResponse, error) {
	role, err := roleFromContext(ctx)
	if err != nil {
		return timesheet.ApprovalListResponse{}, err
	}
	reviewer := user.User{Role: role}
	if !reviewer.CanReview() {
		return timesheet.ApprovalListResponse{}, user.ErrManagerAccessRequired
	}

	from := time.Time{}
	to := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	if d, ok := validator.IsValidDate(req.From); ok {
		from = d
	}
	if d, ok := validator.IsValidDate(req.To); ok {
		to = d
	}

	rows, total, err := t.TimesheetRepository.ListByStatus(ctx, timesheet.StatusSubmitted, from, to, req.Page, req.Limit)
	if err != nil {
		return timesheet.ApprovalListResponse{}, fmt.Errorf("failed to list submitted rows: %w", err)
	}

	resp := timesheet.ApprovalListResponse{
		Rows:          []timesheet.RowResponse{},
		OverallStatus: string(timesheet.ReduceStatus(rows)),
		TotalItems:    total,
	}
	for _, row := range rows {
		rowTotal, err := timesheet.RowTotal(row)
		if err != nil {
			return timesheet.ApprovalListResponse{}, err
		}
		resp.Rows = append(resp.Rows, rowResponse(row, rowTotal))
	}
	return resp, nil
}

// Review implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Review(ctx context.Context, req timesheet.ReviewRequest) (timesheet.RowResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.RowResponse{}, err
	}

	reviewerID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.RowResponse{}, err
	}
	role, err := roleFromContext(ctx)
	if err != nil {
		return timesheet.RowResponse{}, err
	}
	reviewer := user.User{Role: role}
	if !reviewer.CanReview() {
		return timesheet.RowResponse{}, user.ErrManagerAccessRequired
	}

	status := timesheet.StatusAccepted
	if req.Decision == "reject" {
		status = timesheet.StatusRejected
	}

	var row timesheet.TimesheetRow
	err = postgresql.WithTransaction(ctx, t.db, func(txCtx context.Context, _ pgx.Tx) error {
		if err := t.TimesheetRepository.SetDecision(txCtx, req.TimesheetID, status, reviewerID, req.Reason); err != nil {
			return err
		}
		row, err = t.TimesheetRepository.GetByID(txCtx, req.TimesheetID)
		return err
	})
	if err != nil {
		return timesheet.RowResponse{}, err
	}

	t.notifyDecision(ctx, row, req.Decision, req.Reason)

	total, err := timesheet.RowTotal(row)
	if err != nil {
		return timesheet.RowResponse{}, err
	}
	return rowResponse(row, total), nil
}

// notifyDecision fans a decision out to the row owner's SSE stream and
// mailbox. Notification failure never fails the review itself.
func (t *TimesheetServiceImpl) notifyDecision(ctx context.Context, row timesheet.TimesheetRow, decision string, reason *string) {
	t.hub.Publish(row.UserID, sse.Event{
		UserID: row.UserID,
		Event:  "timesheet.decision",
		Data: map[string]interface{}{
			"id":           uuid.New().String(),
			"timesheet_id": row.ID,
			"decision":     decision,
		},
	})

	owner, err := t.UserRepository.GetByID(ctx, row.UserID)
	if err != nil {
		slog.Error("failed to load row owner for decision email", "user_id", row.UserID, "error", err)
		return
	}

	weekLabel := weekLabelForRow(row)
	go func() {
		if err := t.email.SendApprovalDecision(owner.Email, owner.Name, weekLabel, decision, reason); err != nil {
			slog.Error("failed to send decision email", "to", owner.Email, "error", err)
		}
	}()
}

func weekLabelForRow(row timesheet.TimesheetRow) string {
	if len(row.Cells) == 0 {
		return "recent week"
	}
	first := row.Cells[0].Date
	last := row.Cells[len(row.Cells)-1].Date
	return fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
}

// FlagOverdue implements timesheet.TimesheetService. Looks at the week
// right before the current one and reminds every user who saved rows
// there without submitting them.
func (t *TimesheetServiceImpl) FlagOverdue(ctx context.Context) error {
	catalog, err := t.WeekWindowRepository.ListWindows(ctx)
	if err != nil {
		return fmt.Errorf("failed to list week windows: %w", err)
	}
	if len(catalog) == 0 {
		return nil
	}

	today := calendar.Midnight(time.Now())
	idx := calendar.FindCurrentWeekIndex(catalog, today)
	if idx <= 0 {
		return nil
	}
	window := catalog[idx-1]

	rows, _, err := t.TimesheetRepository.ListByStatus(ctx, timesheet.StatusSaved, window.StartDate, window.EndDate, 1, 1000)
	if err != nil {
		return fmt.Errorf("failed to list saved rows: %w", err)
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.UserID] {
			continue
		}
		seen[row.UserID] = true

		owner, err := t.UserRepository.GetByID(ctx, row.UserID)
		if err != nil {
			slog.Error("failed to load user for overdue reminder", "user_id", row.UserID, "error", err)
			continue
		}
		if err := t.email.SendOverdueReminder(owner.Email, owner.Name, window.Label); err != nil {
			slog.Error("failed to send overdue reminder", "to", owner.Email, "error", err)
		}
	}
	return nil
}

// Dashboard implements timesheet.TimesheetService.
func (t *TimesheetServiceImpl) Dashboard(ctx context.Context) (timesheet.DashboardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timesheet.DashboardResponse{}, err
	}

	today := calendar.Midnight(time.Now())
	window, err := t.resolveWindow(ctx, nil, today)
	if err != nil {
		if errors.Is(err, calendar.ErrEmptyCatalog) {
			return timesheet.DashboardResponse{
				WeekIndex:     -1,
				TotalThisWeek: "0:00",
				PerProject:    map[string]string{},
			}, nil
		}
		return timesheet.DashboardResponse{}, err
	}

	rows, err := t.TimesheetRepository.ListRows(ctx, userID, window.StartDate, window.EndDate)
	if err != nil {
		return timesheet.DashboardResponse{}, fmt.Errorf("failed to list timesheet rows: %w", err)
	}

	perProject := make(map[string]int)
	total := 0
	for _, row := range rows {
		for _, cell := range row.Cells {
			m, err := timefmt.ToMinutes(cell.Hours)
			if err != nil {
				return timesheet.DashboardResponse{}, err
			}
			total += m
			name := row.ProjectID
			if row.ProjectName != nil {
				name = *row.ProjectName
			}
			perProject[name] += m
		}
	}

	pending, err := t.TimesheetRepository.CountByStatus(ctx, userID, timesheet.StatusSubmitted, window.StartDate, window.EndDate)
	if err != nil {
		return timesheet.DashboardResponse{}, fmt.Errorf("failed to count submitted rows: %w", err)
	}

	resp := timesheet.DashboardResponse{
		WeekIndex:       window.Index,
		TotalThisWeek:   timefmt.FromMinutes(total),
		PerProject:      make(map[string]string, len(perProject)),
		PendingApproval: pending,
		OverallStatus:   string(timesheet.ReduceStatus(rows)),
	}
	for name, minutes := range perProject {
		resp.PerProject[name] = timefmt.FromMinutes(minutes)
	}
	return resp, nil
}
