package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/domain/timesheet"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/database"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// ListRows implements timesheet.TimesheetRepository. Rows come back in
// creation order with their day entries inside [from, to] attached.
func (r *timesheetRepositoryImpl) ListRows(ctx context.Context, userID string, from, to time.Time) ([]timesheet.TimesheetRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.project_id, t.category_id, t.task_detail, t.status,
			   t.created_at, t.updated_at, p.name, c.name
		FROM timesheets t
		JOIN projects p ON p.id = t.project_id
		JOIN task_categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND EXISTS (
			SELECT 1 FROM timesheet_entries e
			WHERE e.timesheet_id = t.id AND e.date >= $2 AND e.date <= $3
		  )
		ORDER BY t.created_at
	`

	rows, err := q.Query(ctx, query, userID, calendar.Midnight(from), calendar.Midnight(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []timesheet.TimesheetRow
	for rows.Next() {
		var row timesheet.TimesheetRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.ProjectID, &row.CategoryID, &row.TaskDetail,
			&row.Status, &row.CreatedAt, &row.UpdatedAt, &row.ProjectName, &row.CategoryName,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		entries, err := r.listEntries(ctx, result[i].ID, from, to)
		if err != nil {
			return nil, err
		}
		result[i].Cells = cellsFromEntries(entries)
	}
	return result, nil
}

type storedEntry struct {
	date    time.Time
	minutes int
	holiday bool
}

func (r *timesheetRepositoryImpl) listEntries(ctx context.Context, timesheetID string, from, to time.Time) ([]storedEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, duration_minutes, holiday
		FROM timesheet_entries
		WHERE timesheet_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, timesheetID, calendar.Midnight(from), calendar.Midnight(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []storedEntry
	for rows.Next() {
		var e storedEntry
		if err := rows.Scan(&e.date, &e.minutes, &e.holiday); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func cellsFromEntries(entries []storedEntry) []timesheet.DayCell {
	cells := make([]timesheet.DayCell, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, timesheet.DayCell{
			Weekday: e.date.Weekday().String(),
			Date:    e.date,
			Hours:   timefmt.ToHHMM(e.minutes),
			Holiday: e.holiday,
		})
	}
	return cells
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimesheetRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.project_id, t.category_id, t.task_detail, t.status,
			   t.created_at, t.updated_at, p.name, c.name
		FROM timesheets t
		JOIN projects p ON p.id = t.project_id
		JOIN task_categories c ON c.id = t.category_id
		WHERE t.id = $1
	`

	var row timesheet.TimesheetRow
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.UserID, &row.ProjectID, &row.CategoryID, &row.TaskDetail,
		&row.Status, &row.CreatedAt, &row.UpdatedAt, &row.ProjectName, &row.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimesheetRow{}, timesheet.ErrRowNotFound
		}
		return timesheet.TimesheetRow{}, err
	}

	entries, err := r.listEntries(ctx, row.ID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return timesheet.TimesheetRow{}, err
	}
	row.Cells = cellsFromEntries(entries)
	return row, nil
}

// Upsert implements timesheet.TimesheetRepository. Entries are replaced
// wholesale: the payload is the source of truth for the row's week.
func (r *timesheetRepositoryImpl) Upsert(ctx context.Context, row timesheet.TimesheetRow) (timesheet.TimesheetRow, error) {
	q := GetQuerier(ctx, r.db)

	if row.ID == "" {
		query := `
			INSERT INTO timesheets (user_id, project_id, category_id, task_detail, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			row.UserID, row.ProjectID, row.CategoryID, row.TaskDetail, row.Status,
		).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
		if err != nil {
			return timesheet.TimesheetRow{}, fmt.Errorf("insert timesheet row: %w", err)
		}
	} else {
		query := `
			UPDATE timesheets
			SET project_id = $1, category_id = $2, task_detail = $3, status = $4, updated_at = NOW()
			WHERE id = $5 AND user_id = $6
		`
		tag, err := q.Exec(ctx, query,
			row.ProjectID, row.CategoryID, row.TaskDetail, row.Status, row.ID, row.UserID,
		)
		if err != nil {
			return timesheet.TimesheetRow{}, fmt.Errorf("update timesheet row: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return timesheet.TimesheetRow{}, timesheet.ErrRowNotFound
		}

		if _, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE timesheet_id = $1`, row.ID); err != nil {
			return timesheet.TimesheetRow{}, fmt.Errorf("clear timesheet entries: %w", err)
		}
	}

	for _, cell := range row.Cells {
		minutes, err := timefmt.ToMinutes(cell.Hours)
		if err != nil {
			return timesheet.TimesheetRow{}, fmt.Errorf("cell %s: %w", cell.Date.Format("2006-01-02"), err)
		}
		_, err = q.Exec(ctx, `
			INSERT INTO timesheet_entries (timesheet_id, date, duration_minutes, holiday)
			VALUES ($1, $2, $3, $4)
		`, row.ID, calendar.Midnight(cell.Date), minutes, cell.Holiday)
		if err != nil {
			return timesheet.TimesheetRow{}, fmt.Errorf("insert timesheet entry: %w", err)
		}
	}

	return row, nil
}

// UpdateStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateStatus(ctx context.Context, ids []string, status timesheet.RowStatus) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `UPDATE timesheets SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	_, err := q.Exec(ctx, query, status, ids)
	return err
}

// SetDecision implements timesheet.TimesheetRepository. Only submitted
// rows can receive a decision; anything else reports the lifecycle
// violation to the caller.
func (r *timesheetRepositoryImpl) SetDecision(ctx context.Context, id string, status timesheet.RowStatus, reviewerID string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = $1, approved_by = $2, approved_at = NOW(), rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`
	tag, err := q.Exec(ctx, query, status, reviewerID, reason, id, timesheet.StatusSubmitted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrNotSubmitted
	}
	return nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE timesheet_id = $1`, id); err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrRowNotFound
	}
	return nil
}

// ListByStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByStatus(ctx context.Context, status timesheet.RowStatus, from, to time.Time, page, limit int) ([]timesheet.TimesheetRow, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `
		SELECT COUNT(*)
		FROM timesheets t
		WHERE t.status = $1
		  AND EXISTS (
			SELECT 1 FROM timesheet_entries e
			WHERE e.timesheet_id = t.id AND e.date >= $2 AND e.date <= $3
		  )
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, status, calendar.Midnight(from), calendar.Midnight(to)).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := `
		SELECT t.id, t.user_id, t.project_id, t.category_id, t.task_detail, t.status,
			   t.created_at, t.updated_at, p.name, c.name
		FROM timesheets t
		JOIN projects p ON p.id = t.project_id
		JOIN task_categories c ON c.id = t.category_id
		WHERE t.status = $1
		  AND EXISTS (
			SELECT 1 FROM timesheet_entries e
			WHERE e.timesheet_id = t.id AND e.date >= $2 AND e.date <= $3
		  )
		ORDER BY t.created_at
		LIMIT $4 OFFSET $5
	`

	rows, err := q.Query(ctx, query, status, calendar.Midnight(from), calendar.Midnight(to), limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []timesheet.TimesheetRow
	for rows.Next() {
		var row timesheet.TimesheetRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.ProjectID, &row.CategoryID, &row.TaskDetail,
			&row.Status, &row.CreatedAt, &row.UpdatedAt, &row.ProjectName, &row.CategoryName,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range result {
		entries, err := r.listEntries(ctx, result[i].ID, from, to)
		if err != nil {
			return nil, 0, err
		}
		result[i].Cells = cellsFromEntries(entries)
	}
	return result, total, nil
}

// CountByStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) CountByStatus(ctx context.Context, userID string, status timesheet.RowStatus, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM timesheets t
		WHERE t.user_id = $1 AND t.status = $2
		  AND EXISTS (
			SELECT 1 FROM timesheet_entries e
			WHERE e.timesheet_id = t.id AND e.date >= $3 AND e.date <= $4
		  )
	`
	var count int
	err := q.QueryRow(ctx, query, userID, status, calendar.Midnight(from), calendar.Midnight(to)).Scan(&count)
	return count, err
}
