package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/database"
)

type weekWindowRepositoryImpl struct {
	db *database.DB
}

func NewWeekWindowRepository(db *database.DB) calendar.WeekWindowRepository {
	return &weekWindowRepositoryImpl{db: db}
}

// ListWindows implements calendar.WeekWindowRepository. Index is the
// catalog position, assigned from the start-date ordering.
func (r *weekWindowRepositoryImpl) ListWindows(ctx context.Context) ([]calendar.WeekWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, start_date, end_date
		FROM week_windows
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []calendar.WeekWindow
	for rows.Next() {
		var w calendar.WeekWindow
		if err := rows.Scan(&w.ID, &w.Label, &w.StartDate, &w.EndDate); err != nil {
			return nil, err
		}
		w.Index = len(windows)
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// GetWindowByDate implements calendar.WeekWindowRepository.
func (r *weekWindowRepositoryImpl) GetWindowByDate(ctx context.Context, date time.Time) (calendar.WeekWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, start_date, end_date,
			   (SELECT COUNT(*) FROM week_windows w2 WHERE w2.start_date < w.start_date) AS idx
		FROM week_windows w
		WHERE start_date <= $1 AND end_date >= $1
		LIMIT 1
	`

	var w calendar.WeekWindow
	err := q.QueryRow(ctx, query, calendar.Midnight(date)).Scan(&w.ID, &w.Label, &w.StartDate, &w.EndDate, &w.Index)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.WeekWindow{}, calendar.ErrWindowNotFound
		}
		return calendar.WeekWindow{}, err
	}
	return w, nil
}

// CreateWindow implements calendar.WeekWindowRepository.
func (r *weekWindowRepositoryImpl) CreateWindow(ctx context.Context, window calendar.WeekWindow) (calendar.WeekWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO week_windows (label, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, window.Label, window.StartDate, window.EndDate).Scan(&window.ID)
	if err != nil {
		return calendar.WeekWindow{}, err
	}
	return window, nil
}

// LastWindow implements calendar.WeekWindowRepository.
func (r *weekWindowRepositoryImpl) LastWindow(ctx context.Context) (calendar.WeekWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, start_date, end_date
		FROM week_windows
		ORDER BY start_date DESC
		LIMIT 1
	`

	var w calendar.WeekWindow
	err := q.QueryRow(ctx, query).Scan(&w.ID, &w.Label, &w.StartDate, &w.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.WeekWindow{}, calendar.ErrEmptyCatalog
		}
		return calendar.WeekWindow{}, err
	}
	return w, nil
}
