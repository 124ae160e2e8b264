package calendar

import (
	"context"
	"time"
)

// WeekWindowRepository defines data access for the week window catalog.
type WeekWindowRepository interface {
	// ListWindows returns the full catalog ordered by start date, with
	// Index assigned from catalog position.
	ListWindows(ctx context.Context) ([]WeekWindow, error)

	// GetWindowByDate returns the window containing the given date.
	GetWindowByDate(ctx context.Context, date time.Time) (WeekWindow, error)

	// CreateWindow appends a window to the catalog. Used by the catalog
	// extension job.
	CreateWindow(ctx context.Context, window WeekWindow) (WeekWindow, error)

	// LastWindow returns the catalog's final window.
	LastWindow(ctx context.Context) (WeekWindow, error)
}

// HolidayRepository defines data access for the holiday calendar.
type HolidayRepository interface {
	// ListHolidays returns holidays falling within [from, to], ordered
	// by date.
	ListHolidays(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// Create adds a holiday to the calendar.
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
}
