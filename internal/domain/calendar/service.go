package calendar

import (
	"context"
)

// CalendarService defines business logic for week window navigation.
type CalendarService interface {
	// GetWeekCatalog returns the catalog together with the current week
	// index and the navigation masks for the requested mode.
	GetWeekCatalog(ctx context.Context, req WeekCatalogRequest) (WeekCatalogResponse, error)

	// GetWindow resolves one window by index, expanded into day slots
	// with holiday flags applied.
	GetWindow(ctx context.Context, req WindowRequest) (WindowResponse, error)

	// ListHolidays returns holidays within a date range.
	ListHolidays(ctx context.Context, req HolidayRangeRequest) (HolidayListResponse, error)

	// ExtendCatalog appends week windows until the catalog covers at
	// least horizon weeks past today. Run from the scheduler.
	ExtendCatalog(ctx context.Context, horizon int) error
}
