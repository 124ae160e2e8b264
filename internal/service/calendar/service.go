package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	calendar.WeekWindowRepository
	calendar.HolidayRepository
}

func NewCalendarService(weekWindowRepo calendar.WeekWindowRepository, holidayRepo calendar.HolidayRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		WeekWindowRepository: weekWindowRepo,
		HolidayRepository:    holidayRepo,
	}
}

// GetWeekCatalog implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetWeekCatalog(ctx context.Context, req calendar.WeekCatalogRequest) (calendar.WeekCatalogResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.WeekCatalogResponse{}, err
	}

	catalog, err := s.WeekWindowRepository.ListWindows(ctx)
	if err != nil {
		return calendar.WeekCatalogResponse{}, fmt.Errorf("failed to list week windows: %w", err)
	}
	if len(catalog) == 0 {
		return calendar.WeekCatalogResponse{}, calendar.ErrEmptyCatalog
	}

	today := req.ReferenceDate()
	mode := calendar.MaskMode(req.Mode)
	if mode == "" {
		mode = calendar.MaskAll
	}

	resp := calendar.WeekCatalogResponse{
		CurrentIndex:     calendar.FindCurrentWeekIndex(catalog, today),
		DisabledMask:     calendar.DisabledMask(catalog, mode, today),
		FutureCutoffMask: calendar.FutureCutoffMask(catalog, today),
	}
	for _, w := range catalog {
		resp.Windows = append(resp.Windows, calendar.NewWeekWindowResponse(w))
	}
	return resp, nil
}

// GetWindow implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetWindow(ctx context.Context, req calendar.WindowRequest) (calendar.WindowResponse, error) {
	catalog, err := s.WeekWindowRepository.ListWindows(ctx)
	if err != nil {
		return calendar.WindowResponse{}, fmt.Errorf("failed to list week windows: %w", err)
	}

	window, err := calendar.ResolveWindow(catalog, req.Index)
	if err != nil {
		return calendar.WindowResponse{}, err
	}

	holidays, err := s.HolidayRepository.ListHolidays(ctx, window.StartDate, window.EndDate)
	if err != nil {
		return calendar.WindowResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	today := calendar.Midnight(time.Now())
	if req.Today != "" {
		if d, err := time.Parse("2006-01-02", req.Today); err == nil {
			today = d
		}
	}

	resp := calendar.WindowResponse{Window: calendar.NewWeekWindowResponse(window)}
	for _, day := range window.Days(holidays, today) {
		resp.Days = append(resp.Days, calendar.WeekDayResponse{
			Weekday:  day.Weekday,
			Date:     day.Date.Format("2006-01-02"),
			Holiday:  day.Holiday,
			Disabled: day.Disabled,
		})
	}
	return resp, nil
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, req calendar.HolidayRangeRequest) (calendar.HolidayListResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayListResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	holidays, err := s.HolidayRepository.ListHolidays(ctx, from, to)
	if err != nil {
		return calendar.HolidayListResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	resp := calendar.HolidayListResponse{Holidays: []calendar.HolidayResponse{}}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, calendar.HolidayResponse{
			ID:   h.ID,
			Name: h.Name,
			Date: h.Date.Format("2006-01-02"),
		})
	}
	return resp, nil
}

// ExtendCatalog implements calendar.CalendarService. Each new window is
// a Sunday..Saturday span appended right after the current last window.
func (s *CalendarServiceImpl) ExtendCatalog(ctx context.Context, horizon int) error {
	last, err := s.WeekWindowRepository.LastWindow(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last week window: %w", err)
	}

	target := calendar.Midnight(time.Now()).AddDate(0, 0, 7*horizon)
	start := calendar.Midnight(last.EndDate).AddDate(0, 0, 1)

	for start.Before(target) {
		end := start.AddDate(0, 0, 6)
		window := calendar.WeekWindow{
			Label:     fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006")),
			StartDate: start,
			EndDate:   end,
		}
		if _, err := s.WeekWindowRepository.CreateWindow(ctx, window); err != nil {
			return fmt.Errorf("failed to create week window: %w", err)
		}
		start = end.AddDate(0, 0, 1)
	}
	return nil
}
