package calendar

import (
	"time"

	"github.com/workfriar/timesheet-backend-go/internal/pkg/validator"
)

type WeekCatalogRequest struct {
	Mode  string `json:"mode"`
	Today string `json:"today,omitempty"`
}

func (r *WeekCatalogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mode != "" && r.Mode != string(MaskAll) && r.Mode != string(MaskPastDue) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: all, pastDue",
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

// ReferenceDate resolves the request's reference day, defaulting to the
// system clock truncated to midnight local time.
func (r *WeekCatalogRequest) ReferenceDate() time.Time {
	if r.Today != "" {
		if d, ok := validator.IsValidDate(r.Today); ok {
			return d
		}
	}
	return Midnight(time.Now())
}

type WindowRequest struct {
	Index int    `json:"index"`
	Today string `json:"today,omitempty"`
}

type WeekWindowResponse struct {
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Index     int    `json:"index"`
}

type WeekCatalogResponse struct {
	Windows          []WeekWindowResponse `json:"windows"`
	CurrentIndex     int                  `json:"current_index"`
	DisabledMask     []bool               `json:"disabled_mask"`
	FutureCutoffMask []bool               `json:"future_cutoff_mask"`
}

type WeekDayResponse struct {
	Weekday  string `json:"weekday"`
	Date     string `json:"date"`
	Holiday  bool   `json:"holiday"`
	Disabled bool   `json:"disabled"`
}

type WindowResponse struct {
	Window WeekWindowResponse `json:"window"`
	Days   []WeekDayResponse  `json:"days"`
}

type HolidayRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *HolidayRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid date (YYYY-MM-DD)",
		})
	}
	to, okTo := validator.IsValidDate(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid date (YYYY-MM-DD)",
		})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// NewWeekWindowResponse converts an entity to its response shape.
func NewWeekWindowResponse(w WeekWindow) WeekWindowResponse {
	return WeekWindowResponse{
		Label:     w.Label,
		StartDate: w.StartDate.Format("2006-01-02"),
		EndDate:   w.EndDate.Format("2006-01-02"),
		Index:     w.Index,
	}
}
