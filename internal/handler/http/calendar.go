package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workfriar/timesheet-backend-go/internal/domain/calendar"
	"github.com/workfriar/timesheet-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	WeekCatalog(w http.ResponseWriter, r *http.Request)
	Window(w http.ResponseWriter, r *http.Request)
	Holidays(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// WeekCatalog returns every week window plus the current index and the
// navigation masks for the requested view mode.
func (h *CalendarHandlerImpl) WeekCatalog(w http.ResponseWriter, r *http.Request) {
	req := calendar.WeekCatalogRequest{
		Mode:  r.URL.Query().Get("mode"),
		Today: r.URL.Query().Get("today"),
	}

	resp, err := h.calendarService.GetWeekCatalog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Window returns one week window expanded into day slots.
func (h *CalendarHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.BadRequest(w, "index must be an integer", nil)
		return
	}

	req := calendar.WindowRequest{
		Index: index,
		Today: r.URL.Query().Get("today"),
	}

	resp, err := h.calendarService.GetWindow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Holidays returns holidays within a date range.
func (h *CalendarHandlerImpl) Holidays(w http.ResponseWriter, r *http.Request) {
	req := calendar.HolidayRangeRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	resp, err := h.calendarService.ListHolidays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
