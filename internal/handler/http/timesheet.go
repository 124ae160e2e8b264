package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workfriar/timesheet-backend-go/internal/domain/timesheet"
	"github.com/workfriar/timesheet-backend-go/internal/handler/http/response"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/jwt"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/sse"
)

type TimesheetHandler interface {
	WeekView(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	DeleteRow(w http.ResponseWriter, r *http.Request)
	ApprovalList(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	jwtService       jwt.Service
	hub              *sse.Hub
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, jwtService jwt.Service, hub *sse.Hub) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		jwtService:       jwtService,
		hub:              hub,
	}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// WeekView returns the signed-in user's rows for one week window,
// aligned onto the week grid with the derived totals.
func (h *TimesheetHandlerImpl) WeekView(w http.ResponseWriter, r *http.Request) {
	req := timesheet.WeekViewRequest{
		View:  r.URL.Query().Get("view"),
		Today: r.URL.Query().Get("today"),
	}
	if raw := r.URL.Query().Get("week_index"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "week_index must be an integer", nil)
			return
		}
		req.WeekIndex = &idx
	}

	resp, err := h.timesheetService.GetWeekView(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Save implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timesheetService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet saved", resp)
}

// Submit implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timesheetService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet submitted", resp)
}

// DeleteRow implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DeleteRow(w http.ResponseWriter, r *http.Request) {
	req := timesheet.DeleteRowRequest{TimesheetID: chi.URLParam(r, "id")}

	if err := h.timesheetService.DeleteRow(r.Context(), req); err != nil {
		slog.Error("DeleteRow service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Timesheet row deleted", nil)
}

// ApprovalList returns the submitted rows awaiting review.
func (h *TimesheetHandlerImpl) ApprovalList(w http.ResponseWriter, r *http.Request) {
	req := timesheet.ApprovalListRequest{
		View:  r.URL.Query().Get("view"),
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}

	resp, err := h.timesheetService.ListForApproval(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((resp.TotalItems + int64(req.Limit) - 1) / int64(req.Limit))
	response.SuccessWithMeta(w, resp, &response.Meta{
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: resp.TotalItems,
		TotalPages: totalPages,
	})
}

// Review records an accept/reject decision on a submitted row.
func (h *TimesheetHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TimesheetID = chi.URLParam(r, "id")

	resp, err := h.timesheetService.Review(r.Context(), req)
	if err != nil {
		slog.Error("Review service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Decision recorded", resp)
}

// Dashboard summarizes the current week for the signed-in user.
func (h *TimesheetHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// SSEToken issues a short-lived token for the notification stream.
func (h *TimesheetHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream handles the SSE connection for real-time decision events.
func (h *TimesheetHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Token travels as a query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
