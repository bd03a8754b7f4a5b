package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/chulcheck/attendance-backend-go/internal/handler/http/response"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/sse"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	MintLink(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ListDay(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	feed              *sse.Hub
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, feed *sse.Hub) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		feed:              feed,
	}
}

// MintLink implements AttendanceHandler.
func (h *attendanceHandlerImpl) MintLink(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	result, err := h.attendanceService.MintLink(r.Context(), action)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Verify implements AttendanceHandler.
func (h *attendanceHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req attendance.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode verify request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Verify(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Token verified", nil)
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode submit request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.IP = clientIP(r)
	req.UserAgent = r.UserAgent()

	result, err := h.attendanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, nil)
}

// ListDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	sessions, err := h.attendanceService.ListDay(r.Context(), date, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"sessions": sessions})
}

// DeleteDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	req := attendance.DeleteDayRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	if err := h.attendanceService.DeleteDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records deleted", nil)
}

// Stream implements AttendanceHandler. Streams live submissions to an admin
// client over SSE until the client disconnects.
func (h *attendanceHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.feed.Subscribe()
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("Failed to marshal feed event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		}
	}
}

// clientIP extracts the submitting client's address, preferring proxy
// headers over the socket peer.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
