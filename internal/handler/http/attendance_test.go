package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chulcheck/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	submitErr  error
	lastSubmit attendance.SubmitRequest
	verifyErr  error
	deleteReq  attendance.DeleteDayRequest
	summaries  []attendance.DaySummary
}

func (s *fakeAttendanceService) MintLink(ctx context.Context, action string) (attendance.LinkResponse, error) {
	if action != "in" && action != "out" {
		return attendance.LinkResponse{}, attendance.ErrInvalidAction
	}
	return attendance.LinkResponse{URL: "http://localhost:3000/checkin?action=" + action + "&token=abc"}, nil
}

func (s *fakeAttendanceService) Verify(ctx context.Context, req attendance.VerifyRequest) error {
	return s.verifyErr
}

func (s *fakeAttendanceService) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	s.lastSubmit = req
	if s.submitErr != nil {
		return attendance.SubmitResponse{}, s.submitErr
	}
	return attendance.SubmitResponse{Message: "Check-in recorded."}, nil
}

func (s *fakeAttendanceService) ListDay(ctx context.Context, date string, limit int) ([]attendance.DaySummary, error) {
	return s.summaries, nil
}

func (s *fakeAttendanceService) DeleteDay(ctx context.Context, req attendance.DeleteDayRequest) error {
	s.deleteReq = req
	return nil
}

func TestAttendanceHandler_MintLink(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{}, nil)

	rec := httptest.NewRecorder()
	handler.MintLink(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance/link?action=in", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "checkin?action=in")

	rec = httptest.NewRecorder()
	handler.MintLink(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance/link?action=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Verify_InvalidToken(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{verifyErr: attendance.ErrInvalidToken}, nil)

	body := strings.NewReader(`{"action":"in","token":"stale"}`)
	rec := httptest.NewRecorder()
	handler.Verify(rec, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/verify", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not valid for today")
}

func TestAttendanceHandler_Submit_AttachesClientMetadata(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc, nil)

	body := strings.NewReader(`{"action":"in","token":"abc","name":"Kim Minji","phone":"010-1234-5678"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/submit", body)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "kiosk/1.0")

	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", svc.lastSubmit.IP)
	assert.Equal(t, "kiosk/1.0", svc.lastSubmit.UserAgent)
	assert.Contains(t, rec.Body.String(), "Check-in recorded.")
}

func TestAttendanceHandler_Submit_MalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{}, nil)

	rec := httptest.NewRecorder()
	handler.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/submit", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_ListDay_RequiresDate(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{}, nil)

	rec := httptest.NewRecorder()
	handler.ListDay(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=not-a-date", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.ListDay(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=2025-03-15&limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	handler.ListDay(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=2025-03-15", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sessions")
}

func TestAttendanceHandler_DeleteDay(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc, nil)

	rec := httptest.NewRecorder()
	handler.DeleteDay(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/attendance?employee_id=emp-1&date=2025-03-15", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", svc.deleteReq.EmployeeID)
	assert.Equal(t, "2025-03-15", svc.deleteReq.Date)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, "198.51.100.1", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, req.RemoteAddr, clientIP(req))
}
