package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/announcement"
	"github.com/hadirhq/hadir-backend-go/internal/domain/attendance"
	"github.com/hadirhq/hadir-backend-go/internal/domain/dashboard"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	listCalls int
	getCalls  int
}

func (s *stubAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	s.listCalls++
	return attendance.ListAttendanceResponse{}, nil
}

func (s *stubAttendanceService) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	s.getCalls++
	return attendance.AttendanceResponse{}, nil
}

type stubAnnouncementService struct{}

func (stubAnnouncementService) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	return announcement.AnnouncementResponse{}, nil
}

func (stubAnnouncementService) Get(ctx context.Context, id string) (announcement.AnnouncementResponse, error) {
	return announcement.AnnouncementResponse{}, nil
}

func (stubAnnouncementService) ListPublished(ctx context.Context, limit int) ([]announcement.AnnouncementResponse, error) {
	return nil, nil
}

func (stubAnnouncementService) Update(ctx context.Context, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	return announcement.AnnouncementResponse{}, nil
}

func (stubAnnouncementService) Delete(ctx context.Context, id string) error {
	return nil
}

type stubDashboardService struct{}

func (stubDashboardService) UpcomingBirthdays(ctx context.Context, days int) (dashboard.BirthdayRemindersResponse, error) {
	return dashboard.BirthdayRemindersResponse{}, nil
}

func newTestRouter(attendanceSvc *stubAttendanceService) (http.Handler, jwt.Service) {
	jwtSvc := jwt.NewJWTService("router-test-secret")
	router := NewRouter(
		jwtSvc,
		NewAttendanceHandler(attendanceSvc),
		NewAnnouncementHandler(stubAnnouncementService{}),
		NewDashboardHandler(stubDashboardService{}),
		NewCronHandler(&fakeReconciler{}, "cron-secret", true),
		"test",
	)
	return router, jwtSvc
}

func mintToken(t *testing.T, jwtSvc jwt.Service, role string) string {
	t.Helper()
	token, err := jwtSvc.GenerateAccessToken("user-1", role, time.Minute)
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_MissingTokenRejected(t *testing.T) {
	attendanceSvc := &stubAttendanceService{}
	router, _ := newTestRouter(attendanceSvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendances", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, attendanceSvc.listCalls)
}

func TestRouter_EmployeeRoleForbiddenFromAttendances(t *testing.T) {
	attendanceSvc := &stubAttendanceService{}
	router, jwtSvc := newTestRouter(attendanceSvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendances", mintToken(t, jwtSvc, "employee"), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, attendanceSvc.listCalls)
}

func TestRouter_AdminCanListAttendances(t *testing.T) {
	attendanceSvc := &stubAttendanceService{}
	router, jwtSvc := newTestRouter(attendanceSvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendances", mintToken(t, jwtSvc, "admin"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, attendanceSvc.listCalls)
}

func TestRouter_HRCanCreateAnnouncements(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{})

	body := strings.NewReader(`{"title":"Maintenance","body":"Window at 02:00 UTC"}`)
	rec := doRequest(router, http.MethodPost, "/api/v1/announcements", mintToken(t, jwtSvc, "hr"), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_EmployeeCannotCreateAnnouncements(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{})

	body := strings.NewReader(`{"title":"Maintenance","body":"Window at 02:00 UTC"}`)
	rec := doRequest(router, http.MethodPost, "/api/v1/announcements", mintToken(t, jwtSvc, "employee"), body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_EmployeeCanReadAnnouncements(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{})

	rec := doRequest(router, http.MethodGet, "/api/v1/announcements", mintToken(t, jwtSvc, "employee"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MalformedAttendanceIDRejected(t *testing.T) {
	attendanceSvc := &stubAttendanceService{}
	router, jwtSvc := newTestRouter(attendanceSvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/attendances/not-a-uuid", mintToken(t, jwtSvc, "admin"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, attendanceSvc.getCalls, "the service must not see a malformed id")
}

func TestRouter_MalformedAnnouncementIDRejected(t *testing.T) {
	router, jwtSvc := newTestRouter(&stubAttendanceService{})

	rec := doRequest(router, http.MethodDelete, "/api/v1/announcements/42", mintToken(t, jwtSvc, "hr"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
