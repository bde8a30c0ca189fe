package update_booking_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(svc ReservationService, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body)))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "updated", target: "/api/v1/bookings/7/status", body: `{"status":"completed"}`, wantStatus: http.StatusOK},
		{name: "bad id", target: "/api/v1/bookings/x/status", body: `{"status":"completed"}`, wantStatus: http.StatusBadRequest},
		{name: "empty body", target: "/api/v1/bookings/7/status", body: ``, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/bookings/7/status", body: `{"status":"completed"}`, svcErr: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown status", target: "/api/v1/bookings/7/status", body: `{"status":"lost"}`, svcErr: reservations.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "bad transition", target: "/api/v1/bookings/7/status", body: `{"status":"pending"}`, svcErr: reservations.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "internal", target: "/api/v1/bookings/7/status", body: `{"status":"completed"}`, svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(tt.svcErr)

			assert.Equal(t, tt.wantStatus, serve(svc, tt.target, tt.body).Code)
		})
	}
}
