package cancel_booking

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

func (m *mockService) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(svc ReservationService, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body)))
	return rec
}

func TestHandler_Cancelled(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, int64(7), &models.CancelReservationRequest{CancellationReason: "sick"}).Return(nil)

	rec := serve(svc, "/api/v1/bookings/7/cancel", `{"cancellationReason":"sick"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_EmptyBody(t *testing.T) {
	svc := new(mockService)
	svc.On("Cancel", mock.Anything, int64(7), &models.CancelReservationRequest{}).Return(nil)

	assert.Equal(t, http.StatusOK, serve(svc, "/api/v1/bookings/7/cancel", "").Code)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "bad id", target: "/api/v1/bookings/x/cancel", wantStatus: http.StatusBadRequest},
		{name: "bad body", target: "/api/v1/bookings/7/cancel", body: `{"reason":`, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/bookings/7/cancel", svcErr: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "already cancelled", target: "/api/v1/bookings/7/cancel", svcErr: reservations.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "reason too long", target: "/api/v1/bookings/7/cancel", svcErr: reservations.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/bookings/7/cancel", svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Cancel", mock.Anything, mock.Anything, mock.Anything).Return(tt.svcErr)

			assert.Equal(t, tt.wantStatus, serve(svc, tt.target, tt.body).Code)
		})
	}
}
