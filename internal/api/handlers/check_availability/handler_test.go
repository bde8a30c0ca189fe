package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*checkAvailability.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(uc CheckAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/resources/{resourceId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.ResourceID == 5 && req.Start.Equal(start) && req.End.Equal(end) && req.AssigneeID == 0
	})).Return(&checkAvailability.Response{
		ResourceID:     5,
		Start:          start,
		End:            end,
		BufferedStart:  start.Add(-10 * time.Minute),
		BufferedEnd:    end,
		Overlapping:    1,
		Capacity:       2,
		AvailableSpots: 1,
		Available:      true,
	}, nil)

	rec := serve(uc, "/api/v1/resources/5/availability?start=2026-03-02T09:00:00Z&end=2026-03-02T09:30:00Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, "2026-03-02T08:50:00Z", body.BufferedStart)
	assert.Equal(t, 1, body.AvailableSpots)
	assert.Nil(t, body.AssigneeID)
}

func TestHandler_Errors(t *testing.T) {
	const valid = "?start=2026-03-02T09:00:00Z&end=2026-03-02T09:30:00Z"

	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{name: "bad resource id", target: "/api/v1/resources/x/availability" + valid, wantStatus: http.StatusBadRequest},
		{name: "missing start", target: "/api/v1/resources/5/availability?end=2026-03-02T09:30:00Z", wantStatus: http.StatusBadRequest},
		{name: "bad end", target: "/api/v1/resources/5/availability?start=2026-03-02T09:00:00Z&end=09:30", wantStatus: http.StatusBadRequest},
		{name: "bad assignee", target: "/api/v1/resources/5/availability" + valid + "&assigneeId=me", wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/resources/5/availability" + valid, ucErr: checkAvailability.ErrResourceNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", target: "/api/v1/resources/5/availability" + valid, ucErr: checkAvailability.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/resources/5/availability" + valid, ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			assert.Equal(t, tt.wantStatus, serve(uc, tt.target).Code)
		})
	}
}
