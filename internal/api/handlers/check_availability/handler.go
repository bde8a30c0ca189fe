package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidAssigneeID = "некорректный ID исполнителя"
	msgInvalidStart      = "некорректное начало интервала, ожидается RFC3339"
	msgInvalidEnd        = "некорректный конец интервала, ожидается RFC3339"
	msgResourceNotFound  = "ресурс не найден"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/availability
// Query params: start, end (required, RFC3339), assigneeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}

	req := &checkAvailability.Request{
		ResourceID: resourceID,
		Start:      start,
		End:        end,
	}

	if v := query.Get("assigneeId"); v != "" {
		req.AssigneeID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /resources/{id}/availability - Invalid assignee ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssigneeID)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/availability - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/availability - Invalid input: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to check availability: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - Checked: resource_id=%d, available=%t",
		resourceID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
