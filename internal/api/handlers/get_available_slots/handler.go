package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidAssigneeID = "некорректный ID исполнителя"
	msgInvalidDuration   = "некорректная длительность"
	msgMissingDate       = "дата обязательна"
	msgResourceNotFound  = "ресурс не найден"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/available-slots
// Query params: date (required, YYYY-MM-DD), assigneeId (optional), durationMinutes (optional)
// Некорректная по формату дата дает пустой список слотов, а не ошибку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	// Извлекаем resourceId из URL
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Извлекаем date из query параметров
	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /resources/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &getAvailableSlots.Request{
		ResourceID: resourceID,
		Date:       date,
	}

	if v := query.Get("assigneeId"); v != "" {
		req.AssigneeID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid assignee ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssigneeID)
			return
		}
	}

	if v := query.Get("durationMinutes"); v != "" {
		req.DurationMinutes, err = strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/available-slots - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid input: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/{id}/available-slots - Failed to get slots: resource_id=%d, date=%s, error=%v",
				resourceID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/available-slots - Slots retrieved successfully: resource_id=%d, date=%s, slots_count=%d",
		resourceID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
