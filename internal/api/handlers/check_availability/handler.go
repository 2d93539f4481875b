package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-GroupBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidQuantity   = "параметр quantity обязателен и должен быть положительным числом"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput      = "дата и время слота передаются вместе"
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
// Query params: quantity (required), date + time (optional, YYYY-MM-DD / HH:MM)
// Группа, не проходящая по ограничениям ресурса, получает 200 с available=false и причиной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	quantity, err := handlers.QueryInt(r, "quantity")
	if err != nil || quantity < 1 {
		h.logger.Warn("GET /resources/{id}/availability - Invalid quantity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuantity)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := handlers.QueryTime(r, "time")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		ResourceID: resourceID,
		Quantity:   quantity,
		Date:       date,
		Time:       slotTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to check availability: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - resource_id=%d, quantity=%d, available=%t, reason=%s",
		resourceID, quantity, result.Available, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
