package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-GroupBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidQuantity   = "параметр quantity обязателен и должен быть положительным числом"
	msgMissingRange      = "параметры from и to обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
	msgRangeTooLong      = "период не должен превышать 31 день"
	msgResourceNotFound  = "расписание ресурса не найдено"
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
// Query params: quantity (required), from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	quantity, err := handlers.QueryInt(r, "quantity")
	if err != nil || quantity < 1 {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid quantity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuantity)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from == nil || to == nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Missing date range: resource_id=%d", resourceID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ResourceID: resourceID,
		Quantity:   quantity,
		From:       *from,
		To:         *to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRangeTooLong):
			h.logger.Warn("GET /resources/{id}/available-slots - Range too long: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/available-slots - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /resources/{id}/available-slots - Failed to get slots: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/available-slots - Slots retrieved successfully: resource_id=%d, quantity=%d, slots_count=%d",
		resourceID, quantity, result.Days.SlotCount())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
