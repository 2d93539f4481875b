package get_slot_occupants

import (
	"net/http"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingSlot       = "параметры date и time обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/occupants
// Query params: date (YYYY-MM-DD), time (HH:MM), оба обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/occupants - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
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

	if date == nil || slotTime == nil {
		handlers.RespondBadRequest(w, msgMissingSlot)
		return
	}

	occupants, err := h.service.GetSlotOccupants(r.Context(), resourceID, *date, *slotTime)
	if err != nil {
		h.logger.Error("GET /resources/{id}/occupants - Failed to get occupants: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/{id}/occupants - resource_id=%d, occupants_count=%d", resourceID, len(occupants))
	handlers.RespondJSON(w, http.StatusOK, FromDomainOccupants(resourceID, *date, *slotTime, occupants))
}
