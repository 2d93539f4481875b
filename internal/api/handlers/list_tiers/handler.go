package list_tiers

import (
	"net/http"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
)

const msgInvalidResourceID = "некорректный ID ресурса"

type Handler struct {
	service TierService
	logger  Logger
}

func NewHandler(service TierService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/tiers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/tiers - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	result, err := h.service.List(r.Context(), resourceID)
	if err != nil {
		h.logger.Error("GET /resources/{id}/tiers - Failed to list tiers: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/{id}/tiers - resource_id=%d, tiers_count=%d", resourceID, len(result.Tiers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
