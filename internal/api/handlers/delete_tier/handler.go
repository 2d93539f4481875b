package delete_tier

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers"
)

const (
	msgInvalidTierID = "некорректный ID ценового уровня"
	msgNotFound      = "ценовой уровень не найден"
)

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

// Handle DELETE /api/v1/tiers/{tierId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tierID, err := handlers.PathID(r, "tierId")
	if err != nil {
		h.logger.Warn("DELETE /tiers/{id} - Invalid tier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTierID)
		return
	}

	if err := h.service.Delete(r.Context(), tierID); err != nil {
		switch {
		case errors.Is(err, tiers.ErrTierNotFound):
			h.logger.Warn("DELETE /tiers/{id} - Tier not found: tier_id=%d", tierID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tiers/{id} - Failed to delete tier: tier_id=%d, error=%v", tierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tiers/{id} - Tier deleted: tier_id=%d", tierID)
	w.WriteHeader(http.StatusNoContent)
}
