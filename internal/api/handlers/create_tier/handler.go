package create_tier

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTier        = "некорректные параметры ценового уровня"
	msgResourceNotFound   = "ресурс не найден"
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

// Handle POST /api/v1/resources/{resourceId}/tiers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("POST /resources/{id}/tiers - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req models.CreateTierRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/{id}/tiers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Ресурс берется из пути, значение из тела игнорируется
	req.ResourceID = resourceID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tiers.ErrInvalidInput):
			h.logger.Warn("POST /resources/{id}/tiers - Invalid tier: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidTier+": "+validationDetail(err))

		case errors.Is(err, tiers.ErrResourceNotFound):
			h.logger.Warn("POST /resources/{id}/tiers - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("POST /resources/{id}/tiers - Failed to create tier: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/{id}/tiers - Tier created: tier_id=%d, resource_id=%d", result.ID, resourceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// validationDetail отрезает префикс sentinel-ошибки, оставляя описание поля
func validationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), tiers.ErrInvalidInput.Error()+": ")
}
