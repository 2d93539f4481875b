package update_resource

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/resources"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidResource    = "некорректные настройки ресурса"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/resources/{resourceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("PUT /resources/{id} - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req UpdateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(resourceID))
	if err != nil {
		if errors.Is(err, resources.ErrInvalidInput) {
			h.logger.Warn("PUT /resources/{id} - Invalid resource: %v", err)
			detail := strings.TrimPrefix(err.Error(), resources.ErrInvalidInput.Error()+": ")
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidResource+": "+detail)
			return
		}
		h.logger.Error("PUT /resources/{id} - Failed to save resource: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /resources/{id} - Resource saved: resource_id=%d", resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
