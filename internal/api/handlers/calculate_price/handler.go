package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GroupBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-GroupBookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidQuantity   = "параметр quantity обязателен и должен быть положительным числом"
	msgInvalidBasePrice  = "некорректная базовая цена"
	msgInvalidMode       = "неизвестный режим ценообразования, ожидается per_person, flat_rate или tiered"
	msgInvalidInput      = "некорректные параметры расчета цены"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/price
// Query params: quantity (required), basePrice, mode (optional, переопределяют настройки ресурса)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathID(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/price - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	quantity, err := handlers.QueryInt(r, "quantity")
	if err != nil || quantity < 1 {
		h.logger.Warn("GET /resources/{id}/price - Invalid quantity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuantity)
		return
	}

	req := &calculatePrice.Request{ResourceID: resourceID, Quantity: quantity}

	if raw := r.URL.Query().Get("basePrice"); raw != "" {
		basePrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || !domain.IsValidAmount(basePrice) {
			h.logger.Warn("GET /resources/{id}/price - Invalid base price %q", raw)
			handlers.RespondBadRequest(w, msgInvalidBasePrice)
			return
		}
		req.BasePrice = &basePrice
	}

	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode := domain.PricingMode(raw)
		if !mode.IsValid() {
			h.logger.Warn("GET /resources/{id}/price - Invalid mode %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMode)
			return
		}
		req.Mode = &mode
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/{id}/price - Failed to calculate price: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/price - resource_id=%d, quantity=%d, total=%s, cached=%t",
		resourceID, quantity, result.TotalFormatted, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
