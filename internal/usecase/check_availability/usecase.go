package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// UseCase use case проверки доступности слота для группы
type UseCase struct {
	resolver     ResourceResolver
	availability SlotAvailability
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver ResourceResolver,
	availability SlotAvailability,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		availability: availability,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
// Ошибки хранилища возвращаются как ErrInternal и никогда не превращаются в "доступно"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: resource=%d, quantity=%d, slot=%t",
		req.ResourceID, req.Quantity, req.HasSlot())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем настройки ресурса (неизвестный ресурс - значения по умолчанию)
	resource, err := uc.resolver.Resource(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to load resource: %v", ErrInternal, err)
	}
	limits := resource.PartySizeLimits(uc.resolver.Defaults())

	// 3. Свободные места: в слоте или вся вместимость, если слот не указан
	maxAvailable := limits.Capacity
	if req.HasSlot() {
		maxAvailable, err = uc.availability.GetMaxAvailable(ctx, req.ResourceID, *req.Date, *req.Time)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to read occupancy for resource=%d: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to read occupancy: %v", ErrInternal, err)
		}
	}

	// 4. Ограничения размера группы
	if violation := limits.Check(req.Quantity); violation != domain.PartySizeOK {
		resp := partySizeResponse(violation, limits, maxAvailable)
		uc.record(req, resp)
		return resp, nil
	}

	// 5. Хватает ли мест в слоте
	resp := &Response{
		Available:    maxAvailable >= req.Quantity,
		MaxAvailable: maxAvailable,
		Reason:       ReasonAvailable,
		Message:      fmt.Sprintf("Свободно мест: %d", maxAvailable),
	}
	if !resp.Available {
		resp.Reason = ReasonNotEnoughSpots
		resp.Message = fmt.Sprintf("Недостаточно мест: осталось %d, запрошено %d", maxAvailable, req.Quantity)
	}

	uc.record(req, resp)
	return resp, nil
}

func (uc *UseCase) record(req *Request, resp *Response) {
	uc.metrics.AvailabilityDecision(string(resp.Reason))
	uc.logger.Info("CheckAvailability: resource=%d, quantity=%d -> %s (max available %d)",
		req.ResourceID, req.Quantity, resp.Reason, resp.MaxAvailable)
}
