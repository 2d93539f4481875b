package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	scheduleClient "github.com/m04kA/SMC-GroupBookingService/internal/integrations/scheduleservice"
)

// UseCase use case для получения слотов, вмещающих группу
type UseCase struct {
	scheduleClient ScheduleServiceClient
	capacityFilter CapacityFilter
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleClient ScheduleServiceClient,
	capacityFilter CapacityFilter,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleClient: scheduleClient,
		capacityFilter: capacityFilter,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: resource=%d, quantity=%d, period=%s..%s",
		req.ResourceID, req.Quantity, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем открытые слоты из ScheduleService
	slots, err := uc.scheduleClient.GetSlots(ctx, req.ResourceID, civilDate(req.From), civilDate(req.To))
	if err != nil {
		if errors.Is(err, scheduleClient.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d has no schedule", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get slots for resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 3. Убираем прошедшие слоты
	slots = dropPastSlots(slots, uc.timeProvider.Now())

	// 4. Оставляем слоты, где хватает мест для группы
	filtered, err := uc.capacityFilter.FilterByCapacity(ctx, slots, req.ResourceID, req.Quantity)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: capacity filter failed for resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: resource=%d, quantity=%d: %d slots on %d days",
		req.ResourceID, req.Quantity, filtered.SlotCount(), len(filtered))

	return &Response{
		ResourceID: req.ResourceID,
		Quantity:   req.Quantity,
		From:       civilDate(req.From),
		To:         civilDate(req.To),
		Days:       filtered,
	}, nil
}
