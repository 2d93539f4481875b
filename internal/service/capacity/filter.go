package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// Filter отбирает слоты, способные вместить группу, и отвечает на точечные запросы доступности
type Filter struct {
	resolver     CapacityResolver
	occupancy    OccupancyReader
	timeProvider TimeProvider
	logger       Logger
}

// NewFilter создает новый экземпляр Filter
func NewFilter(resolver CapacityResolver, occupancy OccupancyReader, logger Logger) *Filter {
	return &Filter{
		resolver:     resolver,
		occupancy:    occupancy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// FilterByCapacity оставляет только слоты, где remaining >= quantity
// Если quantity больше вместимости, результат пуст и занятость не запрашивается.
// Даты, у которых не осталось ни одного слота, в результат не попадают.
func (f *Filter) FilterByCapacity(
	ctx context.Context,
	slots domain.SlotMap,
	resourceID int64,
	quantity int,
) (domain.SlotMap, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	capacity, err := f.resolver.Capacity(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	result := domain.SlotMap{}

	// Вместимость - жесткий потолок: ни один слот не подойдет
	if quantity > capacity {
		f.logger.Info("FilterByCapacity: resource=%d quantity=%d exceeds capacity=%d", resourceID, quantity, capacity)
		return result, nil
	}

	if slots.SlotCount() == 0 {
		return result, nil
	}

	occupancy, err := f.occupancy.GetOccupancyForDates(ctx, resourceID, slots.Dates(), f.timeProvider.Now())
	if err != nil {
		f.logger.Error("FilterByCapacity: failed to read occupancy for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: FilterByCapacity - %v", ErrStorage, err)
	}

	for _, day := range slots {
		kept := make([]domain.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			remaining := Remaining(capacity, occupancy[domain.NewSlotKey(day.Date, slot.Time)])
			if remaining < quantity {
				continue
			}
			slot.Remaining = remaining
			kept = append(kept, slot)
		}
		if len(kept) > 0 {
			result = append(result, domain.DaySlots{Date: day.Date, Slots: kept})
		}
	}

	f.logger.Info("FilterByCapacity: resource=%d quantity=%d kept %d of %d slots",
		resourceID, quantity, result.SlotCount(), slots.SlotCount())

	return result, nil
}

// CheckAvailability проверяет, что в слоте осталось не меньше quantity мест
func (f *Filter) CheckAvailability(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
	quantity int,
) (bool, error) {
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}

	remaining, err := f.GetMaxAvailable(ctx, resourceID, date, startTime)
	if err != nil {
		return false, err
	}

	return remaining >= quantity, nil
}

// GetMaxAvailable возвращает количество свободных мест в слоте (никогда не отрицательное)
func (f *Filter) GetMaxAvailable(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
) (int, error) {
	capacity, err := f.resolver.Capacity(ctx, resourceID)
	if err != nil {
		return 0, err
	}

	occupied, err := f.occupancy.GetSlotOccupancy(ctx, resourceID, date, startTime, f.timeProvider.Now())
	if err != nil {
		f.logger.Error("GetMaxAvailable: failed to read occupancy for resource=%d, date=%s, time=%s: %v",
			resourceID, date.Format(domain.DateFormat), startTime, err)
		return 0, fmt.Errorf("%w: GetMaxAvailable - %v", ErrStorage, err)
	}

	return Remaining(capacity, occupied), nil
}

// GetSlotOccupants возвращает бронирования, занимающие слот
func (f *Filter) GetSlotOccupants(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
) ([]domain.SlotOccupant, error) {
	occupants, err := f.occupancy.GetSlotOccupants(ctx, resourceID, date, startTime, f.timeProvider.Now())
	if err != nil {
		f.logger.Error("GetSlotOccupants: failed to read occupants for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: GetSlotOccupants - %v", ErrStorage, err)
	}
	return occupants, nil
}

// Remaining возвращает max(0, capacity - occupancy)
func Remaining(capacity, occupancy int) int {
	if remaining := capacity - occupancy; remaining > 0 {
		return remaining
	}
	return 0
}
