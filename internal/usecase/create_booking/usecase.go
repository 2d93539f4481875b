package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/capacity"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
	"github.com/m04kA/SMC-GroupBookingService/pkg/txmanager"
)

// UseCase use case для создания группового бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	resolver     ResourceResolver
	availability AvailabilityChecker
	calculator   PriceCalculator
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver ResourceResolver,
	availability AvailabilityChecker,
	calculator PriceCalculator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resolver:     resolver,
		availability: availability,
		calculator:   calculator,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка мест и запись выполняются атомарно: сериализуемая транзакция,
// блокировка слота и повторное чтение занятости внутри неё
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, date=%s, time=%s, quantity=%d",
		req.UserID, req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Слот не должен быть в прошлом
	if err := validateSlotTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 4. Загружаем настройки ресурса и проверяем размер группы
	resource, err := uc.resolver.Resource(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to load resource: %v", ErrInternal, err)
	}
	defaults := uc.resolver.Defaults()
	limits := resource.PartySizeLimits(defaults)

	if err := partySizeError(limits.Check(req.Quantity), limits); err != nil {
		uc.logger.Warn("CreateBooking: party size rejected: %v", err)
		return nil, err
	}

	// 5. Рассчитываем стоимость
	quote, err := uc.calculator.GetPriceBreakdown(ctx, pricing.Input{
		ResourceID: req.ResourceID,
		BasePrice:  resource.EffectiveBasePrice(),
		Quantity:   req.Quantity,
		Mode:       resource.EffectivePricingMode(defaults),
		Discount:   domain.ResolveDiscountPolicy(resource, defaults).DiscountConfig,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// 6. Быстрая проверка без блокировок: заведомо занятый слот не открывает транзакцию
	available, err := uc.availability.CheckAvailability(ctx, req.ResourceID, req.Date, req.StartTime, req.Quantity)
	if err != nil {
		uc.logger.Error("CreateBooking: availability pre-check failed: %v", err)
		return nil, fmt.Errorf("%w: availability pre-check failed: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateBooking: slot %s %s of resource=%d has no room for %d",
			req.Date.Format(domain.DateFormat), req.StartTime, req.ResourceID, req.Quantity)
		uc.metrics.BookingConflict()
		return nil, ErrSlotNotAvailable
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем проверку и запись в сериализуемой транзакции
	// Ошибки драйвера оборачиваются через %w, чтобы менеджер транзакций распознал конфликт сериализации
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Блокируем слот и перечитываем занятость
		occupied, err := uc.bookingRepo.LockSlotOccupancy(txCtx, req.ResourceID, req.Date, req.StartTime, now)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to lock slot: %v", err)
			return fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
		}

		// 7.2. Проверяем, что места еще есть
		remaining := capacity.Remaining(limits.Capacity, occupied)
		if remaining < req.Quantity {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken, requested %d",
				occupied, limits.Capacity, req.Quantity)
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем бронирование: удержание с TTL или сразу подтвержденное
		booking := &domain.Booking{
			ResourceID:  req.ResourceID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			Quantity:    ptr.Ptr(req.Quantity),
			Status:      domain.StatusConfirmed,
			TotalPrice:  quote.Total,
			Notes:       req.Notes,
		}
		if defaults.HasHoldTTL() {
			booking.Status = domain.StatusPending
			booking.HoldExpiresAt = ptr.Ptr(now.Add(defaults.HoldTTL))
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken before booking",
			occupied, limits.Capacity)

		result = created
		return nil
	})

	if err != nil {
		// Конкурент занял места раньше, либо транзакция не прошла после всех повторов
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: conflict on resource=%d slot %s %s: %v",
				req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			uc.metrics.BookingConflict()
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		ResourceID:    result.ResourceID,
		UserID:        result.UserID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Quantity:      result.PartySize(),
		Status:        string(result.Status),
		TotalPrice:    result.TotalPrice,
		Breakdown:     quote.Breakdown,
		HoldExpiresAt: result.HoldExpiresAt,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
