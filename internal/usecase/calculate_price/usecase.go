package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/infra/cache/quote"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
)

// UseCase use case расчета стоимости бронирования группы
type UseCase struct {
	resolver   ResourceResolver
	calculator PriceCalculator
	cache      QuoteCache
	metrics    MetricsRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver ResourceResolver,
	calculator PriceCalculator,
	cache QuoteCache,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:   resolver,
		calculator: calculator,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет расчет цены
// Расчет детерминирован, поэтому результат кэшируется по полному набору входных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: resource=%d, quantity=%d", req.ResourceID, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем настройки ресурса (неизвестный ресурс - значения по умолчанию)
	resource, err := uc.resolver.Resource(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to load resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to load resource: %v", ErrInternal, err)
	}
	defaults := uc.resolver.Defaults()

	// 3. Собираем входные данные расчета
	policy := domain.ResolveDiscountPolicy(resource, defaults)
	in := pricing.Input{
		ResourceID: req.ResourceID,
		BasePrice:  resource.EffectiveBasePrice(),
		Quantity:   req.Quantity,
		Mode:       resource.EffectivePricingMode(defaults),
		Discount:   policy.DiscountConfig,
	}
	if req.BasePrice != nil {
		in.BasePrice = *req.BasePrice
	}
	if req.Mode != nil {
		in.Mode = *req.Mode
	}

	key := quote.Key{
		ResourceID: in.ResourceID,
		Quantity:   in.Quantity,
		BasePrice:  in.BasePrice,
		Mode:       in.Mode,
		Discount:   in.Discount,
	}

	// 4. Пробуем кэш; недоступный кэш не мешает расчету
	// Запись идет под версией, прочитанной здесь: инвалидация во время расчета
	// делает результат недостижимым
	cached, version, cacheErr := uc.cache.Get(ctx, key)
	if cacheErr != nil {
		uc.logger.Warn("CalculatePrice: quote cache read failed: %v", cacheErr)
	}
	uc.metrics.QuoteCache(cached != nil)
	if cached != nil {
		return newResponse(cached, in.Mode, policy.Source, true), nil
	}

	// 5. Считаем цену
	calculated, err := uc.calculator.GetPriceBreakdown(ctx, in)
	if err != nil {
		uc.logger.Error("CalculatePrice: calculation failed for resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	if cacheErr == nil || errors.Is(cacheErr, quote.ErrDecode) {
		if err := uc.cache.Set(ctx, key, version, calculated); err != nil {
			uc.logger.Warn("CalculatePrice: quote cache write failed: %v", err)
		}
	}

	uc.logger.Info("CalculatePrice: resource=%d, quantity=%d, mode=%s, total=%s",
		req.ResourceID, req.Quantity, in.Mode, pricing.FormatMoney(calculated.Total))

	return newResponse(calculated, in.Mode, policy.Source, false), nil
}

func newResponse(q *domain.PriceQuote, mode domain.PricingMode, source domain.PolicySource, cached bool) *Response {
	return &Response{
		Total:          q.Total,
		TotalFormatted: pricing.FormatMoney(q.Total),
		Breakdown:      q.Breakdown,
		Mode:           mode,
		DiscountSource: source,
		Cached:         cached,
	}
}
