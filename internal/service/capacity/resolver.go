package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/resource"
)

// Resolver определяет настройки ресурса с учетом глобальных значений по умолчанию
// Порядок: явная настройка ресурса, иначе глобальное значение
type Resolver struct {
	resources ResourceRepository
	defaults  domain.GlobalDefaults
	logger    Logger
}

// NewResolver создает новый экземпляр Resolver
func NewResolver(resources ResourceRepository, defaults domain.GlobalDefaults, logger Logger) *Resolver {
	return &Resolver{
		resources: resources,
		defaults:  defaults,
		logger:    logger,
	}
}

// Defaults возвращает глобальные значения по умолчанию
func (r *Resolver) Defaults() domain.GlobalDefaults {
	return r.defaults
}

// Resource загружает настройки ресурса
// Неизвестный ресурс - не ошибка: возвращается nil, и все значения берутся из defaults
func (r *Resolver) Resource(ctx context.Context, resourceID int64) (*domain.ResourceConfig, error) {
	res, err := r.resources.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			r.logger.Info("Resolver: resource id=%d not configured, using defaults", resourceID)
			return nil, nil
		}
		r.logger.Error("Resolver: failed to load resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Resource - %v", ErrStorage, err)
	}
	return res, nil
}

// Capacity возвращает вместимость слота ресурса
func (r *Resolver) Capacity(ctx context.Context, resourceID int64) (int, error) {
	res, err := r.Resource(ctx, resourceID)
	if err != nil {
		return 0, err
	}
	return res.EffectiveCapacity(r.defaults), nil
}
