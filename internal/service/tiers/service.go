package tiers

import (
	"context"
	"errors"
	"fmt"

	tierRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/tier"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
)

// Service сервис управления ценовыми уровнями ресурсов
type Service struct {
	tierRepo     TierRepository
	resourceRepo ResourceRepository
	quoteCache   QuoteCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса ценовых уровней
func NewService(
	tierRepo TierRepository,
	resourceRepo ResourceRepository,
	quoteCache QuoteCache,
	logger Logger,
) *Service {
	return &Service{
		tierRepo:     tierRepo,
		resourceRepo: resourceRepo,
		quoteCache:   quoteCache,
		logger:       logger,
	}
}

// Create создает новый ценовой уровень ресурса
// Ресурс обязан существовать
func (s *Service) Create(ctx context.Context, req *models.CreateTierRequest) (*models.TierResponse, error) {
	s.logger.Info("Create: creating tier for resource=%d, range=[%d,%d]",
		req.ResourceID, req.MinQuantity, req.MaxQuantity)

	// 1. Валидируем входные данные
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ресурса
	exists, err := s.resourceRepo.Exists(ctx, req.ResourceID)
	if err != nil {
		s.logger.Error("Create: failed to check resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Create - failed to check resource: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Create: resource id=%d not found", req.ResourceID)
		return nil, ErrResourceNotFound
	}

	// 3. Сохраняем уровень
	created, err := s.tierRepo.Create(ctx, req.ToDomainTier())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш расчетов цены ресурса
	s.invalidateQuotes(ctx, "Create", created.ResourceID)

	s.logger.Info("Create: successfully created tier id=%d", created.ID)
	return models.FromDomainTier(created), nil
}

// List возвращает уровни ресурса по возрастанию minQuantity
func (s *Service) List(ctx context.Context, resourceID int64) (*models.TierListResponse, error) {
	s.logger.Info("List: fetching tiers for resource=%d", resourceID)

	if resourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	list, err := s.tierRepo.GetByResource(ctx, resourceID)
	if err != nil {
		s.logger.Error("List: repository error for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d tiers for resource=%d", len(list), resourceID)
	return models.FromDomainTierList(list), nil
}

// Delete удаляет ценовой уровень
func (s *Service) Delete(ctx context.Context, tierID int64) error {
	s.logger.Info("Delete: deleting tier id=%d", tierID)

	if tierID <= 0 {
		return fmt.Errorf("%w: tierId must be positive", ErrInvalidInput)
	}

	resourceID, err := s.tierRepo.Delete(ctx, tierID)
	if err != nil {
		if errors.Is(err, tierRepo.ErrTierNotFound) {
			s.logger.Warn("Delete: tier id=%d not found", tierID)
			return ErrTierNotFound
		}
		s.logger.Error("Delete: repository error for tier id=%d: %v", tierID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidateQuotes(ctx, "Delete", resourceID)

	s.logger.Info("Delete: successfully deleted tier id=%d of resource=%d", tierID, resourceID)
	return nil
}

// invalidateQuotes сбрасывает кэш цен; ошибка кэша не отменяет изменение уровней
func (s *Service) invalidateQuotes(ctx context.Context, op string, resourceID int64) {
	if err := s.quoteCache.Invalidate(ctx, resourceID); err != nil {
		s.logger.Error("%s: failed to invalidate quote cache for resource=%d: %v", op, resourceID, err)
	}
}
