package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/resources/models"
)

// Service сервис управления настройками ресурсов
type Service struct {
	resourceRepo ResourceRepository
	quoteCache   QuoteCache
	defaults     domain.GlobalDefaults
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	resourceRepo ResourceRepository,
	quoteCache QuoteCache,
	defaults domain.GlobalDefaults,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		quoteCache:   quoteCache,
		defaults:     defaults,
		logger:       logger,
	}
}

// Get возвращает настройки ресурса вместе с действующими значениями
func (s *Service) Get(ctx context.Context, resourceID int64) (*models.ResourceResponse, error) {
	s.logger.Info("Get: fetching resource id=%d", resourceID)

	if resourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("Get: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Get: repository error for resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched resource id=%d", resourceID)
	return models.FromDomainResource(res, s.defaults), nil
}

// Upsert создает ресурс или полностью заменяет его настройки
// Незаданные поля сохраняются как NULL и берутся из глобальных значений
func (s *Service) Upsert(ctx context.Context, req *models.UpsertResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Upsert: saving resource id=%d", req.ResourceID)

	// 1. Валидируем входные данные
	if err := s.validateUpsertRequest(req); err != nil {
		s.logger.Warn("Upsert: validation failed for resource id=%d: %v", req.ResourceID, err)
		return nil, err
	}

	// 2. Сохраняем настройки
	saved, err := s.resourceRepo.Upsert(ctx, req.ToDomainResource())
	if err != nil {
		s.logger.Error("Upsert: repository error for resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	// 3. Цена, режим и скидка могли измениться
	if err := s.quoteCache.Invalidate(ctx, saved.ID); err != nil {
		s.logger.Error("Upsert: failed to invalidate quote cache for resource=%d: %v", saved.ID, err)
	}

	s.logger.Info("Upsert: successfully saved resource id=%d", saved.ID)
	return models.FromDomainResource(saved, s.defaults), nil
}
