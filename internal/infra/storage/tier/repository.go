package tier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroupBookingService/pkg/psqlbuilder"
)

var tierColumns = []string{
	"id",
	"resource_id",
	"min_quantity",
	"max_quantity",
	"price_type",
	"price",
	"discount_type",
	"discount_value",
	"created_at",
}

// Repository хранилище ценовых уровней
// Уровни не изменяются на месте: только создание и удаление
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценовых уровней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет ценовой уровень
// Валидация диапазона и цены выполняется вызывающей стороной
func (r *Repository) Create(ctx context.Context, tier *domain.PricingTier) (*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_tiers").
		Columns(
			"resource_id",
			"min_quantity",
			"max_quantity",
			"price_type",
			"price",
			"discount_type",
			"discount_value",
		).
		Values(
			tier.ResourceID,
			tier.MinQuantity,
			tier.MaxQuantity,
			string(tier.PriceType),
			tier.Price,
			tier.DiscountType,
			tier.DiscountValue,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tier.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	tier.CreatedAt = createdAt.Time

	return tier, nil
}

// GetByResource возвращает уровни ресурса по возрастанию min_quantity
func (r *Repository) GetByResource(ctx context.Context, resourceID int64) ([]*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tierColumns...).
		From("pricing_tiers").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("min_quantity ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]*domain.PricingTier, 0)
	for rows.Next() {
		tier, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByResource - scan tier: %v", ErrScanRow, err)
		}
		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByResource - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}

// FindForQuantity возвращает уровень, в диапазон которого попадает quantity
// При пересечении диапазонов побеждает уровень с наименьшим min_quantity
func (r *Repository) FindForQuantity(ctx context.Context, resourceID int64, quantity int) (*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tierColumns...).
		From("pricing_tiers").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.LtOrEq{"min_quantity": quantity}).
		Where(squirrel.GtOrEq{"max_quantity": quantity}).
		OrderBy("min_quantity ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindForQuantity - build select query: %v", ErrBuildQuery, err)
	}

	tier, err := scanTier(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindForQuantity - scan tier: %v", ErrScanRow, err)
	}

	return tier, nil
}

// Delete удаляет уровень и возвращает ID ресурса, которому он принадлежал
func (r *Repository) Delete(ctx context.Context, tierID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_tiers").
		Where(squirrel.Eq{"id": tierID}).
		Suffix("RETURNING resource_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var resourceID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&resourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTierNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return resourceID, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTier(row rowScanner) (*domain.PricingTier, error) {
	var tier domain.PricingTier
	var createdAt sql.NullTime

	err := row.Scan(
		&tier.ID,
		&tier.ResourceID,
		&tier.MinQuantity,
		&tier.MaxQuantity,
		&tier.PriceType,
		&tier.Price,
		&tier.DiscountType,
		&tier.DiscountValue,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	tier.CreatedAt = createdAt.Time
	return &tier, nil
}
