package resource

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

var resourceColumns = []string{
	"id",
	"name",
	"base_price",
	"capacity",
	"pricing_mode",
	"min_party_size",
	"max_party_size",
	"discount_enabled",
	"discount_min_quantity",
	"discount_type",
	"discount_value",
	"created_at",
	"updated_at",
}

// Repository хранилище настроек ресурсов
// Все необязательные колонки (NULL) означают "не настроено" и заменяются глобальными значениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает настройки ресурса по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ResourceConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.ResourceConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Name,
		&res.BasePrice,
		&res.Capacity,
		&res.PricingMode,
		&res.MinPartySize,
		&res.MaxPartySize,
		&res.Discount.Enabled,
		&res.Discount.MinQuantity,
		&res.Discount.Type,
		&res.Discount.Value,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// Upsert создает ресурс с заданным ID или полностью перезаписывает его настройки
func (r *Repository) Upsert(ctx context.Context, res *domain.ResourceConfig) (*domain.ResourceConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resources").
		Columns(
			"id",
			"name",
			"base_price",
			"capacity",
			"pricing_mode",
			"min_party_size",
			"max_party_size",
			"discount_enabled",
			"discount_min_quantity",
			"discount_type",
			"discount_value",
		).
		Values(
			res.ID,
			res.Name,
			res.BasePrice,
			res.Capacity,
			res.PricingMode,
			res.MinPartySize,
			res.MaxPartySize,
			res.Discount.Enabled,
			res.Discount.MinQuantity,
			res.Discount.Type,
			res.Discount.Value,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			base_price = EXCLUDED.base_price,
			capacity = EXCLUDED.capacity,
			pricing_mode = EXCLUDED.pricing_mode,
			min_party_size = EXCLUDED.min_party_size,
			max_party_size = EXCLUDED.max_party_size,
			discount_enabled = EXCLUDED.discount_enabled,
			discount_min_quantity = EXCLUDED.discount_min_quantity,
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// Exists проверяет существование ресурса
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
