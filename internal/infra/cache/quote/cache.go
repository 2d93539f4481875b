package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

const keyPrefix = "quote"

// Key полный набор входных данных расчёта цены
// Расчёт детерминирован, поэтому одинаковый Key всегда дает одинаковый результат
type Key struct {
	ResourceID int64
	Quantity   int
	BasePrice  float64
	Mode       domain.PricingMode
	Discount   domain.DiscountConfig
}

func (k Key) redisKey(version int64) string {
	return fmt.Sprintf("%s:%d:v%d:%s:%s:%d:%t:%d:%s:%s",
		keyPrefix,
		k.ResourceID,
		version,
		k.Mode,
		strconv.FormatFloat(k.BasePrice, 'f', -1, 64),
		k.Quantity,
		k.Discount.Enabled,
		k.Discount.MinQuantity,
		k.Discount.Type,
		strconv.FormatFloat(k.Discount.Value, 'f', -1, 64),
	)
}

func versionKey(resourceID int64) string {
	return fmt.Sprintf("%s:%d:version", keyPrefix, resourceID)
}

// Cache кэш расчётов цены в Redis
// Инвалидация по ресурсу: инкремент версии делает все старые ключи недостижимыми,
// они удаляются по TTL
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш расчётов цены
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированный расчёт (nil при промахе) и версию ресурса,
// под которой он искался. Эту версию нужно передать в Set.
func (c *Cache) Get(ctx context.Context, key Key) (*domain.PriceQuote, int64, error) {
	version, err := c.version(ctx, key.ResourceID)
	if err != nil {
		return nil, 0, err
	}

	raw, err := c.client.Get(ctx, key.redisKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, nil
	}
	if err != nil {
		return nil, version, fmt.Errorf("%w: Get - %v", ErrCacheRead, err)
	}

	var quote domain.PriceQuote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, version, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &quote, version, nil
}

// Set сохраняет расчёт с TTL кэша под версией, прочитанной в Get.
// Если между Get и Set ресурс инвалидирован, запись попадает на недостижимый ключ.
func (c *Cache) Set(ctx context.Context, key Key, version int64, quote *domain.PriceQuote) error {
	raw, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal quote: %v", ErrCacheWrite, err)
	}

	if err := c.client.Set(ctx, key.redisKey(version), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheWrite, err)
	}

	return nil
}

// Invalidate сбрасывает все расчёты ресурса (после изменения ценовых уровней)
func (c *Cache) Invalidate(ctx context.Context, resourceID int64) error {
	if err := c.client.Incr(ctx, versionKey(resourceID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheWrite, err)
	}
	return nil
}

func (c *Cache) version(ctx context.Context, resourceID int64) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(resourceID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: version - %v", ErrCacheRead, err)
	}
	return version, nil
}

// NopCache кэш-заглушка, используется при выключенном quote_cache
type NopCache struct{}

func (NopCache) Get(context.Context, Key) (*domain.PriceQuote, int64, error) {
	return nil, 0, nil
}

func (NopCache) Set(context.Context, Key, int64, *domain.PriceQuote) error {
	return nil
}

func (NopCache) Invalidate(context.Context, int64) error {
	return nil
}
