package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Допустимые режимы ценообразования и типы скидок
const (
	pricingPerPerson = "per_person"
	pricingFlatRate  = "flat_rate"
	pricingTiered    = "tiered"

	discountPercentage = "percentage"
	discountFixed      = "fixed"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Redis           RedisConfig           `toml:"redis"`
	ScheduleService ScheduleServiceConfig `toml:"schedule_service"`
	Booking         BookingConfig         `toml:"booking"`
	TxManager       TxManagerConfig       `toml:"txmanager"`
	Workers         WorkersConfig         `toml:"workers"`
	QuoteCache      QuoteCacheConfig      `toml:"quote_cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

type ScheduleServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig глобальные значения по умолчанию для ресурсов
type BookingConfig struct {
	DefaultMinPartySize int            `toml:"default_min_party_size"`
	DefaultMaxPartySize int            `toml:"default_max_party_size"`
	DefaultPricingMode  string         `toml:"default_pricing_mode"`
	HoldTTLMinutes      int            `toml:"hold_ttl_minutes"` // 0 - бронирование сразу подтверждается
	Discount            DiscountConfig `toml:"discount"`
}

// HoldTTL время жизни временного удержания слота
func (b BookingConfig) HoldTTL() time.Duration {
	return time.Duration(b.HoldTTLMinutes) * time.Minute
}

// Defaults глобальные настройки бронирования для ресурсов без переопределений
func (b BookingConfig) Defaults() domain.GlobalDefaults {
	return domain.GlobalDefaults{
		MinPartySize: b.DefaultMinPartySize,
		MaxPartySize: b.DefaultMaxPartySize,
		PricingMode:  domain.PricingMode(b.DefaultPricingMode),
		Discount: domain.DiscountConfig{
			Enabled:     b.Discount.Enabled,
			MinQuantity: b.Discount.MinQuantity,
			Type:        domain.DiscountType(b.Discount.Type),
			Value:       b.Discount.Value,
		},
		HoldTTL: b.HoldTTL(),
	}
}

type DiscountConfig struct {
	Enabled     bool    `toml:"enabled"`
	MinQuantity int     `toml:"min_quantity"`
	Type        string  `toml:"type"`
	Value       float64 `toml:"value"`
}

type TxManagerConfig struct {
	MaxRetries int `toml:"max_retries"`
}

type WorkersConfig struct {
	HoldExpiry HoldExpiryWorkerConfig `toml:"hold_expiry"`
}

type HoldExpiryWorkerConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
	BatchSize       int  `toml:"batch_size"`
}

// Interval период запуска воркера
func (w HoldExpiryWorkerConfig) Interval() time.Duration {
	return time.Duration(w.IntervalSeconds) * time.Second
}

type QuoteCacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// TTL время жизни закэшированного расчёта
func (q QuoteCacheConfig) TTL() time.Duration {
	return time.Duration(q.TTLSeconds) * time.Second
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "group-booking-service"
	}

	setDefault(&c.Redis.PoolSize, 10)

	setDefault(&c.ScheduleService.Timeout, 5)

	setDefault(&c.Booking.DefaultMinPartySize, 1)
	setDefault(&c.Booking.DefaultMaxPartySize, 10)
	if c.Booking.DefaultPricingMode == "" {
		c.Booking.DefaultPricingMode = pricingPerPerson
	}
	if c.Booking.Discount.Type == "" {
		c.Booking.Discount.Type = discountPercentage
	}

	setDefault(&c.TxManager.MaxRetries, 3)

	setDefault(&c.Workers.HoldExpiry.IntervalSeconds, 30)
	setDefault(&c.Workers.HoldExpiry.BatchSize, 100)

	setDefault(&c.QuoteCache.TTLSeconds, 300)
}

// applyEnv секреты из переменных окружения перекрывают значения из файла
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.ScheduleService.URL == "" {
		return fmt.Errorf("%w: schedule_service.url is required", ErrInvalidConfig)
	}
	if c.QuoteCache.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when quote_cache is enabled", ErrInvalidConfig)
	}

	b := c.Booking
	if b.DefaultMinPartySize < 1 {
		return fmt.Errorf("%w: booking.default_min_party_size must be >= 1", ErrInvalidConfig)
	}
	if b.DefaultMaxPartySize < b.DefaultMinPartySize {
		return fmt.Errorf("%w: booking.default_max_party_size must be >= default_min_party_size", ErrInvalidConfig)
	}
	switch b.DefaultPricingMode {
	case pricingPerPerson, pricingFlatRate, pricingTiered:
	default:
		return fmt.Errorf("%w: unknown booking.default_pricing_mode %q", ErrInvalidConfig, b.DefaultPricingMode)
	}
	if b.HoldTTLMinutes < 0 {
		return fmt.Errorf("%w: booking.hold_ttl_minutes must be >= 0", ErrInvalidConfig)
	}

	d := b.Discount
	switch d.Type {
	case discountPercentage, discountFixed:
	default:
		return fmt.Errorf("%w: unknown booking.discount.type %q", ErrInvalidConfig, d.Type)
	}
	if d.Value < 0 {
		return fmt.Errorf("%w: booking.discount.value must be >= 0", ErrInvalidConfig)
	}
	if d.Type == discountPercentage && d.Value > 100 {
		return fmt.Errorf("%w: booking.discount.value must be <= 100 for percentage", ErrInvalidConfig)
	}
	if d.MinQuantity < 0 {
		return fmt.Errorf("%w: booking.discount.min_quantity must be >= 0", ErrInvalidConfig)
	}

	if c.TxManager.MaxRetries < 0 {
		return fmt.Errorf("%w: txmanager.max_retries must be >= 0", ErrInvalidConfig)
	}

	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
