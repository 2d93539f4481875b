package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	calculatePriceHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/create_booking"
	createTierHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/create_tier"
	deleteTierHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/delete_tier"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/get_booking"
	getResourceHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/get_resource"
	getSlotOccupantsHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/get_slot_occupants"
	getUserBookingsHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/get_user_bookings"
	listTiersHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/list_tiers"
	updateResourceHandler "github.com/m04kA/SMC-GroupBookingService/internal/api/handlers/update_resource"
	"github.com/m04kA/SMC-GroupBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroupBookingService/internal/config"
	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/infra/cache/quote"
	bookingRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/booking"
	resourceRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/resource"
	tierRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/tier"
	scheduleServiceClient "github.com/m04kA/SMC-GroupBookingService/internal/integrations/scheduleservice"
	bookingsService "github.com/m04kA/SMC-GroupBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/capacity"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
	resourcesService "github.com/m04kA/SMC-GroupBookingService/internal/service/resources"
	tiersService "github.com/m04kA/SMC-GroupBookingService/internal/service/tiers"
	calculatePriceUC "github.com/m04kA/SMC-GroupBookingService/internal/usecase/calculate_price"
	checkAvailabilityUC "github.com/m04kA/SMC-GroupBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-GroupBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-GroupBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroupBookingService/internal/worker/holdexpiry"
	"github.com/m04kA/SMC-GroupBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/metrics"
	"github.com/m04kA/SMC-GroupBookingService/pkg/txmanager"
)

// quoteStore общий интерфейс quote.Cache и quote.NopCache
type quoteStore interface {
	Get(ctx context.Context, key quote.Key) (*domain.PriceQuote, int64, error)
	Set(ctx context.Context, key quote.Key, version int64, q *domain.PriceQuote) error
	Invalidate(ctx context.Context, resourceID int64) error
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-GroupBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil *Metrics отключает замеры в dbmetrics и Recorder
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	recorder := metricsCollector.Recorder()

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.TxManager.MaxRetries))

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	tierRepository := tierRepo.NewRepository(wrappedDB)

	// Кэш расчетов цены
	var quoteCache quoteStore = quote.NopCache{}
	if cfg.QuoteCache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			// Без кэша сервис работает, только медленнее
			log.Warn("Redis is unavailable at %s, quote cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			quoteCache = quote.NewCache(redisClient, cfg.QuoteCache.TTL())
			log.Info("Quote cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.QuoteCache.TTLSeconds)
		}
	}

	// Инициализируем интеграционных клиентов
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ScheduleService=%s timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	// Инициализируем сервисы
	defaults := cfg.Booking.Defaults()
	resolver := capacity.NewResolver(resourceRepository, defaults, log)
	capacityFilter := capacity.NewFilter(resolver, bookingRepository, log)
	calculator := pricing.NewCalculator(tierRepository, log)

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	tierSvc := tiersService.NewService(tierRepository, resourceRepository, quoteCache, log)
	resourceSvc := resourcesService.NewService(resourceRepository, quoteCache, defaults, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resolver,
		capacityFilter,
		calculator,
		txMgr,
		recorder,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleClient,
		capacityFilter,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		resolver,
		capacityFilter,
		recorder,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		resolver,
		calculator,
		quoteCache,
		recorder,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSlotOccupants := getSlotOccupantsHandler.NewHandler(capacityFilter, log)
	listTiers := listTiersHandler.NewHandler(tierSvc, log)
	createTier := createTierHandler.NewHandler(tierSvc, log)
	deleteTier := deleteTierHandler.NewHandler(tierSvc, log)
	getResource := getResourceHandler.NewHandler(resourceSvc, log)
	updateResource := updateResourceHandler.NewHandler(resourceSvc, log)

	// Фоновое освобождение истекших удержаний
	var holdWorker *holdexpiry.Worker
	if cfg.Workers.HoldExpiry.Enabled {
		holdWorker, err = holdexpiry.NewWorker(bookingRepository, recorder, holdexpiry.Config{
			Interval:  cfg.Workers.HoldExpiry.Interval(),
			BatchSize: cfg.Workers.HoldExpiry.BatchSize,
		}, log)
		if err != nil {
			log.Fatal("Failed to create hold expiry worker: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности слота для группы
	api.HandleFunc("/resources/{resourceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Слоты, вмещающие группу
	api.HandleFunc("/resources/{resourceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет цены группы
	api.HandleFunc("/resources/{resourceId}/price", calculatePrice.Handle).Methods(http.MethodGet)

	// Ценовые уровни ресурса
	api.HandleFunc("/resources/{resourceId}/tiers", listTiers.Handle).Methods(http.MethodGet)

	// Настройки ресурса
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление ресурсами ---
	protected.HandleFunc("/resources/{resourceId}/occupants", getSlotOccupants.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/resources/{resourceId}/tiers", createTier.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tiers/{tierId}", deleteTier.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/resources/{resourceId}", updateResource.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if holdWorker != nil {
		if err := holdWorker.Start(workerCtx); err != nil {
			log.Fatal("Failed to start hold expiry worker: %v", err)
		}
		log.Info("Hold expiry worker started (interval=%ds, batch=%d)",
			cfg.Workers.HoldExpiry.IntervalSeconds, cfg.Workers.HoldExpiry.BatchSize)
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if holdWorker != nil {
		holdWorker.Stop()
		log.Info("Hold expiry worker stopped")
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
