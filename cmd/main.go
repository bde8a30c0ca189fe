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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking"
	getResourceBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_resource_bookings"
	getSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_settings"
	updateBookingStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	settingsCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/settings"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/resource"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/blackout"
	reservationsService "github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	settingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	checkAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("AVAILABILITY_CONFIG"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены).
	// Приёмники объявлены интерфейсами, чтобы при выключенных метриках туда не попал typed nil.
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.MetricsCollector
		engineRecorder   availability.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		engineRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Кэш настроек в Redis (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("Redis is unavailable, settings will be read from database: %v", err)
		} else {
			log.Info("Connected to Redis at %s (settings ttl=%ds)", cfg.Redis.Address, cfg.Redis.SettingsTTLSeconds)
		}
	}
	settingsProvider := settingsCache.NewCache(settingsRepository, redisClient, cfg.Redis.SettingsTTL(), log)

	// Календарь блэкаутов
	blackouts := blackout.NewHolder(nil)
	if cfg.Booking.BlackoutsFile != "" {
		if err := blackout.Watch(ctx, cfg.Booking.BlackoutsFile, cfg.Booking.BlackoutsReloadInterval(), log, blackouts.Store); err != nil {
			log.Fatal("Failed to load blackouts from %s: %v", cfg.Booking.BlackoutsFile, err)
		}
		log.Info("Blackout calendar loaded from %s (%d entries)", cfg.Booking.BlackoutsFile, blackouts.Current().Len())
	}

	// Движок доступности
	location := cfg.Booking.Location()
	engine := availability.NewEngine(reservationRepository, blackouts, location, engineRecorder, log)
	log.Info("Availability engine initialized (timezone=%s)", location)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, location, log)
	settingsSvc := settingsService.NewService(settingsRepository, settingsProvider, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		resourceRepository,
		settingsProvider,
		engine,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		resourceRepository,
		engine,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		settingsProvider,
		engine,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(reservationsSvc, log)
	getResourceBookings := getResourceBookingsHandler.NewHandler(reservationsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Доступные слоты ресурса на дату
	api.HandleFunc("/resources/{resourceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка произвольного интервала
	api.HandleFunc("/resources/{resourceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Бронирования ресурса
	api.HandleFunc("/resources/{resourceId}/bookings", getResourceBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Глобальные настройки ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
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

	// Останавливаем наблюдение за файлом блэкаутов и сбор метрик пула
	stop()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
