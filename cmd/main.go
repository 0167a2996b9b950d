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

	cancelBookingHandler "github.com/salmanbhs/barber-api/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/salmanbhs/barber-api/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/salmanbhs/barber-api/internal/api/handlers/get_availability"
	getBarberBookingsHandler "github.com/salmanbhs/barber-api/internal/api/handlers/get_barber_bookings"
	getBookingHandler "github.com/salmanbhs/barber-api/internal/api/handlers/get_booking"
	getCompanyConfigHandler "github.com/salmanbhs/barber-api/internal/api/handlers/get_company_config"
	getCustomerBookingsHandler "github.com/salmanbhs/barber-api/internal/api/handlers/get_customer_bookings"
	rescheduleBookingHandler "github.com/salmanbhs/barber-api/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/salmanbhs/barber-api/internal/api/handlers/update_booking_status"
	updateCompanyConfigHandler "github.com/salmanbhs/barber-api/internal/api/handlers/update_company_config"
	"github.com/salmanbhs/barber-api/internal/api/middleware"
	"github.com/salmanbhs/barber-api/internal/config"
	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	catalogRepo "github.com/salmanbhs/barber-api/internal/infra/storage/catalog"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	bookingsService "github.com/salmanbhs/barber-api/internal/service/bookings"
	configService "github.com/salmanbhs/barber-api/internal/service/config"
	createBookingUC "github.com/salmanbhs/barber-api/internal/usecase/create_booking"
	getAvailabilityUC "github.com/salmanbhs/barber-api/internal/usecase/get_availability"
	rescheduleBookingUC "github.com/salmanbhs/barber-api/internal/usecase/reschedule_booking"
	"github.com/salmanbhs/barber-api/pkg/dbmetrics"
	"github.com/salmanbhs/barber-api/pkg/logger"
	"github.com/salmanbhs/barber-api/pkg/metrics"
	"github.com/salmanbhs/barber-api/pkg/simpletxmanager"
	"github.com/salmanbhs/barber-api/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting barber-api...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		companyRepository *companyRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		companyRepository = companyRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		companyRepository = companyRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	configSvc := configService.NewService(companyRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		companyRepository,
		catalogRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		companyRepository,
		catalogRepository,
		txMgr,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		companyRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)
	getCompanyConfig := getCompanyConfigHandler.NewHandler(configSvc, log)
	updateCompanyConfig := updateCompanyConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты барбера на дату (или диапазон дат)
	api.HandleFunc("/barbers/{barberId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Конфигурация барбершопа (часы работы, праздники, правила записи)
	api.HandleFunc("/company/config",
		getCompanyConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования на новый слот
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента по телефону
	protected.HandleFunc("/customers/{phone}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление (для администраторов) ---
	// Список бронирований барбера
	protected.HandleFunc("/barbers/{barberId}/bookings", getBarberBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации барбершопа
	protected.HandleFunc("/company/config", updateCompanyConfig.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
