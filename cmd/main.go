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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCourtHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/create_court"
	createReservationHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/create_reservation"
	deleteCourtHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/delete_court"
	getAvailabilityHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_availability"
	getCourtHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_court"
	getCourtUtilizationHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_court_utilization"
	getFreeSlotsHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_free_slots"
	getReservationHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/get_user_reservations"
	listCourtsHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/list_courts"
	listProductsHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/list_products"
	listReservationsHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/list_reservations"
	payReservationHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/pay_reservation"
	updateCourtHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/update_court"
	updateReservationStatusHandler "github.com/m04kA/court-reservation-service/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/court-reservation-service/internal/api/middleware"
	"github.com/m04kA/court-reservation-service/internal/config"
	courtRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/court"
	productRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/product"
	reservationRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/court-reservation-service/internal/infra/storage/user"
	"github.com/m04kA/court-reservation-service/internal/integrations/notifier"
	courtsService "github.com/m04kA/court-reservation-service/internal/service/courts"
	productsService "github.com/m04kA/court-reservation-service/internal/service/products"
	reservationsService "github.com/m04kA/court-reservation-service/internal/service/reservations"
	createReservationUC "github.com/m04kA/court-reservation-service/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/court-reservation-service/internal/usecase/get_availability"
	getCourtUtilizationUC "github.com/m04kA/court-reservation-service/internal/usecase/get_court_utilization"
	settleReservationUC "github.com/m04kA/court-reservation-service/internal/usecase/settle_reservation"
	"github.com/m04kA/court-reservation-service/pkg/dbmetrics"
	"github.com/m04kA/court-reservation-service/pkg/logger"
	"github.com/m04kA/court-reservation-service/pkg/metrics"
	"github.com/m04kA/court-reservation-service/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
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

	log.Info("Starting court-reservation-service...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики нужны use case'ам всегда; при выключенных метриках пишем в приватный реестр
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registry)
	stopMetricsCh := make(chan struct{})

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
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithRetries(cfg.Database.TxMaxRetries, txmanager.DefaultRetryBackoff))

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)

	// Уведомления
	reservationNotifier, err := notifier.New(notifier.Config{
		Enabled:        cfg.Notifier.Enabled,
		URL:            cfg.Notifier.URL,
		Exchange:       cfg.Notifier.Exchange,
		PublishTimeout: cfg.Notifier.PublishTimeoutDuration(),
	}, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize notifier: %v", err)
	}
	defer func() {
		if err := reservationNotifier.Close(); err != nil {
			log.Warn("Failed to close notifier: %v", err)
		}
	}()

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		userRepository,
		productRepository,
		reservationNotifier,
		txMgr,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		reservationRepository,
		userRepository,
		cfg.Courts.ImageBaseURL,
		log,
	)
	productSvc := productsService.NewService(productRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		courtRepository,
		userRepository,
		productRepository,
		txMgr,
		metricsCollector,
		log,
	)
	settleReservationUseCase := settleReservationUC.NewUseCase(
		reservationRepository,
		userRepository,
		reservationNotifier,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(reservationRepository, courtRepository, log)
	getCourtUtilizationUseCase := getCourtUtilizationUC.NewUseCase(reservationRepository, courtRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	payReservation := payReservationHandler.NewHandler(settleReservationUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	getCourtUtilization := getCourtUtilizationHandler.NewHandler(getCourtUtilizationUseCase, log)
	listProducts := listProductsHandler.NewHandler(productSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные окна и полная сетка окон корта на дату
	api.HandleFunc("/reservations/available/{courtId}", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/availability/{courtId}", getAvailability.Handle).Methods(http.MethodGet)

	// Справочник кортов и отчет о загрузке
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/utilization", getCourtUtilization.Handle).Methods(http.MethodGet)

	// Каталог инвентаря
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/user/{userId}", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/pay", payReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPut)

	// --- Управление кортами (администратор) ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

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
