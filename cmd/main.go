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
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	allocateReservationHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/allocate_reservation"
	assignmentsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/assignments"
	cancelReservationHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/cancel_reservation"
	chambresHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/chambres"
	etudiantsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/etudiants"
	getAvailableRoomsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/get_available_rooms"
	housingHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/housing"
	invalidateReservationsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/invalidate_reservations"
	reservationsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/reservations"
	"github.com/m04kA/SMC-DormService/internal/api/middleware"
	"github.com/m04kA/SMC-DormService/internal/config"
	blocRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/bloc"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	foyerRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/foyer"
	reservationRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/reservation"
	universiteRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/universite"
	assignmentsService "github.com/m04kA/SMC-DormService/internal/service/assignments"
	chambresService "github.com/m04kA/SMC-DormService/internal/service/chambres"
	etudiantsService "github.com/m04kA/SMC-DormService/internal/service/etudiants"
	housingService "github.com/m04kA/SMC-DormService/internal/service/housing"
	reservationsService "github.com/m04kA/SMC-DormService/internal/service/reservations"
	allocateReservationUC "github.com/m04kA/SMC-DormService/internal/usecase/allocate_reservation"
	cancelReservationUC "github.com/m04kA/SMC-DormService/internal/usecase/cancel_reservation"
	getAvailableRoomsUC "github.com/m04kA/SMC-DormService/internal/usecase/get_available_rooms"
	invalidateReservationsUC "github.com/m04kA/SMC-DormService/internal/usecase/invalidate_reservations"
	"github.com/m04kA/SMC-DormService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DormService/pkg/logger"
	"github.com/m04kA/SMC-DormService/pkg/metrics"
	"github.com/m04kA/SMC-DormService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

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

	log.Info("Starting SMC-DormService...")
	log.Info("Configuration loaded from %s", configPath)

	// Часовой пояс учебного года проверен в config.Validate
	yearLocation, err := cfg.AcademicYear.Location()
	if err != nil {
		log.Fatal("Invalid academic year timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	universiteRepository := universiteRepo.NewRepository(wrappedDB)
	foyerRepository := foyerRepo.NewRepository(wrappedDB)
	blocRepository := blocRepo.NewRepository(wrappedDB)
	chambreRepository := chambreRepo.NewRepository(wrappedDB)
	etudiantRepository := etudiantRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	housingSvc := housingService.NewService(
		universiteRepository,
		foyerRepository,
		blocRepository,
		chambreRepository,
		txMgr,
		log,
	)
	chambresSvc := chambresService.NewService(chambreRepository, txMgr, log)
	etudiantsSvc := etudiantsService.NewService(etudiantRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	assignmentsSvc := assignmentsService.NewService(
		reservationRepository,
		chambreRepository,
		etudiantRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	allocateReservationUseCase := allocateReservationUC.NewUseCase(
		chambreRepository,
		etudiantRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(&allocateReservationUC.RealTimeProvider{Location: yearLocation})

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		chambreRepository,
		txMgr,
		metricsCollector,
		log,
	)

	invalidateReservationsUseCase := invalidateReservationsUC.NewUseCase(
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	).WithTimeProvider(&invalidateReservationsUC.RealTimeProvider{Location: yearLocation})

	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(chambreRepository, log).
		WithTimeProvider(&getAvailableRoomsUC.RealTimeProvider{Location: yearLocation})

	// Инициализируем handlers
	h := routeHandlers{
		allocateReservation:    allocateReservationHandler.NewHandler(allocateReservationUseCase, log),
		cancelReservation:      cancelReservationHandler.NewHandler(cancelReservationUseCase, log),
		invalidateReservations: invalidateReservationsHandler.NewHandler(invalidateReservationsUseCase, log),
		getAvailableRooms:      getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log),
		assignments:            assignmentsHandler.NewHandler(assignmentsSvc, log),
		reservations:           reservationsHandler.NewHandler(reservationsSvc, log),
		chambres:               chambresHandler.NewHandler(chambresSvc, log),
		etudiants:              etudiantsHandler.NewHandler(etudiantsSvc, log),
		housing:                housingHandler.NewHandler(housingSvc, log),
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		api.Use(middleware.RateLimit(limiter, log))
		log.Info("Rate limit enabled: %.1f req/s, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Кэш справочных GET ответов (университеты, фойе, блоки)
	var cached mux.MiddlewareFunc = func(next http.Handler) http.Handler { return next }
	if cfg.Cache.Enabled {
		store := cache.New(cfg.Cache.TTL(), cfg.Cache.CleanupInterval())
		cached = middleware.Cache(store, cfg.Cache.TTL())
		api.Use(middleware.InvalidateCache(store))
		log.Info("Response cache enabled: ttl=%s", cfg.Cache.TTL())
	}

	registerRoutes(api, h, cached)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
