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
	_ "time/tzdata"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	createAssociationHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/create_association"
	createBookingHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/create_booking"
	deleteAssociationHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/delete_association"
	deleteBookingHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/get_available_slots"
	getBookingHistoryHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/get_booking_history"
	getCalendarBookingsHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/get_calendar_bookings"
	getRoomsHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/get_rooms"
	listAssociationsHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/list_associations"
	loginHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/login"
	updateAssociationPasswordHandler "github.com/m04kA/RoomBookingService/internal/api/handlers/update_association_password"
	"github.com/m04kA/RoomBookingService/internal/api/middleware"
	"github.com/m04kA/RoomBookingService/internal/config"
	"github.com/m04kA/RoomBookingService/internal/domain"
	associationRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/association"
	bookingRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/room"
	associationsService "github.com/m04kA/RoomBookingService/internal/service/associations"
	authService "github.com/m04kA/RoomBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/RoomBookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/RoomBookingService/internal/usecase/create_booking"
	deleteBookingUC "github.com/m04kA/RoomBookingService/internal/usecase/delete_booking"
	getAvailableSlotsUC "github.com/m04kA/RoomBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/RoomBookingService/pkg/auth"
	"github.com/m04kA/RoomBookingService/pkg/credential"
	"github.com/m04kA/RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/RoomBookingService/pkg/logger"
	"github.com/m04kA/RoomBookingService/pkg/metrics"
	"github.com/m04kA/RoomBookingService/pkg/mq"
	"github.com/m04kA/RoomBookingService/pkg/txmanager"
)

func main() {
	var (
		configPath = pflag.String("config", "config.toml", "path to TOML config")
		envFile    = pflag.String("env-file", ".env", "optional file with BOOKING_* variables")
	)
	pflag.Parse()

	// Переменные из .env не перетирают уже заданные в окружении
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Failed to read %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting RoomBookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Server.Location()
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.Server.Timezone, err)
	}

	// Инициализируем метрики (если включены). nil метрики везде допустимы.
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	associationRepository := associationRepo.NewRepository(wrappedDB)

	// Пароли и токены
	hasher := credential.NewHasher(cfg.Auth.BcryptCost)
	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("Failed to initialize token manager: %v", err)
	}

	// События бронирований (если включены). nil издатель ничего не публикует.
	var publisher *mq.Publisher
	if cfg.Events.Enabled {
		publisher, err = mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		defer publisher.Close()
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}

	rules := cfg.Booking.Rules()
	clock := &createBookingUC.RealTimeProvider{Location: location}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, txMgr, location, log)
	associationSvc := associationsService.NewService(associationRepository, hasher, txMgr, log)
	authSvc := authService.NewService(associationRepository, hasher, tokens, cfg.Auth.AdminCodeHash, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		rules,
		metricsCollector,
		publisher,
		clock,
		log,
	)

	deleteBookingUseCase := deleteBookingUC.NewUseCase(
		bookingRepository,
		associationRepository,
		hasher,
		txMgr,
		metricsCollector,
		publisher,
		clock,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		roomRepository,
		rules,
		clock,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	getCalendarBookings := getCalendarBookingsHandler.NewHandler(bookingSvc, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getRooms := getRoomsHandler.NewHandler(bookingSvc, log)
	listAssociations := listAssociationsHandler.NewHandler(associationSvc, log)
	createAssociation := createAssociationHandler.NewHandler(associationSvc, log)
	deleteAssociation := deleteAssociationHandler.NewHandler(associationSvc, log)
	updateAssociationPassword := updateAssociationPasswordHandler.NewHandler(associationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Комнаты ---
	protected.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// /bookings/history регистрируем раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings/history", getBookingHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", getCalendarBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("/associations").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("", listAssociations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("", createAssociation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/{associationId}", deleteAssociation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/{associationId}/password", updateAssociationPassword.Handle).Methods(http.MethodPut)

	// CORS для веб-клиента
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
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
