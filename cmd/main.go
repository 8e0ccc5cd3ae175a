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

	createBookingHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/create_booking"
	decideBookingHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/decide_booking"
	getAvailableSlotsHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/get_customer_bookings"
	getFieldBookingsHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/get_field_bookings"
	getFieldRatingsHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/get_field_ratings"
	listNotificationsHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/list_notifications"
	markNotificationsReadHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/mark_notifications_read"
	sendNotificationHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/send_notification"
	submitRatingHandler "github.com/fieldbook/FieldBookingService/internal/api/handlers/submit_rating"
	"github.com/fieldbook/FieldBookingService/internal/api/middleware"
	"github.com/fieldbook/FieldBookingService/internal/config"
	bookingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/booking"
	notificationRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/notification"
	ratingRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/rating"
	slotRepo "github.com/fieldbook/FieldBookingService/internal/infra/storage/slot"
	fieldServiceClient "github.com/fieldbook/FieldBookingService/internal/integrations/fieldservice"
	bookingsService "github.com/fieldbook/FieldBookingService/internal/service/bookings"
	notificationsService "github.com/fieldbook/FieldBookingService/internal/service/notifications"
	ratingsService "github.com/fieldbook/FieldBookingService/internal/service/ratings"
	createBookingUC "github.com/fieldbook/FieldBookingService/internal/usecase/create_booking"
	decideBookingUC "github.com/fieldbook/FieldBookingService/internal/usecase/decide_booking"
	getAvailableSlotsUC "github.com/fieldbook/FieldBookingService/internal/usecase/get_available_slots"
	"github.com/fieldbook/FieldBookingService/pkg/dbmetrics"
	"github.com/fieldbook/FieldBookingService/pkg/logger"
	"github.com/fieldbook/FieldBookingService/pkg/metrics"
	"github.com/fieldbook/FieldBookingService/pkg/simpletxmanager"
	"github.com/fieldbook/FieldBookingService/pkg/txmanager"
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

	log.Info("Starting FieldBookingService...")
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

	// Инициализируем клиент каталога полей
	fieldClient := fieldServiceClient.NewClient(
		cfg.FieldService.URL,
		time.Duration(cfg.FieldService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FieldService=%s timeout=%ds)",
		cfg.FieldService.URL, cfg.FieldService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		slotRepository         *slotRepo.Repository
		notificationRepository *notificationRepo.Repository
		ratingRepository       *ratingRepo.Repository
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
		slotRepository = slotRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		ratingRepository = ratingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		ratingRepository = ratingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		fieldClient,
		log,
	)
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		bookingRepository,
		log,
	)
	ratingSvc := ratingsService.NewService(
		ratingRepository,
		fieldClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		notificationRepository,
		fieldClient,
		txMgr,
		log,
	)

	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		notificationRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		fieldClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	sendNotification := sendNotificationHandler.NewHandler(notificationSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationsRead := markNotificationsReadHandler.NewHandler(notificationSvc, log)
	submitRating := submitRatingHandler.NewHandler(ratingSvc, log)
	getFieldRatings := getFieldRatingsHandler.NewHandler(ratingSvc, log)

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

	// Получение доступных слотов площадки на дату
	api.HandleFunc("/fields/{fieldId}/grounds/{groundId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Оценки поля
	api.HandleFunc("/fields/{fieldId}/ratings", getFieldRatings.Handle).Methods(http.MethodGet)

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

	// Решение владельца по заявке на бронирование
	protected.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Бронирования поля (для владельца)
	protected.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	// Создание уведомления
	protected.HandleFunc("/notifications", sendNotification.Handle).Methods(http.MethodPost)

	// Список уведомлений получателя
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)

	// Отметка всех уведомлений прочитанными
	protected.HandleFunc("/notifications/read", markNotificationsRead.Handle).Methods(http.MethodPatch)

	// --- Оценки ---
	// Создание оценки поля
	protected.HandleFunc("/ratings", submitRating.Handle).Methods(http.MethodPost)

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
