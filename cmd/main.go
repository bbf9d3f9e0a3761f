package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	addCommentHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/add_comment"
	createBookingHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_booking"
	createItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_item"
	createRequestHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_request"
	createUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_user"
	deleteItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/delete_item"
	deleteUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/delete_user"
	editBookingStatusHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/edit_booking_status"
	getAllRequestsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_all_requests"
	getBookingHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_booking"
	getItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_item"
	getOwnerBookingsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_owner_bookings"
	getOwnerItemsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_owner_items"
	getRequestHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_request"
	getUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_user_bookings"
	getUserRequestsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_user_requests"
	getUsersHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_users"
	searchItemsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/search_items"
	updateItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/update_item"
	updateUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/config"
	bookingsService "github.com/m04kA/SMC-ShareItService/internal/service/bookings"
	requestsService "github.com/m04kA/SMC-ShareItService/internal/service/itemrequests"
	itemsService "github.com/m04kA/SMC-ShareItService/internal/service/items"
	usersService "github.com/m04kA/SMC-ShareItService/internal/service/users"
	addCommentUC "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
	createBookingUC "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/metrics"
	"github.com/m04kA/SMC-ShareItService/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SHAREIT_CONFIG"); p != "" {
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

	log.Info("Starting SMC-ShareItService...")
	log.Info("Configuration loaded from %s", configPath)

	// Трассировка
	shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Metrics.ServiceName,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Tracing.Environment,
		Exporter:       cfg.Tracing.Exporter,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SamplerRatio:   cfg.Tracing.SamplerRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	var store *storage
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store = newMemoryStorage()
		log.Info("Using in-memory storage")
	default:
		store, err = newPostgresStorage(cfg.Database, metricsCollector, log)
		if err != nil {
			log.Fatal("Failed to initialize database: %v", err)
		}
	}
	defer store.shutdown()

	// Интерфейс получателя переходов статусов не должен содержать typed nil
	var transitions bookingsService.TransitionRecorder
	if metricsCollector != nil {
		transitions = metricsCollector
	}

	// Инициализируем сервисы
	userSvc := usersService.NewService(store.users, log)
	itemSvc := itemsService.NewService(store.items, store.users, store.bookings, store.comments, store.requests, log)
	bookingSvc := bookingsService.NewService(store.bookings, store.users, store.tx, transitions, log)
	requestSvc := requestsService.NewService(store.requests, store.items, store.users, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(store.bookings, store.items, store.users, store.tx, log)
	addCommentUseCase := addCommentUC.NewUseCase(store.comments, store.bookings, store.items, store.users, log)

	pageSize := cfg.Pagination.DefaultSize

	// Инициализируем handlers
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createItem := createItemHandler.NewHandler(itemSvc, log)
	updateItem := updateItemHandler.NewHandler(itemSvc, log)
	getItem := getItemHandler.NewHandler(itemSvc, log)
	getOwnerItems := getOwnerItemsHandler.NewHandler(itemSvc, log)
	searchItems := searchItemsHandler.NewHandler(itemSvc, log)
	deleteItem := deleteItemHandler.NewHandler(itemSvc, log)
	addComment := addCommentHandler.NewHandler(addCommentUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBookingStatus := editBookingStatusHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, pageSize, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, pageSize, log)

	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)
	getUserRequests := getUserRequestsHandler.NewHandler(requestSvc, log)
	getAllRequests := getAllRequestsHandler.NewHandler(requestSvc, pageSize, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		log.Info("Rate limit enabled: rps=%.1f, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// ============================================================
	// PUBLIC ROUTES (без X-Sharer-User-Id)
	// ============================================================

	public := r.PathPrefix("/users").Subrouter()
	if limiter != nil {
		// Лимит по IP клиента
		public.Use(limiter.Middleware)
	}

	public.HandleFunc("", createUser.Handle).Methods(http.MethodPost)
	public.HandleFunc("", getUsers.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{userId}", getUser.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	public.HandleFunc("/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Sharer-User-Id header)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	if limiter != nil {
		// После Auth лимит считается по проверенному ID пользователя
		protected.Use(limiter.Middleware)
	}

	// --- Вещи ---
	protected.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/items", getOwnerItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/search", searchItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", updateItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}", deleteItem.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/items/{itemId}/comment", addComment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", editBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	protected.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests", getUserRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", getAllRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

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

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
