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
	"github.com/rs/cors"

	cancelReservationHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/cancel_reservation"
	createBlockBookingHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/create_block_booking"
	createHotelHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/create_hotel"
	createReservationHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/create_room"
	generateReportHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/generate_report"
	getConfirmationPDFHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/get_confirmation_pdf"
	getHotelHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/get_hotel"
	getHotelReservationsHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/get_hotel_reservations"
	getReservationHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/get_user_reservations"
	listHotelsHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/list_hotels"
	listRoomsHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/list_rooms"
	quoteBlockBookingHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/quote_block_booking"
	searchAvailableRoomsHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/search_available_rooms"
	updateHotelHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/update_hotel"
	updateReservationStatusHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/update_reservation_status"
	updateRoomHandler "github.com/m04kA/SMC-HotelReservations/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelReservations/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservations/internal/config"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
	blockBookingRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/blockbooking"
	hotelRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelReservations/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
	hotelsService "github.com/m04kA/SMC-HotelReservations/internal/service/hotels"
	reservationsService "github.com/m04kA/SMC-HotelReservations/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-HotelReservations/internal/service/rooms"
	createBlockBookingUC "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_block_booking"
	createReservationUC "github.com/m04kA/SMC-HotelReservations/internal/usecase/create_reservation"
	generateReportUC "github.com/m04kA/SMC-HotelReservations/internal/usecase/generate_report"
	quoteBlockBookingUC "github.com/m04kA/SMC-HotelReservations/internal/usecase/quote_block_booking"
	searchAvailableRoomsUC "github.com/m04kA/SMC-HotelReservations/internal/usecase/search_available_rooms"
	"github.com/m04kA/SMC-HotelReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservations/pkg/logger"
	"github.com/m04kA/SMC-HotelReservations/pkg/metrics"
	"github.com/m04kA/SMC-HotelReservations/pkg/txmanager"
)

// database источник запросов и транзакций для репозиториев и transaction manager
type database interface {
	dbmetrics.DBExecutor
	dbmetrics.TxBeginner
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("HOTEL_CONFIG_PATH"); p != "" {
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

	log.Info("Starting SMC-HotelReservations...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Обёртка с метриками или без
	var conn database
	if cfg.Metrics.Enabled {
		conn = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		conn = dbmetrics.NewPlainDB(db)
	}
	txMgr := txmanager.NewTransactionManager(conn)

	// Инициализируем репозитории
	hotelRepository := hotelRepo.NewRepository(conn)
	roomRepository := roomRepo.NewRepository(conn)
	reservationRepository := reservationRepo.NewRepository(conn)
	blockBookingRepository := blockBookingRepo.NewRepository(conn)

	renderer := pdf.NewRenderer(cfg.Metrics.ServiceName)

	// Групповая скидка по умолчанию, отель может переопределить
	blockDefaults := pricing.Config{
		MinimumRooms:       cfg.BlockBooking.MinimumRooms,
		DiscountPercentage: cfg.BlockBooking.DiscountPercentage,
	}
	if err := blockDefaults.Validate(); err != nil {
		log.Fatal("Invalid block booking config: %v", err)
	}
	log.Info("Block pricing defaults: minimum_rooms=%d, discount=%.2f%%, max_rooms=%d",
		blockDefaults.MinimumRooms, blockDefaults.DiscountPercentage, cfg.BlockBooking.MaxRooms)

	// Инициализируем сервисы
	hotelSvc := hotelsService.NewService(hotelRepository, blockDefaults, log)
	roomSvc := roomsService.NewService(roomRepository, hotelRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, hotelRepository, renderer, log)

	// Инициализируем use cases
	searchAvailableRoomsUseCase := searchAvailableRoomsUC.NewUseCase(
		hotelRepository,
		roomRepository,
		reservationRepository,
		metricsCollector,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		hotelRepository,
		roomRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)

	quoteBlockBookingUseCase := quoteBlockBookingUC.NewUseCase(
		hotelRepository,
		roomRepository,
		reservationRepository,
		blockDefaults,
		cfg.BlockBooking.MaxRooms,
		metricsCollector,
		log,
	)

	createBlockBookingUseCase := createBlockBookingUC.NewUseCase(
		hotelRepository,
		roomRepository,
		reservationRepository,
		blockBookingRepository,
		txMgr,
		blockDefaults,
		cfg.BlockBooking.MaxRooms,
		metricsCollector,
		log,
	)

	generateReportUseCase := generateReportUC.NewUseCase(
		hotelRepository,
		roomRepository,
		reservationRepository,
		renderer,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listHotels := listHotelsHandler.NewHandler(hotelSvc, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	createHotel := createHotelHandler.NewHandler(hotelSvc, log)
	updateHotel := updateHotelHandler.NewHandler(hotelSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	searchAvailableRooms := searchAvailableRoomsHandler.NewHandler(searchAvailableRoomsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getConfirmationPDF := getConfirmationPDFHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getHotelReservations := getHotelReservationsHandler.NewHandler(reservationSvc, log)
	quoteBlockBooking := quoteBlockBookingHandler.NewHandler(quoteBlockBookingUseCase, log)
	createBlockBooking := createBlockBookingHandler.NewHandler(createBlockBookingUseCase, log)
	generateReport := generateReportHandler.NewHandler(generateReportUseCase, log)

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

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled for public routes: rps=%.1f, burst=%d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Каталог отелей
	public.HandleFunc("/hotels", listHotels.Handle).Methods(http.MethodGet)
	public.HandleFunc("/hotels/{hotelId}", getHotel.Handle).Methods(http.MethodGet)

	// Поиск свободных номеров
	public.HandleFunc("/hotels/{hotelId}/available-rooms", searchAvailableRooms.Handle).Methods(http.MethodGet)

	// Расчет стоимости групповой брони
	public.HandleFunc("/hotels/{hotelId}/block-bookings/quote", quoteBlockBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/confirmation.pdf", getConfirmationPDF.Handle).Methods(http.MethodGet)

	// История бронирований гостя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление отелем (для менеджеров) ---
	protected.HandleFunc("/hotels", createHotel.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}", updateHotel.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/hotels/{hotelId}/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/hotels/{hotelId}/reservations", getHotelReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{hotelId}/reports/{kind}", generateReport.Handle).Methods(http.MethodGet)

	// --- Групповые брони (агентства) ---
	protected.HandleFunc("/hotels/{hotelId}/block-bookings", createBlockBooking.Handle).Methods(http.MethodPost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
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
