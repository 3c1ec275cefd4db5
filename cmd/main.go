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

	cancelBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/create_booking"
	getAvailableRoomsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_bookings"
	getDepartmentBookingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_department_bookings"
	getEmployeeBookingsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_employee_bookings"
	getRoomScheduleHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_room_schedule"
	getRoomsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_rooms"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	personnelServiceClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/personnelservice"
	bookingsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_available_rooms"
	getRoomScheduleUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/txmanager"
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

	log.Info("Starting SMC-MeetingRoomService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента PersonnelService
	personnelClient := personnelServiceClient.NewClient(
		cfg.PersonnelService.URL,
		time.Duration(cfg.PersonnelService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PersonnelService=%s timeout=%ds)",
		cfg.PersonnelService.URL, cfg.PersonnelService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Часовой пояс для legacy формата времени и расчета сетки слотов
	serviceLocation := time.FixedZone(
		fmt.Sprintf("UTC%+d", cfg.Booking.UTCOffsetHours),
		cfg.Booking.UTCOffsetHours*3600,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, personnelClient, log)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		personnelClient,
		txMgr,
		log,
	)

	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)

	getRoomScheduleUseCase := getRoomScheduleUC.NewUseCase(
		roomRepository,
		bookingRepository,
		getRoomScheduleUC.SlotConfig{
			SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
			BusinessHoursStart:  cfg.Booking.BusinessHoursStart,
			BusinessHoursEnd:    cfg.Booking.BusinessHoursEnd,
			Location:            serviceLocation,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getRoomScheduleUseCase, serviceLocation, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getEmployeeBookings := getEmployeeBookingsHandler.NewHandler(bookingSvc, log)
	getDepartmentBookings := getDepartmentBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог переговорных комнат
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Свободные комнаты на интервал
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Сетка расписания комнаты на день
	api.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Employee-Code header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования (мягкое удаление с причиной)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований сотрудника
	protected.HandleFunc("/employees/{employeeCode}/bookings", getEmployeeBookings.Handle).Methods(http.MethodGet)

	// --- Для менеджеров ---
	// Бронирования отдела
	protected.HandleFunc("/departments/{departmentId}/bookings", getDepartmentBookings.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
