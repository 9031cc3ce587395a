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

	cancelAppointmentHandler "github.com/clickcy/clickbarber/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_appointment"
	createClientHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_client"
	createProductHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_product"
	createProfessionalHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_professional"
	createSaleHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_sale"
	createServiceHandler "github.com/clickcy/clickbarber/internal/api/handlers/create_service"
	deactivateProfessionalHandler "github.com/clickcy/clickbarber/internal/api/handlers/deactivate_professional"
	getAppointmentHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_appointment"
	getAvailableTimesHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_available_times"
	getCatalogHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_catalog"
	getClientHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_client"
	getDayAgendaHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_day_agenda"
	getTodayStatsHandler "github.com/clickcy/clickbarber/internal/api/handlers/get_today_stats"
	listClientsHandler "github.com/clickcy/clickbarber/internal/api/handlers/list_clients"
	listProfessionalsHandler "github.com/clickcy/clickbarber/internal/api/handlers/list_professionals"
	updateAppointmentStatusHandler "github.com/clickcy/clickbarber/internal/api/handlers/update_appointment_status"
	updateClientHandler "github.com/clickcy/clickbarber/internal/api/handlers/update_client"
	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/api/middleware"
	"github.com/clickcy/clickbarber/internal/config"
	appointmentRepo "github.com/clickcy/clickbarber/internal/infra/storage/appointment"
	catalogRepo "github.com/clickcy/clickbarber/internal/infra/storage/catalog"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	saleRepo "github.com/clickcy/clickbarber/internal/infra/storage/sale"
	"github.com/clickcy/clickbarber/internal/integrations/notify"
	appointmentsService "github.com/clickcy/clickbarber/internal/service/appointments"
	catalogService "github.com/clickcy/clickbarber/internal/service/catalog"
	clientsService "github.com/clickcy/clickbarber/internal/service/clients"
	professionalsService "github.com/clickcy/clickbarber/internal/service/professionals"
	reportsService "github.com/clickcy/clickbarber/internal/service/reports"
	createAppointmentUC "github.com/clickcy/clickbarber/internal/usecase/create_appointment"
	createSaleUC "github.com/clickcy/clickbarber/internal/usecase/create_sale"
	getAvailableTimesUC "github.com/clickcy/clickbarber/internal/usecase/get_available_times"
	getDayAgendaUC "github.com/clickcy/clickbarber/internal/usecase/get_day_agenda"
	"github.com/clickcy/clickbarber/pkg/dbmetrics"
	"github.com/clickcy/clickbarber/pkg/logger"
	"github.com/clickcy/clickbarber/pkg/metrics"
	"github.com/clickcy/clickbarber/pkg/simpletxmanager"
	"github.com/clickcy/clickbarber/pkg/txmanager"
	"github.com/clickcy/clickbarber/pkg/types"
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

	log.Info("Starting ClickBarber...")
	log.Info("Configuration loaded from config.toml")

	// Рабочее окно дневной сетки
	window := agenda.TimeWindow{
		DayStart:    types.TimeString(cfg.Agenda.DayStart),
		DayEnd:      types.TimeString(cfg.Agenda.DayEnd),
		SlotMinutes: cfg.Agenda.SlotMinutes,
	}
	if err := window.Validate(); err != nil {
		log.Fatal("Invalid agenda window: %v", err)
	}
	log.Info("Agenda window: %s-%s, slot %d min", window.DayStart, window.DayEnd, window.SlotMinutes)

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

	// Инициализируем клиента сервиса уведомлений (если включен)
	var (
		svcNotifyClient appointmentsService.NotifyClient
		ucNotifyClient  createAppointmentUC.NotifyClient
	)
	if cfg.Notify.Enabled {
		notifyClient := notify.NewClient(
			cfg.Notify.URL,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		svcNotifyClient = notifyClient
		ucNotifyClient = notifyClient
		log.Info("Notification client initialized (URL=%s timeout=%ds)", cfg.Notify.URL, cfg.Notify.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		clientRepository       *clientRepo.Repository
		professionalRepository *professionalRepo.Repository
		catalogRepository      *catalogRepo.Repository
		saleRepository         *saleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		saleRepository = saleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		saleRepository = saleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		professionalRepository,
		svcNotifyClient,
		log,
	)
	clientSvc := clientsService.NewService(clientRepository, log)
	professionalSvc := professionalsService.NewService(professionalRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	reportSvc := reportsService.NewService(appointmentRepository, saleRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		professionalRepository,
		catalogRepository,
		ucNotifyClient,
		txMgr,
		window,
		log,
	)

	getDayAgendaUseCase := getDayAgendaUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		window,
		log,
	)

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		catalogRepository,
		window,
		log,
	)

	createSaleUseCase := createSaleUC.NewUseCase(
		saleRepository,
		catalogRepository,
		clientRepository,
		professionalRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getDayAgenda := getDayAgendaHandler.NewHandler(getDayAgendaUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	updateClient := updateClientHandler.NewHandler(clientSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(professionalSvc, log)
	deactivateProfessional := deactivateProfessionalHandler.NewHandler(professionalSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	createProduct := createProductHandler.NewHandler(catalogSvc, log)
	createSale := createSaleHandler.NewHandler(createSaleUseCase, log)
	getTodayStats := getTodayStatsHandler.NewHandler(reportSvc, log)

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

	// Сетка дня для публичной страницы расписания
	api.HandleFunc("/agenda", getDayAgenda.Handle).Methods(http.MethodGet)

	// Свободные времена профессионала на день
	api.HandleFunc("/professionals/{professionalId}/available-times",
		getAvailableTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)

	// --- Профессионалы ---
	protected.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professionalId}/deactivate",
		deactivateProfessional.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	protected.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/products", createProduct.Handle).Methods(http.MethodPost)

	// --- Касса ---
	protected.HandleFunc("/sales", createSale.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	protected.HandleFunc("/stats/today", getTodayStats.Handle).Methods(http.MethodGet)

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
