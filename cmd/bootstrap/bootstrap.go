package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-clinic-gateway/config"
	deliveryHttp "smart-clinic-gateway/internal/delivery/http"
	"smart-clinic-gateway/internal/delivery/http/handler"
	"smart-clinic-gateway/internal/delivery/http/middleware"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/infrastructure/cache"
	"smart-clinic-gateway/internal/infrastructure/database"
	"smart-clinic-gateway/internal/infrastructure/metrics"
	repoImpl "smart-clinic-gateway/internal/repository"
	"smart-clinic-gateway/internal/service"
	"smart-clinic-gateway/internal/usecase"
	"smart-clinic-gateway/pkg/jwt"
	"smart-clinic-gateway/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Stores      *usecase.ScheduleStoreRegistry
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Audit trail database is optional
	if cfg.DB.Enabled() {
		db, err := database.NewPostgresConnection(cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		app.DB = db
	} else {
		log.Warn("DB_HOST not set, audit trail disabled")
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = app.initializeServer()

	return app, nil
}

// setupLogger configures a JSON logrus logger at the configured level.
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg, log := app.Config, app.Log

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	gatewayMetrics := metrics.NewGatewayMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Remote clinic API
	backendClient := backend.NewClient(cfg.Backend, log, gatewayMetrics)
	authRepo := backend.NewAuthRepository(backendClient)
	doctorRepo := backend.NewDoctorRepository(backendClient)
	clinicRepo := backend.NewClinicRepository(backendClient)
	scheduleRepo := backend.NewScheduleRepository(backendClient)
	appointmentRepo := backend.NewAppointmentRepository(backendClient)
	patientRepo := backend.NewPatientRepository(backendClient)

	// Gateway-local state
	sessionRepo := repoImpl.NewSessionRepository(app.RedisClient)

	// Left as a nil interface when the audit trail is off
	var auditLogRepo repository.AuditLogRepository
	if app.DB != nil {
		auditLogRepo = repoImpl.NewAuditLogRepository(app.DB)
	}
	auditService := service.NewAuditService(log, auditLogRepo)

	resolver := service.NewAvailabilityResolver(time.Now)
	app.Stores = usecase.NewScheduleStoreRegistry(log, scheduleRepo, gatewayMetrics)

	// Usecases
	submitter := usecase.NewBookingSubmitter(log, customValidator, resolver, appointmentRepo, auditService, gatewayMetrics, cfg.Booking.MinReasonLength)
	bookingUsecase := usecase.NewBookingUsecase(log, app.Stores, resolver, submitter)
	authUsecase := usecase.NewAuthUsecase(log, authRepo, clinicRepo, sessionRepo, jwtService, app.Stores, auditService, cfg.Auth.DefaultRole)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, clinicRepo, backendClient, auditService)
	doctorScheduleUsecase := usecase.NewDoctorScheduleUsecase(log, scheduleRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(log, patientRepo, sessionRepo, backendClient, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	doctorScheduleHandler := handler.NewDoctorScheduleHandler(doctorScheduleUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	router := deliveryHttp.NewRouter(
		authHandler,
		bookingHandler,
		doctorHandler,
		doctorScheduleHandler,
		appointmentHandler,
		patientHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		metricsHandler,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		app.Log.Infof("Clinic backend: %s", app.Config.Backend.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background work and closes all connections
func (app *App) Close() {
	if app.Stores != nil {
		app.Stores.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
