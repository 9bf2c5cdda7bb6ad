package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-admin/config"
	deliveryHttp "hospital-admin/internal/delivery/http"
	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/infrastructure/cache"
	"hospital-admin/internal/infrastructure/database"
	"hospital-admin/internal/repository"
	"hospital-admin/internal/service"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/validator"

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
	Server      *http.Server
}

// NewLogger builds the process logger: JSON to stdout at the configured level.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	caseRepo := repository.NewCaseRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	hospitalizationRepo := repository.NewHospitalizationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	statsRepo := repository.NewStatsRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	sessions := service.NewRedisSessionStore(redisClient, log)
	dashboardCache := service.NewRedisDashboardCache(redisClient, log, cfg.Query.DashboardCache)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	timeout := cfg.Query.Timeout
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorRepo, patientRepo, auditService, sessions, jwtService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, timeout)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, timeout)
	caseUsecase := usecase.NewCaseUsecase(db, log, caseRepo, timeout)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, timeout)
	hospitalizationUsecase := usecase.NewHospitalizationUsecase(db, log, hospitalizationRepo, timeout)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, timeout)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, statsRepo, dashboardCache, timeout)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	schemaUsecase := usecase.NewSchemaUsecase()

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		Registration: handler.NewRegistrationHandler(authUsecase, customValidator),
		Doctor:       handler.NewDoctorHandler(doctorUsecase),
		Patient:      handler.NewPatientHandler(patientUsecase),
		Record:       handler.NewRecordHandler(caseUsecase, appointmentUsecase, hospitalizationUsecase, prescriptionUsecase),
		Dashboard:    handler.NewDashboardHandler(dashboardUsecase),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
		Schema:       handler.NewSchemaHandler(schemaUsecase),
		Health: handler.NewHealthHandler(log, map[string]handler.Pinger{
			"postgres": handler.PingFunc(func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}),
			"redis": handler.PingFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}),
		}),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)

	// Initialize router
	router := deliveryHttp.NewRouter(log, handlers, authMiddleware, corsMiddleware, rateLimiter)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts down gracefully.
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				app.Log.Warnf("Failed to close database: %+v", err)
			}
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %+v", err)
		}
	}
}
