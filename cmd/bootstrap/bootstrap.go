package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-triage/config"
	deliveryHttp "doctor-triage/internal/delivery/http"
	"doctor-triage/internal/delivery/http/handler"
	"doctor-triage/internal/delivery/http/middleware"
	"doctor-triage/internal/infrastructure/cache"
	"doctor-triage/internal/infrastructure/database"
	"doctor-triage/internal/infrastructure/llm"
	"doctor-triage/internal/repository"
	"doctor-triage/internal/service"
	"doctor-triage/internal/usecase"
	"doctor-triage/pkg/retry"
	"doctor-triage/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := NewLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database migrated successfully")
	}

	// Redis only backs the triage cache, so the service runs without it
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warnf("Failed to connect to Redis, triage cache disabled: %+v", err)
		} else {
			app.RedisClient = redisClient
			log.Info("Redis connected successfully")
		}
	}

	server, err := initializeServer(cfg, db, app.RedisClient, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// NewLogger builds the JSON logrus logger shared by every layer.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// StorageRetryConfig maps the storage settings onto the retry policy.
func StorageRetryConfig(cfg config.StorageConfig) retry.Config {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = cfg.RetryAttempts
	if cfg.RetryInitialDelay > 0 {
		retryCfg.InitialDelay = cfg.RetryInitialDelay
	}
	return retryCfg
}

// newCompletionClient returns nil when no API key is configured or the
// provider cannot be set up; classification then uses the rules only.
func newCompletionClient(cfg config.LLMConfig, log *logrus.Logger) service.CompletionClient {
	if !cfg.Enabled() {
		log.Info("No LLM API key configured, using rule-based triage")
		return nil
	}

	client, err := llm.NewOpenAIClient(cfg)
	if err != nil {
		log.Warnf("Failed to initialize LLM client, using rule-based triage: %+v", err)
		return nil
	}
	return client
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()

	// Initialize services
	ruleClassifier := service.NewRuleClassifier()
	llmClassifier, err := service.NewLLMClassifier(newCompletionClient(cfg.LLM, log), ruleClassifier, cfg.LLM.Timeout, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}

	var triageCache service.TriageCache
	if redisClient != nil {
		triageCache = service.NewRedisTriageCache(redisClient, cfg.Triage.CacheTTL)
	}

	// Initialize usecases
	retryCfg := StorageRetryConfig(cfg.Storage)
	triageUsecase := usecase.NewTriageUsecase(log, llmClassifier, triageCache)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, retryCfg)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, doctorRepo, retryCfg)

	// Initialize handlers
	triageHandler := handler.NewTriageHandler(triageUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(triageHandler, doctorHandler, hospitalHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

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
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
