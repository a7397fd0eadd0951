package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trustkeyper/Backend/config"
	"github.com/trustkeyper/Backend/controller"
	_ "github.com/trustkeyper/Backend/docs" // Import for swagger
	"github.com/trustkeyper/Backend/handler"
	"github.com/trustkeyper/Backend/migrations"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/repository"
	"github.com/trustkeyper/Backend/service"
	"github.com/trustkeyper/Backend/validator"

	"github.com/redis/go-redis/v9"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
)

// @title TrustKeyper Backend API
// @version 1.0
// @description A backend service for email OTP verification and form submission recording
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:5000
// @BasePath /
// @schemes http https
func main() {
	// Load .env if present; real environment always wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Mode)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Infow("Starting TrustKeyper Backend",
		"version", "1.0.0",
		"port", cfg.HTTPServer.Port,
		"otp_store", cfg.OTP.Store,
		"log_level", cfg.Logger.Level,
		"log_mode", cfg.Logger.Mode,
	)

	// Connect to database
	db, err := connectDB(cfg)
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	log.Infow("Database connected successfully")

	// Run migrations
	if err := migrations.RunMigrations(db.DB, "./migrations"); err != nil {
		log.Fatalw("Failed to run database migrations", "error", err)
	}

	log.Infow("Database migrations completed successfully")

	// Choose the OTP store backend
	otpStore, closeStore, err := buildOTPStore(cfg, log)
	if err != nil {
		log.Fatalw("Failed to initialize OTP store", "store", cfg.OTP.Store, "error", err)
	}
	defer closeStore()

	// Initialize validator
	v := validator.New()

	// Initialize repositories and services
	formRepo := repository.NewFormRepository(db)
	mailer := service.NewSMTPMailer(cfg, log)
	otpService := service.NewOTPService(otpStore, mailer, cfg, log)
	formService := service.NewFormService(formRepo, mailer, cfg, log)

	// Initialize controllers
	otpController := controller.NewOTPController(otpService, v, log)
	formController := controller.NewFormController(formService, v, log)
	healthController := controller.NewHealthController()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Register routes
	handler.RegisterRoutes(e, otpController, formController, healthController, cfg, log)

	// Start expiry sweep in background
	go startCleanupRoutine(otpService, cfg.OTP.SweepInterval, log)

	// Start server in a goroutine
	serverAddr := fmt.Sprintf(":%d", cfg.HTTPServer.Port)
	go func() {
		log.Infow("Starting HTTP server", "address", serverAddr)
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Infow("Shutting down server gracefully...")

	// Create a deadline for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Application.GracefulShutdownTimeout)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Failed to shutdown server gracefully", "error", err)
		os.Exit(1)
	}

	log.Infow("Server shutdown completed successfully")
}

func connectDB(cfg *config.Config) (*sqlx.DB, error) {
	connStr := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	// Retry connection up to 30 times with 1 second delay
	for i := 0; i < 30; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
			db.Close()
		}

		if i == 0 {
			fmt.Printf("Waiting for database to be ready...\n")
		}
		time.Sleep(1 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// buildOTPStore constructs the configured OTP store backend and returns a
// close func for any connection it holds
func buildOTPStore(cfg *config.Config, log *logger.Logger) (repository.OTPStore, func(), error) {
	if cfg.OTP.Store == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		log.Infow("Redis connected successfully", "host", cfg.Redis.Host, "port", cfg.Redis.Port)
		return repository.NewRedisOTPStore(redisClient, log), func() { redisClient.Close() }, nil
	}

	return repository.NewMemoryOTPStore(), func() {}, nil
}

// startCleanupRoutine runs periodic eviction of expired OTP codes
func startCleanupRoutine(otpService service.OTPService, interval time.Duration, logger *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := otpService.CleanupExpiredOTPs(); err != nil {
			logger.Errorw("Failed to cleanup expired OTPs", "error", err)
		} else {
			logger.Debugw("Cleanup routine completed successfully")
		}
	}
}
