package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-medical-assistant/config"
	deliveryHttp "ai-medical-assistant/internal/delivery/http"
	"ai-medical-assistant/internal/delivery/http/handler"
	"ai-medical-assistant/internal/delivery/http/middleware"
	"ai-medical-assistant/internal/gateway/assistant"
	"ai-medical-assistant/internal/gateway/scheduler"
	"ai-medical-assistant/internal/usecase"
	"ai-medical-assistant/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
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

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize all layers
	server := initializeServer(cfg)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize upstream gateways
	assistantClient := assistant.NewClient(cfg.Assistant)
	schedulerClient := scheduler.NewClient(cfg.Scheduler)
	booker := scheduler.NewSimulatedBooker()

	// Initialize controllers
	directoryLoader := usecase.NewDirectoryLoader(schedulerClient, log)
	consultationManager := usecase.NewConsultationManager(assistantClient, log)
	schedulingManager := usecase.NewSchedulingManager(schedulerClient, booker, directoryLoader, log)

	// Initialize handlers
	consultationHandler := handler.NewConsultationHandler(consultationManager, customValidator)
	scheduleHandler := handler.NewScheduleHandler(schedulingManager, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryLoader)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(consultationHandler, scheduleHandler, directoryHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
