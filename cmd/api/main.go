// @title TestForge API
// @version 1.0
// @description Generates classroom quizzes from lesson text and exports them as Word documents.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"testforge/internal/adapter"
	"testforge/internal/adapter/docx"
	"testforge/internal/adapter/quizgen"
	"testforge/internal/config"
	"testforge/internal/domain"
	"testforge/internal/handler"
	"testforge/internal/logger"
	"testforge/internal/middleware"
	"testforge/internal/service"

	_ "testforge/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	counterStore, closeCounters, err := adapter.NewCounterStore(ctx, cfg.Counter, cfg.Redis)
	if err != nil {
		appLogger.Fatal("Unsupported counter backend", zap.String("backend", cfg.Counter.Backend), zap.Error(err))
	}
	defer func() {
		if err := closeCounters(); err != nil {
			appLogger.Warn("Failed to close counter store", zap.Error(err))
		}
	}()
	appLogger.Info("Counter store initialized", zap.String("backend", cfg.Counter.Backend))

	// A missing credential is not fatal: the server still exports and reports
	// stats, and generation answers with a configuration error.
	var generator domain.QuizGenerator
	_, credentialName := cfg.Generation.Credential()
	generator, err = quizgen.New(ctx, cfg.Generation, appLogger)
	switch {
	case errors.Is(err, quizgen.ErrMissingCredential):
		appLogger.Warn("Generation service credential is not configured", zap.String("credential", credentialName))
		generator = nil
	case err != nil:
		appLogger.Fatal("Failed to initialize quiz generator", zap.String("provider", cfg.Generation.Provider), zap.Error(err))
	default:
		appLogger.Info("Quiz generator initialized", zap.String("provider", cfg.Generation.Provider))
	}

	usageService := service.NewUsageService(counterStore, cfg.Counter.BucketTTL)
	quizService := service.NewQuizService(generator, usageService, credentialName)
	exportService := service.NewExportService(docx.NewRenderer(), cfg.Export)
	quizHandler := handler.NewQuizHandler(quizService, exportService, usageService)
	if pinger, ok := counterStore.(handler.Pinger); ok {
		quizHandler.WithCounterHealth(pinger)
	}

	app := fiber.New(fiber.Config{
		AppName:      "TestForge",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: "Content-Disposition," + middleware.RequestIDHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, cfg.Server.BasePath, quizHandler)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("base_path", cfg.Server.BasePath),
			zap.String("env", cfg.Logger.Env),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
