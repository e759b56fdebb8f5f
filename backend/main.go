package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eduplus/backend/config"
	"eduplus/backend/middleware"
	"eduplus/backend/repository"
	"eduplus/backend/routes"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg.LogMode)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()
	if !cfg.DotEnvLoaded {
		logger.Debug("no .env file, using environment only")
	}

	// Initialize database
	db, err := utils.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal("Error initializing database", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Auth event stream
	bus := newBus(cfg, logger)
	defer bus.Close()
	sessions := session.NewManager(repository.NewUserRepository(db), bus, cfg.SessionTTL, logger)
	if err := sessions.Start(ctx); err != nil {
		logger.Fatal("Error subscribing to auth events", "error", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EduPlus API",
		ErrorHandler: utils.ErrorHandler(logger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, sessions, logger)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	// Start server
	logger.Info("listening", "port", cfg.ServerPort, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func newBus(cfg *config.Config, logger *utils.Logger) session.Bus {
	if cfg.RedisAddr == "" {
		return session.NewMemoryBus()
	}
	bus, err := session.NewRedisBus(cfg.RedisAddr, cfg.RedisChannel, logger)
	if err != nil {
		logger.Warn("redis unavailable, auth events stay in process", "error", err)
		return session.NewMemoryBus()
	}
	return bus
}
