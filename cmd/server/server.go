package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"parley-server/chat-api/internal/config"
	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/domain/user"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/infrastructure/database"
	"parley-server/chat-api/internal/infrastructure/inference"
	"parley-server/chat-api/internal/infrastructure/logger"
	"parley-server/chat-api/internal/infrastructure/observability"
	filerepo "parley-server/chat-api/internal/infrastructure/repository/file"
	messagerepo "parley-server/chat-api/internal/infrastructure/repository/message"
	userrepo "parley-server/chat-api/internal/infrastructure/repository/user"
	"parley-server/chat-api/internal/interfaces/httpserver"
)

// @title Parley Chat API
// @version 1.0
// @description Chat backend that assembles conversation context, generates assistant replies, and manages file attachments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	messageRepository := messagerepo.NewRepository(db)
	fileRepository := filerepo.NewRepository(db)
	userRepository := userrepo.NewRepository(db)

	generator := inference.NewClient(inference.Config{
		BaseURL: cfg.InferenceBaseURL,
		APIKey:  cfg.InferenceAPIKey,
		Model:   cfg.InferenceModel,
		Timeout: cfg.InferenceTimeout,
	})

	fileService := file.NewService(fileRepository, generator, log)
	userService := user.NewService(userRepository, log)
	chatService := chat.NewAssembler(messageRepository, fileRepository, generator, log)

	httpServer := httpserver.New(cfg, log, chatService, fileService, userService, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
