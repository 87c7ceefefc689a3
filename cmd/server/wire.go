//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parley-server/chat-api/internal/config"
	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/domain/llm"
	"parley-server/chat-api/internal/domain/message"
	"parley-server/chat-api/internal/domain/user"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/infrastructure/database"
	"parley-server/chat-api/internal/infrastructure/inference"
	"parley-server/chat-api/internal/infrastructure/logger"
	filerepo "parley-server/chat-api/internal/infrastructure/repository/file"
	messagerepo "parley-server/chat-api/internal/infrastructure/repository/message"
	userrepo "parley-server/chat-api/internal/infrastructure/repository/user"
	"parley-server/chat-api/internal/interfaces/httpserver"
)

var chatSet = wire.NewSet(
	messagerepo.NewRepository,
	wire.Bind(new(message.Repository), new(*messagerepo.Repository)),
	filerepo.NewRepository,
	wire.Bind(new(file.Repository), new(*filerepo.Repository)),
	userrepo.NewRepository,
	wire.Bind(new(user.Repository), new(*userrepo.Repository)),
	newGenerator,
	wire.Bind(new(llm.Generator), new(*inference.Client)),
	file.NewService,
	wire.Bind(new(file.Service), new(*file.ServiceImpl)),
	user.NewService,
	wire.Bind(new(user.Service), new(*user.ServiceImpl)),
	chat.NewAssembler,
	wire.Bind(new(chat.Service), new(*chat.Assembler)),
)

// BuildApplication demonstrates how to assemble the chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		chatSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

func newGenerator(cfg *config.Config) *inference.Client {
	return inference.NewClient(inference.Config{
		BaseURL: cfg.InferenceBaseURL,
		APIKey:  cfg.InferenceAPIKey,
		Model:   cfg.InferenceModel,
		Timeout: cfg.InferenceTimeout,
	})
}
