package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpServer "notekeep/internal/notekeep/adapters/http"
	kvrepo "notekeep/internal/notekeep/adapters/kv"
	pgrepo "notekeep/internal/notekeep/adapters/postgres"
	"notekeep/internal/notekeep/adapters/services"
	"notekeep/internal/notekeep/app"
	"notekeep/internal/notekeep/config"
	"notekeep/internal/notekeep/ports/repositories"
	"notekeep/pkg/db/postgres"
	"notekeep/pkg/kv"
	"notekeep/pkg/logger"
	"notekeep/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTEKEEP_LOGGER_MODE"
	EnvLoggerLevel = "NOTEKEEP_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectKVStore       = "failed to connect to key-value store"
	ErrConnectPostgres      = "failed to connect to Postgres"
	ErrRunMigrations        = "failed to run database migrations"
	ErrUnknownBackend       = "unknown storage backend"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notekeep service started"
	LogServiceShutdownDone = "notekeep service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitStorage         = "initializing storage"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

// migrationsPath - путь к файлам миграций относительно рабочей директории.
const migrationsPath = "file://migrations/notekeep"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		// Хранилище блобов нужно при любом бэкенде: в нем живут сессии.
		log.Info(ctx, LogInitStorage, zap.String("backend", cfg.Storage.Backend))
		store, err := kv.New(ctx, cfg.Redis.KVConfig())
		if err != nil {
			log.Error(ctx, ErrConnectKVStore, zap.Error(err))
			exitCode = 1
			return
		}
		kvFactory := kvrepo.NewRepositoryFactory(store)

		var (
			userRepo repositories.UserRepository
			noteRepo repositories.NoteRepository
			tagRepo  repositories.TagRepository
			database *postgres.Database
		)

		switch cfg.Storage.Backend {
		case config.BackendRedis:
			userRepo = kvFactory.UserRepository()
			noteRepo = kvFactory.NoteRepository()
			tagRepo = kvFactory.TagRepository()
		case config.BackendPostgres:
			if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
				log.Error(ctx, ErrRunMigrations, zap.Error(err))
				exitCode = 1
				return
			}
			database, err = postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
			if err != nil {
				log.Error(ctx, ErrConnectPostgres, zap.Error(err))
				exitCode = 1
				return
			}
			pgFactory := pgrepo.NewRepositoryFactory(database.Pool())
			userRepo = pgFactory.UserRepository()
			noteRepo = pgFactory.NoteRepository()
			tagRepo = pgFactory.TagRepository()
		default:
			log.Error(ctx, ErrUnknownBackend, zap.String("backend", cfg.Storage.Backend))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		svcFactory := services.NewServiceFactory(cfg.Session.SecretKey, cfg.Session.GetTokenTTL(), cfg.Session.BCryptCost)

		authUseCase := app.NewAuthUseCase(userRepo, kvFactory.SessionRepository(), svcFactory.PasswordService(), svcFactory.TokenService())
		noteUseCase := app.NewNoteUseCase(noteRepo, userRepo)
		tagUseCase := app.NewTagUseCase(tagRepo)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.GetReadTimeout(),
			WriteTimeout: cfg.HTTP.GetWriteTimeout(),
		})

		httpServer.SetupRouter(fiberApp, authUseCase, noteUseCase, tagUseCase)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие хранилища блобов.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing key-value store connection")
				return store.Close()
			},
			// Закрытие пула Postgres.
			func(ctx context.Context) error {
				if database != nil {
					database.Close(ctx)
				}
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
