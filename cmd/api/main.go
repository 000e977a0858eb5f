package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/config"
	"github.com/studentdesk/studentdesk-go/internal/crypto"
	"github.com/studentdesk/studentdesk-go/internal/events"
	"github.com/studentdesk/studentdesk-go/internal/handler"
	"github.com/studentdesk/studentdesk-go/internal/logger"
	"github.com/studentdesk/studentdesk-go/internal/repository"
	"github.com/studentdesk/studentdesk-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", false)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	migrateDirection := migrateCmd.String("direction", "up", "direction of migration (up/down)")

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			migrateCmd.Parse(os.Args[2:])
			runMigrations(log, cfg.Database, *migrateDirection)
			return
		}
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runMigrations(log zerolog.Logger, cfg config.DatabaseConfig, direction string) {
	if err := repository.RunMigrations(cfg, direction); err != nil {
		log.Fatal().Err(err).Str("direction", direction).Msg("migration failed")
	}
	log.Info().Str("direction", direction).Msg("migrations applied")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := repository.RunMigrations(cfg.Database, "up"); err != nil {
			return err
		}
	}

	db, err := repository.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher := newPublisher(cfg.RabbitMQ, log)
	defer publisher.Close()

	tokens := crypto.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiry)
	hasher := crypto.NewPasswordHasher(crypto.DefaultHashParams())

	authService := service.NewAuthService(repository.NewUserRepository(db), hasher, log)
	studentService := service.NewStudentService(repository.NewStudentRepository(db), publisher, log)

	router := handler.NewRouter(
		ctx,
		cfg,
		log,
		tokens,
		handler.NewAuthHandler(authService, tokens, log),
		handler.NewStudentHandler(studentService, log),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", cfg.Server.Address).
			Str("env", cfg.Env).
			Str("driver", cfg.Database.Driver).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// newPublisher connects to RabbitMQ when configured. The service keeps
// running without events if the broker is unreachable.
func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) events.Publisher {
	if cfg.URL == "" {
		return events.Noop{}
	}

	publisher, err := events.NewRabbitMQPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, student events disabled")
		return events.Noop{}
	}
	return publisher
}
