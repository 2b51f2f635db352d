package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"adboard/internal/config"
	"adboard/internal/handler"
	"adboard/internal/logger"
	"adboard/internal/repository"
	"adboard/internal/server"
	"adboard/internal/service"
	"adboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	stdlog "github.com/rs/zerolog/log"
)

// store bundles the repositories of whichever backend is configured
type store struct {
	users repository.UserRepository
	ads   repository.AdvertisementRepository
	ping  server.PingFunc
	close func()
}

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal().Err(err).Msg("failed to load config")
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		stdlog.Fatal().Err(err).Msg("failed to build logger")
	}
	if envErr != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}
	log = log.With().Str("env", cfg.Env).Logger()

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	st, err := openStore(ctx, cfg.Database, logger.Component(log, "database"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open store")
	}
	defer st.close()

	// --- Initialize Services ---
	hasher := utils.NewPasswordHasher(cfg.Security.BcryptCost)
	userService := service.NewUserService(st.users, hasher)
	advertisementService := service.NewAdvertisementService(st.ads, st.users)

	// --- Initialize Handlers ---
	userHandler := handler.NewUserHandler(userService, logger.Component(log, "users"))
	advertisementHandler := handler.NewAdvertisementHandler(advertisementService, logger.Component(log, "advertisements"))

	router := server.NewRouter(log, st.ping, userHandler, advertisementHandler)

	// --- Start Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.Database.Driver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful Shutdown ---
	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := config.OpenSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &store{
			users: repository.NewSQLiteUserRepository(db),
			ads:   repository.NewSQLiteAdvertisementRepository(db),
			ping:  db.PingContext,
			close: func() { db.Close() },
		}, nil

	default:
		pool, err := config.ConnectDB(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err := config.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			users: repository.NewUserRepository(pool),
			ads:   repository.NewAdvertisementRepository(pool),
			ping:  pool.Ping,
			close: pool.Close,
		}, nil
	}
}
