// Package server assembles the gophauth server: storage, code delivery,
// services and the HTTP and gRPC front ends, and runs them until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/codegen"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/httpx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/codes"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/server/transport"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"github.com/dmitrijs2005/gophauth/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const serviceName = "gophauth"

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger

	db    *sql.DB
	redis *redis.Client

	registration *services.RegistrationService
	login        *services.LoginService
	handler      http.Handler

	shutdownTracing func(context.Context) error
}

// NewApp opens storage, applies migrations and wires the services. The
// caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	shutdown, err := telemetry.Setup(ctx, serviceName, c.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}
	app.shutdownTracing = shutdown

	rm, err := repomanager.NewRepositoryManager(c.DatabaseDriver)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}

	app.db, err = sql.Open(repomanager.SQLDriverName(c.DatabaseDriver), c.DatabaseDSN)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if c.DatabaseDriver == "sqlite" {
		// one writer at a time keeps modernc from returning SQLITE_BUSY
		app.db.SetMaxOpenConns(1)
	}

	if err := rm.RunMigrations(ctx, app.db); err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	codeRepo := rm.Codes(app.db)
	if c.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			app.Close(ctx)
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		codeRepo = codes.NewRedisRepository(app.redis)
	}

	sender, err := transport.New(transport.Config{
		Kind:         c.Transport,
		SMTPHost:     c.SMTPHost,
		SMTPPort:     c.SMTPPort,
		SMTPUser:     c.SMTPUser,
		SMTPPassword: c.SMTPPassword,
		SMTPFrom:     c.SMTPFrom,
		SMSEndpoint:  c.SMSEndpoint,
		SMSToken:     c.SMSToken,
	}, logger)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}

	mode, err := validation.ParseMode(c.IdentifierMode)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}

	deps := services.Deps{
		Codes:        codeRepo,
		Users:        rm.Users(app.db),
		Sender:       sender,
		Generator:    codegen.NewRandomGenerator(),
		Hasher:       cryptox.NewHasher(c.Hasher, c.HashPepper),
		Validator:    validation.NewValidator(mode, c.StrictLengths),
		CodeValidity: c.CodeValidityDuration,
		Logger:       logger,
	}
	app.registration = services.NewRegistrationService(deps)
	app.login = services.NewLoginService(deps)

	registry := prometheus.NewRegistry()
	app.handler = httpx.NewRouter(logger, app.registration, app.login, mode, app.health, registry)

	return app, nil
}

// Handler returns the HTTP API.
func (app *App) Handler() http.Handler {
	return app.handler
}

func (app *App) health(ctx context.Context) error {
	if err := app.db.PingContext(ctx); err != nil {
		return err
	}
	if app.redis != nil {
		return app.redis.Ping(ctx).Err()
	}
	return nil
}

// Close releases storage connections and flushes pending spans.
func (app *App) Close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close", "error", err)
		}
	}
	if app.shutdownTracing != nil {
		if err := app.shutdownTracing(ctx); err != nil {
			app.logger.Warn(ctx, "tracing shutdown", "error", err)
		}
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           app.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.registration, app.login)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or a
// listener fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
}
