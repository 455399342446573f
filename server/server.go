package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"SecureEHealth/config"
	"SecureEHealth/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Config *config.Config
	Log    *logrus.Logger

	MongoEnabled     bool
	CacheEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context, deps *Deps) error

	JobsEnabled bool
	JobsHandler func(ctx context.Context, deps *Deps) error

	WebServerPreHandler func(r *gin.Engine, deps *Deps)
}

// GetDefaultOptions turns everything on and takes the port and toggles from cfg.
func GetDefaultOptions(cfg *config.Config) Options {
	return Options{
		Config:           cfg,
		MongoEnabled:     true,
		CacheEnabled:     cfg.CacheEnabled(),
		WebServerEnabled: true,
		WebServerPort:    cfg.Port,
		MigrationEnabled: cfg.MigrationsEnabled,
		JobsEnabled:      cfg.JobsEnabled,
	}
}

/*
* Build dependencies, run migrations, then jobs
* Serve until SIGINT or SIGTERM and shut down gracefully
 */
func Start(opts Options) error {
	if opts.Config == nil {
		return errors.New("server: config is required")
	}
	log := opts.Log
	if log == nil {
		log = config.NewLogger(opts.Config)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := Bootstrap(ctx, opts.Config, log, opts.MongoEnabled, opts.CacheEnabled)
	if err != nil {
		return err
	}
	defer deps.Close(context.Background())

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx, deps); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		if err := opts.JobsHandler(ctx, deps); err != nil {
			return fmt.Errorf("jobs: %w", err)
		}
	}
	if !opts.WebServerEnabled {
		return nil
	}

	srv := &http.Server{
		Addr:              ":" + opts.WebServerPort,
		Handler:           NewEngine(opts, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go deps.Limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", opts.WebServerPort).WithField("env", opts.Config.Env).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server shutdown complete")
	return nil
}

// NewEngine builds the gin engine with recovery and request logging, then hands it to the pre-handler.
func NewEngine(opts Options, deps *Deps) *gin.Engine {
	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r, deps)
	}
	return r
}
