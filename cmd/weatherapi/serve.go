package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/swaggerversioning/config"
	"github.com/drblury/swaggerversioning/info"
	"github.com/drblury/swaggerversioning/probe"
	"github.com/drblury/swaggerversioning/weather"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the configuration")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	for _, w := range cfg.Warnings {
		logger.Warn("configuration", "warning", w)
	}

	a, err := newApp(cfg, logger, weather.NewForecaster())
	if err != nil {
		return err
	}

	readiness, cleanup, err := readinessChecks(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := a.handler(ctx, readiness...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "docs", cfg.Docs.BaseURL+"/swagger")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// readinessChecks builds the optional dependency probes. The returned
// cleanup releases any client opened for them.
func readinessChecks(ctx context.Context, cfg *config.Config) ([]info.ProbeFunc, func(), error) {
	checks := make([]info.ProbeFunc, 0, len(cfg.Readiness.HTTPTargets)+1)
	cleanup := func() {}

	if cfg.Readiness.MongoURI != "" {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Readiness.MongoURI))
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect mongo: %w", err)
		}
		checks = append(checks, probe.NewMongoPingProbe(client, readpref.Primary()))
		cleanup = func() {
			_ = client.Disconnect(context.Background())
		}
	}

	for _, target := range cfg.Readiness.HTTPTargets {
		checks = append(checks, probe.NewHTTPProbe(target, http.MethodGet, target))
	}
	return checks, cleanup, nil
}
