package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/just-nibble/git-dashboard/internal/adapters/api"
	"github.com/just-nibble/git-dashboard/internal/adapters/storage"
	"github.com/just-nibble/git-dashboard/internal/http/handlers"
	"github.com/just-nibble/git-dashboard/internal/routes"
	"github.com/just-nibble/git-dashboard/internal/seeder"
	"github.com/just-nibble/git-dashboard/internal/usecases"
	pkglog "github.com/just-nibble/git-dashboard/pkg/log"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the token store
	tokens, closeStore, err := storage.NewTokenStore(ctx, cfg, pkglog.Component(logger, "storage"))
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("failed to close token store")
		}
	}()

	// Seed a development token if configured
	if err := seeder.SeedToken(ctx, tokens, cfg.Seed, pkglog.Component(logger, "seeder")); err != nil {
		return fmt.Errorf("failed to seed token: %w", err)
	}

	// Initialize the GitHub client factory
	clients, err := api.NewClientFactory(apiConfig(cfg))
	if err != nil {
		return err
	}

	ucLog := pkglog.Component(logger, "usecases")
	dashboard := usecases.NewDashboardUsecase(
		tokens,
		clients,
		usecases.NewCommitHistoryUsecase(ucLog, nil),
		usecases.NewRepositoryUsecase(ucLog),
		usecases.NewContributionUsecase(ucLog, nil),
		ucLog,
	)

	// Set up HTTP routes
	httpLog := pkglog.Component(logger, "http")
	router := routes.NewRouter(
		handlers.NewDashboardHandler(dashboard, cfg.HTTP.SignInURL, httpLog),
		handlers.NewAPIHandler(dashboard, httpLog),
		routes.Options{UserHeader: cfg.HTTP.UserHeader, Log: httpLog},
	)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
