package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/cli/config"
	httpctrl "github.com/secmon-lab/talos/pkg/controller/http"
	"github.com/secmon-lab/talos/pkg/usecase"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var allowedOrigins []string
	var repoCfg config.Repository
	var sentryCfg config.Sentry
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TALOS_ADDR"),
			Destination: &addr,
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origin",
			Usage:       "CORS allowed origin (can be specified multiple times, default: any)",
			Sources:     cli.EnvVars("TALOS_ALLOWED_ORIGIN"),
			Destination: &allowedOrigins,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("Serve configuration",
				"addr", addr,
				"sentry", sentryCfg,
				"slack", slackCfg)

			flushSentry, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer flushSentry()

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack notifier")
			}

			var ucOpts []usecase.Option
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
			}
			uc := usecase.New(repo, ucOpts...)

			var httpOpts []httpctrl.Options
			if len(allowedOrigins) > 0 {
				httpOpts = append(httpOpts, httpctrl.WithAllowedOrigins(allowedOrigins))
			}
			handler, err := httpctrl.New(uc, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
