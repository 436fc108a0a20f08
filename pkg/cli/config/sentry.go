package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry holds configuration for error reporting
type Sentry struct {
	dsn string
	env string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN (error reporting is disabled when empty)",
			Category:    "Sentry",
			Sources:     cli.EnvVars("TALOS_SENTRY_DSN"),
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Category:    "Sentry",
			Sources:     cli.EnvVars("TALOS_SENTRY_ENV"),
			Destination: &x.env,
		},
	}
}

func (x Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("dsn.len", len(x.dsn)),
		slog.String("env", x.env),
	)
}

// Configure initializes the Sentry client when a DSN is set. The returned
// closer flushes buffered events and must be called on shutdown.
func (x *Sentry) Configure(version string) (func(), error) {
	if x.dsn == "" {
		logging.Default().Info("Sentry DSN not configured, error reporting disabled")
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     version,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	logging.Default().Info("Sentry error reporting enabled", "env", x.env)

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
