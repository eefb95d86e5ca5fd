package cli

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/herald-dev/herald/pkg/cli/config"
	"github.com/herald-dev/herald/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	// .env is optional; a missing file is not an error. Loading happens
	// before flag parsing so env sources pick the values up.
	_ = godotenv.Load()

	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
	)
	var logger *slog.Logger
	var flushSentry func()

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Changelog-driven release publisher and announcer",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			flushSentry, err = sentryCfg.Configure()
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flushSentry != nil {
				flushSentry()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdRun(),
			cmdNotify(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		// No-op unless a Sentry DSN was configured
		sentry.CaptureException(err)
		if flushSentry != nil {
			flushSentry()
		}

		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
