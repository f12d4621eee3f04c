package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nearstore/find-store/internal/cli"
	"github.com/nearstore/find-store/internal/config"
	"github.com/nearstore/find-store/internal/geocoding"
	"github.com/nearstore/find-store/internal/models"
	"github.com/nearstore/find-store/internal/report"
	"github.com/nearstore/find-store/internal/service"
	"github.com/nearstore/find-store/internal/stores"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows the in-flight geocoding call to be abandoned cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes. Every failure has
	// already been rendered to stderr by the time run returns.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run encapsulates the lookup pipeline for easier testing and error handling.
// The rendered result goes to out; diagnostics, logs and rendered errors go
// to errOut.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, errOut)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env, errOut)

	catalog, err := loadCatalog(opts.StoresPath, cfg.StoresFile)
	if err != nil {
		report.WriteError(errOut, opts.Format, err)
		return err
	}

	client, err := geocoding.NewClient(cfg.APIKey, cfg.RateLimit)
	if err != nil {
		report.WriteError(errOut, opts.Format, err)
		return err
	}
	provider := geocoding.NewGoogleProvider(client, logger)

	logger.DebugContext(ctx, "Lookup starting", "query", opts.Query(), "stores", len(catalog))

	finder := service.NewFinder(logger, provider, catalog)

	match, err := finder.FindNearest(ctx, opts.Query())
	if err != nil {
		report.WriteError(errOut, opts.Format, err)
		return err
	}

	return report.Write(out, opts.Format, match, opts.Unit, opts.Query())
}

// loadCatalog returns the store catalog to search: the --stores flag wins,
// then the configured catalog file, then the catalog built into the binary.
func loadCatalog(flagPath, configPath string) ([]models.Store, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path != "" {
		return stores.LoadFile(path)
	}

	return stores.Default()
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to errOut so stdout carries nothing but the rendered result.
func setupLogger(env string, errOut io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(errOut, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(errOut, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(errOut, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(errOut, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
