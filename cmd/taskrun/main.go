// Package main is a one-shot command line runner for the task functions. It
// builds the same TaskService as the HTTP server, runs one task, and prints
// the outcome as a JSON TaskResult on stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"
	"golang.org/x/term"

	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/htmlselect"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/imagecodec"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/markdown"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/sqlengine"
	"github.com/jsamuelsen11/dataworks/internal/adapters/capabilities/tabular"
	"github.com/jsamuelsen11/dataworks/internal/adapters/clients/web"
	"github.com/jsamuelsen11/dataworks/internal/app"
	"github.com/jsamuelsen11/dataworks/internal/domain/pathguard"
	"github.com/jsamuelsen11/dataworks/internal/platform/config"
	"github.com/jsamuelsen11/dataworks/internal/platform/httpclient"
	"github.com/jsamuelsen11/dataworks/internal/platform/logging"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

const defaultProfile = "local"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error: loading .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	r := &runner{
		out:        os.Stdout,
		indent:     term.IsTerminal(int(os.Stdout.Fd())),
		newService: newTaskService,
	}
	err := newRootCommand(r).ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errTaskFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newTaskService loads configuration for the given profile and wires the
// task service with every capability adapter.
func newTaskService(opts globalOptions) (ports.TaskService, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	do.Provide(injector, func(_ do.Injector) (ports.Fetcher, error) {
		client := httpclient.New(&cfg.Client, "web", nil, logger)
		return web.NewClient(client, cfg.Client.MaxBodyBytes, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		guard := pathguard.New(cfg.Tasks.AllowedRoot, pathguard.Mode(cfg.Tasks.GuardMode), logger)
		caps := app.Capabilities{
			Fetcher:    do.MustInvoke[ports.Fetcher](i),
			Embedded:   sqlengine.NewSQLite(),
			Analytical: sqlengine.NewDuckDB(),
			Server:     sqlengine.NewPostgres(),
			Selector:   htmlselect.New(),
			Images:     imagecodec.New(),
			Markdown:   markdown.New(),
			Tabular:    tabular.New(),
		}
		return app.NewTaskService(guard, caps, logger, app.WithMaxCSVBytes(cfg.Tasks.MaxCSVBytes)), nil
	})

	svc, err := do.Invoke[ports.TaskService](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving task service: %w", err)
	}

	logger.Debug("task service configured",
		slog.String("profile", opts.profile),
		slog.String("allowed_root", cfg.Tasks.AllowedRoot),
		slog.String("guard_mode", cfg.Tasks.GuardMode),
	)
	return svc, nil
}
