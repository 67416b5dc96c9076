// Command timerbridge forwards GitHub project and issue events to a timer
// backend. "run" (the default) handles the single event described by the
// environment; "serve" listens for GitHub webhooks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Strob0t/timerbridge/internal/adapter/githubgql"
	tbotel "github.com/Strob0t/timerbridge/internal/adapter/otel"
	"github.com/Strob0t/timerbridge/internal/adapter/timerapi"
	"github.com/Strob0t/timerbridge/internal/config"
	"github.com/Strob0t/timerbridge/internal/logger"
	"github.com/Strob0t/timerbridge/internal/service"
)

func main() {
	args := os.Args[1:]
	cmd := "run"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "run":
		// run never reports failure through the exit status.
		runOnce(args)
	case "serve":
		if err := serve(args); err != nil {
			slog.Error("fatal", "error", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want run or serve)\n", cmd)
		os.Exit(2)
	}
}

// app is the wiring shared by both commands.
type app struct {
	cfg      *config.Config
	timer    *service.TimerService
	shutdown tbotel.ShutdownFunc
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))

	slog.Info("config loaded",
		"backend_configured", cfg.Backend.Configured(),
		"github_token", cfg.GitHub.Token != "",
		"log_level", cfg.Logging.Level,
		"otel", cfg.OTel.Enabled(),
	)

	shutdown, err := tbotel.Setup(ctx, cfg.OTel)
	if err != nil {
		return nil, fmt.Errorf("otel: %w", err)
	}

	metrics, err := tbotel.NewMetrics()
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("metrics: %w", err)
	}

	items := githubgql.NewClient(cfg.GitHub.GraphQLURL, cfg.GitHub.Token)
	sink := timerapi.NewClient(cfg.Backend)

	timerSvc := service.NewTimerService(items, sink)
	timerSvc.SetMetrics(metrics)

	return &app{cfg: cfg, timer: timerSvc, shutdown: shutdown}, nil
}

// close flushes telemetry.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("telemetry shutdown failed", "error", err)
	}
}
