package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/Strob0t/timerbridge/internal/config"
	"github.com/Strob0t/timerbridge/internal/logger"
)

// runOnce handles the event named by GITHUB_EVENT_NAME with the payload at
// GITHUB_EVENT_PATH. Every failure is logged and swallowed.
func runOnce(args []string) {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigFile, "path to the YAML config file")
	eventName := fs.String("event-name", "", "event kind (overrides GITHUB_EVENT_NAME)")
	eventPath := fs.String("event-path", "", "path to the event payload (overrides GITHUB_EVENT_PATH)")
	if err := fs.Parse(args); err != nil {
		slog.Error("invalid arguments", "error", err)
		return
	}

	ctx := context.Background()
	a, err := newApp(ctx, *configPath)
	if err != nil {
		slog.Error("startup failed", "error", err)
		return
	}
	defer a.close()

	if *eventName != "" {
		a.cfg.Event.Name = *eventName
	}
	if *eventPath != "" {
		a.cfg.Event.Path = *eventPath
	}

	ctx = logger.WithDeliveryID(ctx, uuid.NewString())

	payload, ok := readPayload(ctx, a.cfg.Event.Path)
	if !ok {
		return
	}

	res := a.timer.Dispatch(ctx, a.cfg.Event.Name, payload)
	slog.InfoContext(ctx, "run finished",
		"event", a.cfg.Event.Name,
		"outcome", res.Outcome,
		"reason", res.Reason,
	)
}

func readPayload(ctx context.Context, path string) ([]byte, bool) {
	if path == "" {
		slog.ErrorContext(ctx, "no event payload path (set GITHUB_EVENT_PATH or --event-path)")
		return nil, false
	}
	payload, err := os.ReadFile(path) //nolint:gosec // path comes from the runner environment
	if err != nil {
		slog.ErrorContext(ctx, "failed to read event payload", "path", path, "error", err)
		return nil, false
	}
	return payload, true
}
