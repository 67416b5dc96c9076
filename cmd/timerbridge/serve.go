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
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	tbhttp "github.com/Strob0t/timerbridge/internal/adapter/http"
	"github.com/Strob0t/timerbridge/internal/config"
)

// serve runs the GitHub webhook listener until SIGINT or SIGTERM.
func serve(args []string) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigFile, "path to the YAML config file")
	port := fs.String("port", "", "listen port (overrides TIMERBRIDGE_PORT)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, *configPath)
	if err != nil {
		return err
	}
	defer a.close()

	if *port != "" {
		a.cfg.Server.Port = *port
	}
	if a.cfg.Server.WebhookSecret == "" {
		slog.Warn("no webhook secret configured, webhook deliveries will be refused")
	}

	handlers := &tbhttp.Handlers{Timer: a.timer}
	addr := ":" + a.cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           tbhttp.NewRouter(handlers, a.cfg.Server, a.cfg.OTel.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
