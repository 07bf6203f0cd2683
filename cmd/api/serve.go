package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petcare-registry/internal/adapters/events/natspub"
	"petcare-registry/internal/ports/events"
	"petcare-registry/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	store, closeStore, err := openStore(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer closeStore()

	var pub events.Publisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		np, err := natspub.New(cfg.NATSURL)
		if err != nil {
			return err
		}
		pub = np
		log.Info("publishing changes to nats", map[string]any{"url": cfg.NATSURL})
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("publisher close failed", map[string]any{"err": err})
		}
	}()

	r := router.NewRouter(router.Options{
		KV:          store,
		Logger:      log,
		Publisher:   pub,
		SubmitDelay: cfg.SubmitDelay.Duration,
		ChatDelay:   cfg.ChatDelay.Duration,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
