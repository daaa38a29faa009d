package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "elemental-duel/internal/api/http"
	"elemental-duel/internal/api/ws"
	"elemental-duel/internal/config"
	"elemental-duel/internal/game"
	"elemental-duel/internal/logging"
	"elemental-duel/internal/room"
	"elemental-duel/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rng, err := newRandomizer(cfg.RandSeed)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, rng, log)
	hub := ws.NewHub(rm, ws.Options{
		AllowedOrigins: cfg.WS.AllowedOrigins,
		PingInterval:   cfg.WS.PingInterval,
		PongTimeout:    cfg.WS.PongTimeout,
		WriteTimeout:   cfg.WS.WriteTimeout,
		SendBuffer:     cfg.WS.SendBuffer,
	}, log)
	rm.SetBroadcaster(hub)
	r := httpapi.NewRouter(rm, hub, httpapi.RouterOptions{StaticDir: cfg.StaticDir}, log)

	srv := &http.Server{Addr: cfg.HTTPAddr(), Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		// Hijacked websocket connections are not tracked by Shutdown.
		hub.Close()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRandomizer(seed int64) (*game.Randomizer, error) {
	if seed != 0 {
		return game.NewSeededRandomizer(seed), nil
	}
	return game.NewSecureRandomizer()
}
