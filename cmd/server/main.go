package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wargame/internal/combat"
	"wargame/internal/config"
	"wargame/internal/session"
	"wargame/internal/web"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.LogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	rules := combat.DefaultRules()
	if cfg.Rules.Path != "" {
		if rules, err = combat.LoadRules(cfg.Rules.Path); err != nil {
			slog.Error("load rules", "path", cfg.Rules.Path, "err", err)
			os.Exit(1)
		}
	}
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		slog.Error("create data dir", "dir", cfg.Data.Dir, "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewMemoryStore[*web.Campaign]()
	idle, _ := cfg.IdleTimeout()
	every, _ := cfg.SweepInterval()
	go session.Janitor[*web.Campaign](ctx, store, every, idle)

	srv := &web.Server{
		Rules:   rules,
		DataDir: cfg.Data.Dir,
		Store:   store,
		Feed:    web.NewFeed(),
	}
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", cfg.Server.Addr, "data_dir", cfg.Data.Dir)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("serve", "err", err)
		os.Exit(1)
	}
}
