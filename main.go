package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"entgo.io/ent/dialect"
	_ "github.com/lib/pq"

	"github.com/lingvoapp/lingvo-api/api"
	"github.com/lingvoapp/lingvo-api/api/handler"
	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/config"
	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/leaderboard"
	"github.com/lingvoapp/lingvo-api/telegram"
	"github.com/lingvoapp/lingvo-api/translate"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := ent.Open(dialect.Postgres, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Schema.Create(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := api.SeedInitialAdmin(ctx, db, cfg.InitialAdminPhone); err != nil {
		slog.Error("failed to seed initial admin", "error", err)
		os.Exit(1)
	}

	store := cache.NewTTLStore()
	defer store.Stop()

	inv := cache.NewInvalidator(store)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	otp := auth.NewOTP(store, cfg.OTPTTL)

	tg := telegram.NewClient(cfg.BotToken)
	bot := telegram.NewBot(tg, db, otp, inv)
	bot.Start(ctx)
	defer bot.Stop()

	hub := handler.NewWSHub()
	defer hub.Shutdown()

	refresher := leaderboard.NewRefresher(db, store, cfg.LeaderboardInterval, func(snap leaderboard.Snapshot) {
		event, err := json.Marshal(map[string]any{
			"event":        "leaderboard_updated",
			"last_updated": snap.LastUpdated,
			"next_update":  snap.NextUpdate,
		})
		if err != nil {
			return
		}
		hub.Broadcast(event)
	})
	refresher.Start(ctx)
	defer refresher.Stop()

	translator := translate.New(db, cfg.OpenAIAPIKey)

	router := api.NewRouter(api.Deps{
		Cfg:        &cfg,
		DB:         db,
		Store:      store,
		Inv:        inv,
		Tokens:     tokens,
		OTP:        otp,
		Telegram:   tg,
		Translator: translator,
		Hub:        hub,
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
