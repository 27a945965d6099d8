package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"shop-relay/internal/catalog"
	"shop-relay/internal/config"
	"shop-relay/internal/gateway"
	"shop-relay/internal/server"
	"shop-relay/internal/services"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
	}()

	logHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})
	slog.SetDefault(slog.New(logHandler))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	shop, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		slog.Error("failed to load catalog", "file", cfg.CatalogFile, "error", err)
		os.Exit(1)
	}

	tg := gateway.NewTelegram(cfg.TelegramAPIURL, cfg.BotToken)
	cpay := gateway.NewCryptoPay(cfg.CryptoPayAPIURL, cfg.CryptoPayToken)
	defer cpay.Close()

	shopService := services.NewShopService(tg, cpay, shop)

	srv := server.NewServer(cfg.Port, cfg.WebhookSecret, shopService)

	if cfg.BaseURL != "" {
		if err := tg.SetWebhook(ctx, cfg.BaseURL+config.TelegramWebhookPath, cfg.WebhookSecret); err != nil {
			slog.Error("failed to register telegram webhook", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("READY", "port", cfg.Port, "products", len(shop.All()))
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if cfg.BaseURL != "" {
		if err := tg.DeleteWebhook(shutdownCtx, true); err != nil {
			slog.Error("failed to deregister telegram webhook", "error", err)
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
