package server

import (
	"net/http"
	"shop-relay/internal/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *HttpServer) loadRoutes(mux *http.ServeMux) http.HandlerFunc {
	mux.HandleFunc("POST "+config.TelegramWebhookPath, s.telegramWebhook)
	mux.HandleFunc("POST "+config.CryptoPayWebhookPath, s.cryptoPayWebhook)
	mux.HandleFunc("GET /healthcheck", s.healthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux.ServeHTTP
}
