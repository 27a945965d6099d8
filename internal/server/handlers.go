package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"shop-relay/internal/config"
	"shop-relay/internal/dtos"
	"shop-relay/internal/metrics"
)

func (s *HttpServer) telegramWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(config.TelegramSecretHeader) != s.secret {
		metrics.WebhookRequestsTotal.WithLabelValues("telegram", "unauthorized").Inc()
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("cannot read request body", "error", err)
		http.Error(w, "Cannot read request body", http.StatusUnprocessableEntity)
		return
	}

	defer r.Body.Close()

	var update dtos.Update
	err = json.Unmarshal(body, &update)
	if err != nil {
		slog.Error("cannot unmarshal update body", "error", err)
		http.Error(w, "Cannot unmarshal request body", http.StatusUnprocessableEntity)
		return
	}

	// Dispatch faults never fail the exchange: a non-200 would make
	// Telegram redeliver the same update indefinitely.
	if err := s.shop.HandleUpdate(r.Context(), &update); err != nil {
		slog.Error("update dispatch failed", "update_id", update.UpdateID, "error", err)
	}

	metrics.WebhookRequestsTotal.WithLabelValues("telegram", "ok").Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *HttpServer) cryptoPayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.rejectPaymentEvent(w, "cannot read request body")
		return
	}

	defer r.Body.Close()

	var event dtos.InvoiceStatusEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.rejectPaymentEvent(w, "cannot unmarshal request body: "+err.Error())
		return
	}

	if err := s.shop.ConfirmPayment(r.Context(), event.Invoice.Status, event.Invoice.Payload); err != nil {
		s.rejectPaymentEvent(w, err.Error())
		return
	}

	metrics.WebhookRequestsTotal.WithLabelValues("cryptopay", "ok").Inc()
	writeJSON(w, http.StatusOK, dtos.WebhookResponse{Ok: true})
}

// rejectPaymentEvent is the catch-all boundary for the payment webhook:
// every fault collapses into the same 400 envelope and the provider is
// expected to redeliver per its own policy.
func (s *HttpServer) rejectPaymentEvent(w http.ResponseWriter, message string) {
	slog.Error("payment webhook rejected", "error", message)
	metrics.WebhookRequestsTotal.WithLabelValues("cryptopay", "error").Inc()
	writeJSON(w, http.StatusBadRequest, dtos.WebhookResponse{Ok: false, Error: message})
}

func (s *HttpServer) healthCheck(w http.ResponseWriter, r *http.Request) {
	err := writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{
		Status: "all good",
	})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
