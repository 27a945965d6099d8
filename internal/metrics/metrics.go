package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_relay_webhook_requests_total",
			Help: "Inbound webhook requests by route and outcome",
		},
		[]string{"route", "outcome"},
	)

	InvoicesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_relay_invoices_created_total",
			Help: "Invoices successfully created with the payment provider",
		},
	)

	ConfirmationsSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shop_relay_confirmations_sent_total",
			Help: "Payment confirmation messages delivered to chat users",
		},
	)
)
