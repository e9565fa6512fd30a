// Package metrics holds the Prometheus instruments for lead capture. They are
// registered with the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_form_submissions_total",
			Help: "Lead form submit attempts by form and outcome",
		},
		[]string{"form", "outcome"},
	)

	DeliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lead_delivery_duration_seconds",
			Help:    "Duration of outbound lead deliveries in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		},
		[]string{"form"},
	)

	RelayMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_relay_messages_total",
			Help: "Leads received by the relay endpoint by status",
		},
		[]string{"status"},
	)
)
