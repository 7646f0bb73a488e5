package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalgym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitalgym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembershipOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalgym_membership_orders_total",
			Help: "Total number of membership orders created",
		},
		[]string{"membership_type"},
	)

	PaymentsCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vitalgym_payments_cents_total",
			Help: "Total amount of recorded payments in cents",
		},
	)

	ExpiryNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalgym_expiry_notifications_total",
			Help: "Total number of membership expiry notifications",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalgym_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitalgym_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMembershipOrder(membershipType string, totalPriceCents int64) {
	MembershipOrdersTotal.WithLabelValues(membershipType).Inc()
	PaymentsCentsTotal.Add(float64(totalPriceCents))
}

func RecordExpiryNotification(status string) {
	ExpiryNotificationsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
