// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CredentialsIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventsupply_credentials_issued_total",
			Help: "Total number of credentials issued, by purpose",
		},
		[]string{"purpose"},
	)

	CredentialsClaimedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventsupply_credentials_claimed_total",
			Help: "Total number of credentials successfully claimed, by purpose",
		},
		[]string{"purpose"},
	)

	CredentialsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventsupply_credentials_rejected_total",
			Help: "Total number of uniform verification failures, by purpose",
		},
		[]string{"purpose"},
	)

	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventsupply_order_transitions_total",
			Help: "Total number of committed order status transitions, by target status",
		},
		[]string{"to"},
	)

	TransitionsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventsupply_order_transitions_rejected_total",
			Help: "Total number of rejected order status transitions, by target status",
		},
		[]string{"to"},
	)

	NotificationsSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "eventsupply_notifications_sent_total",
			Help: "Total number of notification texts handed to the gateway",
		},
	)

	NotificationsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "eventsupply_notifications_failed_total",
			Help: "Total number of notification sends that reported a channel failure",
		},
	)
)

// Register registers all instruments with the default registry.
// Call once at startup.
func Register() {
	prometheus.MustRegister(
		CredentialsIssuedTotal,
		CredentialsClaimedTotal,
		CredentialsRejectedTotal,
		TransitionsTotal,
		TransitionsRejectedTotal,
		NotificationsSentTotal,
		NotificationsFailedTotal,
	)
}
