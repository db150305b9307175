package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Login attempts by role and outcome",
		},
		[]string{"role", "outcome"},
	)

	registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Successful student registrations",
		},
	)

	requestsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_requests_submitted_total",
			Help: "Event requests submitted by students",
		},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_request_status_total",
			Help: "Admin status transitions applied to event requests",
		},
		[]string{"status"},
	)
)

// RecordLogin counts a login attempt for a role ("user" or "admin") with an
// outcome ("success" or "failure").
func RecordLogin(role, outcome string) {
	logins.WithLabelValues(role, outcome).Inc()
}

// RecordRegistration counts a successful registration.
func RecordRegistration() {
	registrations.Inc()
}

// RecordRequestSubmitted counts a submitted event request.
func RecordRequestSubmitted() {
	requestsSubmitted.Inc()
}

// RecordStatusTransition counts an applied status transition.
func RecordStatusTransition(status string) {
	statusTransitions.WithLabelValues(status).Inc()
}
