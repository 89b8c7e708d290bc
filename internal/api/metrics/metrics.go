// Package metrics defines and registers all custom Prometheus metrics for the
// studio portal. It is the single source of truth for metric names, labels,
// and help strings; metrics self-register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// LoginsTotal counts login attempts.
// Labels:
//   - role: the portal the caller tried to enter ("CLIENT" or "MANAGER")
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RegistrationsTotal counts successful client registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of client accounts created.",
	},
)

// BookingsCreatedTotal counts bookings created through the client portal.
// Label:
//   - session_type: the shoot type requested (e.g. "portrait", "wedding")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by session type.",
	},
	[]string{"session_type"},
)

// OrdersCreatedTotal counts orders placed by clients.
// Label:
//   - kind: "gallery" for whole-gallery orders, "selection" for image picks
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of print orders placed, by kind.",
	},
	[]string{"kind"},
)

// PageViewsEnqueuedTotal counts page views handed to the dispatcher.
var PageViewsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_views_enqueued_total",
		Help:      "Total number of page views enqueued for recording.",
	},
)

// ContactMessagesTotal counts contact-form submissions.
// Label:
//   - result: "sent" or "failed"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact-form submissions, by delivery result.",
	},
	[]string{"result"},
)
