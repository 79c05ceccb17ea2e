// Package metrics defines the custom Prometheus metrics of the inventory API.
// It is the single source of truth for metric names, labels, and help strings.
//
// HTTP request metrics come from echoprometheus; the collectors here cover
// authentication and catalogue reads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// Token resolution outcomes.
const (
	ResolutionIdentified = "identified"
	ResolutionAnonymous  = "anonymous"
	ResolutionError      = "error"
)

// Access decision outcomes.
const (
	DecisionAllowed = "allowed"
	DecisionDenied  = "denied"
)

// Metrics groups the collectors registered against one registry.
type Metrics struct {
	// TokenResolutionsTotal counts bearer token resolutions.
	// Label:
	//   - result: "identified", "anonymous" or "error"
	TokenResolutionsTotal *prometheus.CounterVec

	// AccessDecisionsTotal counts access gate decisions.
	// Labels:
	//   - required_role: the role the route demands (e.g. "admin")
	//   - result: "allowed" or "denied"
	AccessDecisionsTotal *prometheus.CounterVec

	// ProductsReturned tracks how many products the last catalogue read returned.
	ProductsReturned prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TokenResolutionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_resolutions_total",
				Help:      "Total number of bearer token resolutions, by result.",
			},
			[]string{"result"},
		),
		AccessDecisionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_decisions_total",
				Help:      "Total number of role checks on protected routes, by required role and result.",
			},
			[]string{"required_role", "result"},
		),
		ProductsReturned: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "products_returned",
				Help:      "Number of products returned by the most recent catalogue read.",
			},
		),
	}
}
