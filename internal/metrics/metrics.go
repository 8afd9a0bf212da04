// Package metrics exposes prometheus counters for searches and assistant calls.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered on its own registry.
type Metrics struct {
	registry       *prometheus.Registry
	searches       *prometheus.CounterVec
	assistantCalls *prometheus.CounterVec
	focusEvents    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mybusnow",
			Name:      "searches_total",
			Help:      "Route searches by outcome (matched or empty).",
		}, []string{"outcome"}),
		assistantCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mybusnow",
			Name:      "assistant_calls_total",
			Help:      "Assistant questions by outcome (answered or fallback).",
		}, []string{"outcome"}),
		focusEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mybusnow",
			Name:      "map_focus_events_total",
			Help:      "Map focus events by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.searches, m.assistantCalls, m.focusEvents)
	m.registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *Metrics) ObserveSearch(matched bool) {
	outcome := "empty"
	if matched {
		outcome = "matched"
	}
	m.searches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAssistant(fallback bool) {
	outcome := "answered"
	if fallback {
		outcome = "fallback"
	}
	m.assistantCalls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveFocus(kind string) {
	m.focusEvents.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
