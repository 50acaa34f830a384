// Package metrics holds Prometheus instruments used across the service.
// All collectors are registered with the global registry, so importing this
// package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LLMSTxtRequestsTotal counts served documents by agent class
	// (llm, bot or human).
	LLMSTxtRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llmstxt_requests_total",
			Help: "Cumulative number of llms.txt documents served.",
		}, []string{"agent"})

	LLMSTxtErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "llmstxt_errors_total",
			Help: "Cumulative number of llms.txt requests that failed in a collaborator.",
		})

	GenerateSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llmstxt_generate_seconds",
			Help:    "Time spent reading settings, listing content, and assembling llms.txt.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		})

	DocumentBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "llmstxt_document_bytes",
			Help: "Size of the most recently generated llms.txt document.",
		})

	SettingsUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "llmstxt_settings_updates_total",
			Help: "Cumulative number of saved settings updates.",
		})

	SitemapRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitemap_requests_total",
			Help: "Cumulative number of sitemap documents served, by provider (index for the root).",
		}, []string{"provider"})
)

func init() {
	prometheus.MustRegister(
		LLMSTxtRequestsTotal,
		LLMSTxtErrorsTotal,
		GenerateSeconds,
		DocumentBytes,
		SettingsUpdatesTotal,
		SitemapRequestsTotal,
	)
}
