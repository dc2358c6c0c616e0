package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesTotal counts handled user messages by classified intent.
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_messages_total",
		Help: "Handled user messages by classified intent",
	}, []string{"intent"})

	// ResolutionsTotal counts fixture resolver outcomes.
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_fixture_resolutions_total",
		Help: "Fixture resolver outcomes",
	}, []string{"outcome"}) // matched / no_match

	// ProviderErrorsTotal counts failed external provider calls.
	ProviderErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_provider_errors_total",
		Help: "Failed external provider calls by provider",
	}, []string{"provider"}) // football_data / odds_api / gemini

	// GenerationsTotal counts text-generation requests by result.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_generations_total",
		Help: "Text-generation requests by result",
	}, []string{"status"}) // ok / error / unconfigured
)
