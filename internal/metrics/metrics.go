// Package metrics holds the Prometheus instruments for configuration
// resolution.  All collectors are registered with the global registry, so
// importing this package is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AliasSyncTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hass_env_alias_sync_total",
			Help: "Cumulative number of alias variables written by the environment synchronizer, by target variable.",
		},
		[]string{"target"},
	)

	ConfigInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hass_config_info",
			Help: "Resolved hub connection configuration.  Always 1; the labels carry the values.",
		},
		[]string{"base_url", "socket_url", "source"},
	)

	TokenPresent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hass_config_token_present",
			Help: "1 when an access token was resolved, 0 when it is empty.",
		})
)

func init() {
	prometheus.MustRegister(
		AliasSyncTotal,
		ConfigInfo,
		TokenPresent,
	)
}
