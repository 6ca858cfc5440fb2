// Package metrics holds the prometheus collectors shared across the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "debatebot"

var (
	// Commands counts handled slash commands by name and outcome (ok, error, unknown)
	Commands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "discord",
		Name:      "commands_total",
		Help:      "Counts the slash commands handled per command and outcome",
	}, []string{"command", "outcome"})

	// Fetches counts page fetches by outcome (ok, not_found, cached, error)
	Fetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scrape",
		Name:      "fetches_total",
		Help:      "Counts page fetches per outcome",
	}, []string{"outcome"})

	// ActiveTimers is the number of countdowns currently running
	ActiveTimers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "timer",
		Name:      "active",
		Help:      "Number of running countdown timers",
	})
)
