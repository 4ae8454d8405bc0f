package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roleResolutionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubactiv_role_resolution_failures_total",
			Help: "Seed role lookups that failed, by role and reason.",
		},
		[]string{"role", "reason"},
	)

	newsNotFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubactiv_news_not_found_total",
		Help: "Total number of news lookups for unknown ids.",
	})

	newsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubactiv_news_created_total",
		Help: "Total number of news items created.",
	})

	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubactiv_registrations_total",
		Help: "Total number of successful user registrations.",
	})
)
