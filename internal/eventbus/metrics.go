package eventbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_published_total",
			Help: "Total number of events published per topic",
		},
		[]string{"topic"},
	)

	PublishTimeoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_publish_timeouts_total",
			Help: "Total number of publishes abandoned by the bounded wait",
		},
		[]string{"topic"},
	)

	HandlerPanicsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_handler_panics_total",
			Help: "Total number of recovered subscriber panics",
		},
		[]string{"topic"},
	)

	SubscribersGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventbus_subscribers",
			Help: "Current number of active subscriptions",
		},
	)
)
