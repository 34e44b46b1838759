package ws

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ws_connections_active",
		Help: "Number of open websocket connections",
	})

	IdleDisconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ws_idle_disconnects_total",
		Help: "Connections closed after the idle timeout",
	})

	FramesDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ws_frames_delivered_total",
		Help: "Frames delivered to subscribers per topic",
	}, []string{"topic"})

	FramesDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ws_frames_dropped_total",
		Help: "Frames dropped because of a full send buffer per topic",
	}, []string{"topic"})
)
