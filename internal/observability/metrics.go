// Package observability holds the service-wide prometheus instruments.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsLoggedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "echobody",
		Subsystem: "persistence",
		Name:      "records_logged_total",
		Help:      "Number of records persisted, labeled by record type.",
	}, []string{"record_type"})

	lastRecordGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "echobody",
		Subsystem: "persistence",
		Name:      "last_record_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recent record persisted to Postgres.",
	})
)

func init() {
	prometheus.MustRegister(recordsLoggedCounter, lastRecordGauge)
}

// RecordLogged updates the persistence counters after a successful insert.
func RecordLogged(recordType string) {
	recordsLoggedCounter.WithLabelValues(recordType).Inc()
	lastRecordGauge.Set(float64(time.Now().Unix()))
}
