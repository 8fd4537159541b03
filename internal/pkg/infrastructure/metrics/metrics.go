package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeOK labels operations that completed normally.
	OutcomeOK = "ok"
	// OutcomeError labels operations that failed against the store.
	OutcomeError = "error"
	// OutcomeSkipped labels detection ticks that did not run (lease held elsewhere).
	OutcomeSkipped = "skipped"
	// OutcomeAnomaly labels detection ticks that declared an anomaly.
	OutcomeAnomaly = "anomaly"
)

var (
	logsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "incident_log_mgmt",
			Name:      "logs_submitted_total",
			Help:      "Total number of log records accepted into the ingestion buffer.",
		},
	)

	logsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "incident_log_mgmt",
			Name:      "logs_rejected_total",
			Help:      "Total number of log records rejected because the buffer was at capacity.",
		},
	)

	flushesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "incident_log_mgmt",
			Name:      "flushes_total",
			Help:      "Total number of buffer flushes, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	flushBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "incident_log_mgmt",
			Name:      "flush_batch_size",
			Help:      "Number of records written per flush.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	detectionTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "incident_log_mgmt",
			Name:      "detection_ticks_total",
			Help:      "Total number of detection ticks, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	incidentsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "incident_log_mgmt",
			Name:      "incidents_created_total",
			Help:      "Total number of incidents created, partitioned by severity.",
		},
		[]string{"severity"},
	)
)

// Register attaches the service collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		logsSubmittedTotal,
		logsRejectedTotal,
		flushesTotal,
		flushBatchSize,
		detectionTicksTotal,
		incidentsCreatedTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func CountSubmission(accepted bool) {
	if accepted {
		logsSubmittedTotal.Inc()
	} else {
		logsRejectedTotal.Inc()
	}
}

func ObserveFlush(size int, outcome string) {
	flushesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		flushBatchSize.Observe(float64(size))
	}
}

func CountDetectionTick(outcome string) {
	detectionTicksTotal.WithLabelValues(outcome).Inc()
}

func CountIncidentCreated(severity string) {
	incidentsCreatedTotal.WithLabelValues(severity).Inc()
}
