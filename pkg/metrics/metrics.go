package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	integralCalculator = "integral_calculator"

	// Calculation metrics
	calculationsTotal          = "calculations_total"
	calculationDurationSeconds = "calculation_duration_seconds"

	// Labels
	calculationRuleLabel   = "rule"
	calculationStatusLabel = "status"
)

// Values recorded under the status label.
const (
	CalculationStatusSucceeded = "succeeded"
	CalculationStatusFailed    = "failed"
)

var calculationsTotalLabels = []string{
	calculationRuleLabel,
	calculationStatusLabel,
}

var calculationDurationLabels = []string{
	calculationRuleLabel,
}

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: integralCalculator,
		Name:      calculationsTotal,
		Help:      "number of total calculations partitioned by rule and outcome",
	},
	calculationsTotalLabels,
)

var calculationDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: integralCalculator,
		Name:      calculationDurationSeconds,
		Help:      "time spent evaluating an integral partitioned by rule",
		Buckets:   prometheus.DefBuckets,
	},
	calculationDurationLabels,
)

func IncreaseCalculationsTotalMetric(rule string, status string) {
	labels := prometheus.Labels{
		calculationRuleLabel:   rule,
		calculationStatusLabel: status,
	}
	calculationsTotalMetric.With(labels).Inc()
}

func ObserveCalculationDurationMetric(rule string, d time.Duration) {
	labels := prometheus.Labels{
		calculationRuleLabel: rule,
	}
	calculationDurationMetric.With(labels).Observe(d.Seconds())
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(calculationDurationMetric)
}
