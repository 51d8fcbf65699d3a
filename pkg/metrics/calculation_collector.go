package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dx3mirror/IntegralCalculator/internal/store"
)

type calculationStatsCollector struct {
	store           store.Store
	total           *prometheus.Desc
	totalByRule     *prometheus.Desc
	totalByFunction *prometheus.Desc
}

func newCalculationStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_stored_%s", integralCalculator, name)
	}

	return &calculationStatsCollector{
		store: s,
		total: prometheus.NewDesc(
			fqName("calculations_total"),
			"Total number of stored calculations.",
			nil,
			prometheus.Labels{},
		),
		totalByRule: prometheus.NewDesc(
			fqName("calculations_by_rule_total"),
			"Stored calculations by integration rule.",
			[]string{"rule"},
			prometheus.Labels{},
		),
		totalByFunction: prometheus.NewDesc(
			fqName("calculations_by_function_total"),
			"Stored calculations by function kind.",
			[]string{"function"},
			prometheus.Labels{},
		),
	}
}

// RegisterCalculationStatsCollector registers a collector reading calculation
// statistics from the store on each scrape.
func RegisterCalculationStatsCollector(s store.Store) {
	prometheus.MustRegister(newCalculationStatsCollector(s))
}

func (c *calculationStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.totalByRule
	ch <- c.totalByFunction
}

// Collect implements Collector.
func (c *calculationStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("calculation_collector").Errorf("failed to collect calculation statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stats.Total))

	for rule, total := range stats.TotalByRule {
		ch <- prometheus.MustNewConstMetric(c.totalByRule, prometheus.GaugeValue, float64(total), rule)
	}

	for function, total := range stats.TotalByFunction {
		ch <- prometheus.MustNewConstMetric(c.totalByFunction, prometheus.GaugeValue, float64(total), function)
	}
}
