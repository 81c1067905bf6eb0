// FILE: metrics.go
package console

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a logger's pipeline counters as Prometheus metrics.
// Register it with any prometheus.Registerer:
//
//	prometheus.MustRegister(console.NewCollector(logger))
type Collector struct {
	logger *Logger

	enqueued     *prometheus.Desc
	dropped      *prometheus.Desc
	writtenBytes *prometheus.Desc
	writeErrors  *prometheus.Desc
	flushes      *prometheus.Desc
}

// NewCollector creates a collector over l's counters.
func NewCollector(l *Logger) *Collector {
	return &Collector{
		logger: l,
		enqueued: prometheus.NewDesc(
			"console_records_enqueued_total",
			"Log records accepted onto the hand-off queue.",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			"console_records_dropped_total",
			"Log records rejected by the pipeline.",
			nil, nil,
		),
		writtenBytes: prometheus.NewDesc(
			"console_written_bytes_total",
			"Bytes delivered to the destination stream.",
			nil, nil,
		),
		writeErrors: prometheus.NewDesc(
			"console_write_errors_total",
			"Hard write failures absorbed by the writer task.",
			nil, nil,
		),
		flushes: prometheus.NewDesc(
			"console_flushes_total",
			"Flush barriers honored by the writer task.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.enqueued
	ch <- c.dropped
	ch <- c.writtenBytes
	ch <- c.writeErrors
	ch <- c.flushes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.logger.Stats()
	ch <- prometheus.MustNewConstMetric(c.enqueued, prometheus.CounterValue, float64(s.Enqueued))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(s.Dropped))
	ch <- prometheus.MustNewConstMetric(c.writtenBytes, prometheus.CounterValue, float64(s.WrittenBytes))
	ch <- prometheus.MustNewConstMetric(c.writeErrors, prometheus.CounterValue, float64(s.WriteErrors))
	ch <- prometheus.MustNewConstMetric(c.flushes, prometheus.CounterValue, float64(s.Flushes))
}
