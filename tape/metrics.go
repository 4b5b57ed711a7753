package tape

import (
	"github.com/prometheus/client_golang/prometheus"
)

type deviceMetrics struct {
	writes           prometheus.Counter
	reads            prometheus.Counter
	seeks            prometheus.Counter
	bytesWritten     prometheus.Counter
	seekDistance     prometheus.Summary
	simulatedSeconds prometheus.Counter
}

func newDeviceMetrics(registerer prometheus.Registerer) *deviceMetrics {
	m := &deviceMetrics{}

	m.writes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "writes_total",
		Help: "Total number of blocks appended to the medium.",
	})

	m.reads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reads_total",
		Help: "Total number of block reads.",
	})

	m.seeks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seeks_total",
		Help: "Total number of head repositionings, zero-distance seeks included.",
	})

	m.bytesWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bytes_written_total",
		Help: "Total payload bytes appended to the medium.",
	})

	m.seekDistance = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "seek_distance_blocks",
		Help:       "Distribution of seek distances in blocks.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})

	m.simulatedSeconds = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulated_busy_seconds_total",
		Help: "Accumulated simulated time charged by the cost model.",
	})

	if registerer != nil {
		registerer = prometheus.WrapRegistererWithPrefix("tape_device_", registerer)
		registerer.MustRegister(m.writes, m.reads, m.seeks, m.bytesWritten, m.seekDistance, m.simulatedSeconds)
	}

	return m
}
