package sim

import "github.com/prometheus/client_golang/prometheus"

type simulatorMetrics struct {
	runs    prometheus.Counter
	queries prometheus.Counter
}

func newSimulatorMetrics(registerer prometheus.Registerer) *simulatorMetrics {
	m := &simulatorMetrics{}

	m.runs = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "runs_total",
		Help: "Total number of build and query passes completed.",
	})

	m.queries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "queries_total",
		Help: "Total number of block queries issued.",
	})

	if registerer != nil {
		registerer = prometheus.WrapRegistererWithPrefix("tape_sim_", registerer)
		registerer.MustRegister(m.runs, m.queries)
	}

	return m
}
