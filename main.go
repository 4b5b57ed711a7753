package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blueflylabor/fakeTape/config"
	"github.com/blueflylabor/fakeTape/report"
	"github.com/blueflylabor/fakeTape/sim"
)

// The comparison always runs the baseline first; the report derives its
// speedup lines against results[0].
var strategyNames = []string{"none", "fixed", "hierarchical"}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		seed       = flag.Int64("seed", 0, "workload seed, 0 seeds from the wall clock")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	// Stdout carries the report; logs go to stderr.
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed != 0 {
		cfg.Workload.Seed = *seed
	}
	if cfg.Workload.Seed == 0 {
		cfg.Workload.Seed = time.Now().UnixNano()
	}
	level.Debug(logger).Log("msg", "seeding workload", "seed", cfg.Workload.Seed)

	registerer := prometheus.NewRegistry()
	rng := rand.New(rand.NewSource(cfg.Workload.Seed))
	simulator := sim.New(logger, registerer, cfg, rng)

	if flag.Arg(0) == "benchmark" {
		if err := runBenchmark(simulator, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runComparison(simulator, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runComparison runs every strategy over one shared workload and prints the
// cost table plus the speedup lines.
func runComparison(simulator *sim.Simulator, cfg *config.Config) error {
	fmt.Printf("Starting tape storage simulation with %d blocks and %d queries...\n",
		cfg.Workload.BlockCount, cfg.Workload.QueryCount)

	queries := simulator.GenerateQueryIDs(cfg.Workload.QueryCount)

	results, err := simulator.RunComparison(cfg.Workload.BlockCount, queries, strategyNames)
	if err != nil {
		return err
	}

	fmt.Printf("\nSimulation Results:\n\n")
	if err := report.WriteTable(os.Stdout, results); err != nil {
		return err
	}

	fmt.Printf("\nPerformance Analysis:\n")
	return report.WriteComparison(os.Stdout, results)
}

// runBenchmark measures wall-clock build and query time per strategy and
// prints them as CSV.
func runBenchmark(simulator *sim.Simulator, cfg *config.Config) error {
	queries := simulator.GenerateQueryIDs(cfg.Workload.QueryCount)

	rows := make([]report.BenchmarkRow, 0, len(strategyNames))
	for _, name := range strategyNames {
		if err := simulator.SelectStrategy(name); err != nil {
			return err
		}

		buildMS, err := simulator.BenchmarkIndexBuild(cfg.Workload.BlockCount)
		if err != nil {
			return err
		}
		queryMS, err := simulator.BenchmarkQueries(queries)
		if err != nil {
			return err
		}

		rows = append(rows, report.BenchmarkRow{Strategy: name, BuildMillis: buildMS, QueryMillis: queryMS})
	}

	return report.WriteBenchmarkCSV(os.Stdout, rows)
}
