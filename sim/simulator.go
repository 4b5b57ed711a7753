// Package sim drives the tape simulation. It generates randomized workloads
// and runs build and query passes for each indexing strategy over a shared
// device, aggregating the simulated costs into per-strategy results.
package sim

import (
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blueflylabor/fakeTape/config"
	"github.com/blueflylabor/fakeTape/tape"
	"github.com/blueflylabor/fakeTape/tape/index"
)

// ErrNoStrategy reports a simulation run attempted before a strategy was
// selected.
var ErrNoStrategy = errors.New("no index strategy set")

// Result aggregates one build and query pass of a single strategy over a
// workload. Times are simulated seconds. TotalSeeks counts the queries that
// incurred nonzero cost; TotalBlocksAccessed counts every query issued.
type Result struct {
	Strategy            string
	IndexBuildTime      float64
	TotalAccessTime     float64
	AverageAccessTime   float64
	TotalSeeks          int
	TotalBlocksAccessed int
}

// Simulator owns one device and one active strategy and mutates them in
// strict sequence; it is not safe for concurrent use. Results accumulate
// across runs until Results is drained by the caller.
type Simulator struct {
	logger log.Logger
	device *tape.Device
	rng    *rand.Rand
	cfg    *config.Config

	strategy index.Strategy
	results  []Result

	metrics *simulatorMetrics
}

// New builds a simulator around a fresh device configured from cfg. A nil
// rng selects a wall-clock seed; pass a seeded source for reproducible
// workloads.
func New(logger log.Logger, reg prometheus.Registerer, cfg *config.Config, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger = log.With(logger, "component", "simulator", "run_id", uuid.NewString())

	return &Simulator{
		logger:  logger,
		device:  tape.New(cfg.Device, reg),
		rng:     rng,
		cfg:     cfg,
		metrics: newSimulatorMetrics(reg),
	}
}

// Device exposes the simulator's device for inspection.
func (s *Simulator) Device() *tape.Device {
	return s.device
}

// SetStrategy makes strat the active strategy for subsequent runs.
func (s *Simulator) SetStrategy(strat index.Strategy) {
	s.strategy = strat
	level.Info(s.logger).Log("msg", "strategy selected", "strategy", strat.Name())
}

// SelectStrategy constructs the named strategy with the configured
// parameters and makes it active.
func (s *Simulator) SelectStrategy(name string) error {
	strat, err := index.New(name, s.strategyOptions())
	if err != nil {
		return err
	}
	s.SetStrategy(strat)
	return nil
}

func (s *Simulator) strategyOptions() index.Options {
	return index.Options{
		FixedInterval:  s.cfg.Strategy.FixedInterval,
		Level1Interval: s.cfg.Strategy.Level1Interval,
		Level2Interval: s.cfg.Strategy.Level2Interval,
	}
}

// GenerateWorkload resets the device and writes blockCount data blocks with
// identifiers drawn uniformly from [1, MaxID] and payload sizes drawn
// uniformly from [1, blockSize*sizeRatio]. Payload bytes are random filler;
// only their size matters to the timing model.
func (s *Simulator) GenerateWorkload(blockCount int, sizeRatio float64) {
	s.device.Reset()

	maxPayload := int(float64(s.device.BlockSize()) * sizeRatio)
	if maxPayload < 1 {
		maxPayload = 1
	}

	for i := 0; i < blockCount; i++ {
		id := uint64(s.rng.Int63n(int64(s.cfg.Workload.MaxID))) + 1
		payload := make([]byte, s.rng.Intn(maxPayload)+1)
		s.rng.Read(payload)
		s.device.Write(tape.NewDataBlock(id, payload))
	}

	level.Debug(s.logger).Log("msg", "workload generated", "blocks", blockCount,
		"size_ratio", sizeRatio, "max_payload", maxPayload)
}

// GenerateQueryIDs draws n identifiers from the same distribution the
// workload uses, so a portion of them hit blocks actually on tape.
func (s *Simulator) GenerateQueryIDs(n int) []uint64 {
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = uint64(s.rng.Int63n(int64(s.cfg.Workload.MaxID))) + 1
	}
	return ids
}

// RunSimulation performs one build and query pass with the active strategy:
// optionally regenerates the workload, builds the index, then issues every
// query id through the strategy, accumulating simulated costs. The result is
// recorded and returned. It fails with ErrNoStrategy when no strategy is
// selected.
func (s *Simulator) RunSimulation(blockCount int, queryIDs []uint64, generateNewData bool) (Result, error) {
	if s.strategy == nil {
		return Result{}, ErrNoStrategy
	}

	if generateNewData {
		s.GenerateWorkload(blockCount, s.cfg.Workload.SizeRatio)
	}

	res := Result{Strategy: s.strategy.Name()}

	buildTime, err := s.strategy.BuildIndex(s.device)
	if err != nil {
		return Result{}, errors.Wrap(err, "building index")
	}
	res.IndexBuildTime = buildTime

	for _, id := range queryIDs {
		lookup, err := s.strategy.FindBlock(s.device, id)
		if err != nil {
			return Result{}, errors.Wrapf(err, "querying block %d", id)
		}

		res.TotalAccessTime += lookup.Cost
		res.TotalBlocksAccessed++
		if lookup.Cost > 0 {
			res.TotalSeeks++
		}
	}

	if res.TotalBlocksAccessed > 0 {
		res.AverageAccessTime = res.TotalAccessTime / float64(res.TotalBlocksAccessed)
	}

	s.results = append(s.results, res)
	s.metrics.runs.Inc()
	s.metrics.queries.Add(float64(len(queryIDs)))

	level.Info(s.logger).Log("msg", "simulation complete", "strategy", res.Strategy,
		"build_time", res.IndexBuildTime, "avg_access_time", res.AverageAccessTime,
		"seeks", res.TotalSeeks)

	return res, nil
}

// RunComparison generates one shared workload, then runs every named
// strategy against that identical tape and query set. The tape carries over
// between strategies, so index blocks appended by an earlier build remain on
// the device for later ones; strategies skip them during their walks.
func (s *Simulator) RunComparison(blockCount int, queryIDs []uint64, names []string) ([]Result, error) {
	level.Debug(s.logger).Log("msg", "comparison started", "strategies", len(names),
		"blocks", blockCount, "queries", len(queryIDs))

	s.GenerateWorkload(blockCount, s.cfg.Workload.SizeRatio)

	out := make([]Result, 0, len(names))
	for _, name := range names {
		if err := s.SelectStrategy(name); err != nil {
			return nil, err
		}

		res, err := s.RunSimulation(blockCount, queryIDs, false)
		if err != nil {
			return nil, errors.Wrapf(err, "strategy %s", name)
		}
		out = append(out, res)
	}

	level.Info(s.logger).Log("msg", "comparison complete", "strategies", len(out))
	return out, nil
}

// Results returns a copy of every result recorded so far, in run order.
func (s *Simulator) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}
