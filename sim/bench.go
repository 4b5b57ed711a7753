package sim

import (
	"time"

	"github.com/pkg/errors"
)

// BenchmarkIndexBuild regenerates the workload, then measures the wall-clock
// time of one index build in milliseconds. Unlike RunSimulation this ignores
// the simulated cost model entirely; it measures how long the build itself
// takes to execute.
func (s *Simulator) BenchmarkIndexBuild(blockCount int) (float64, error) {
	if s.strategy == nil {
		return 0, ErrNoStrategy
	}

	s.GenerateWorkload(blockCount, s.cfg.Workload.SizeRatio)

	start := time.Now()
	if _, err := s.strategy.BuildIndex(s.device); err != nil {
		return 0, errors.Wrap(err, "building index")
	}
	return time.Since(start).Seconds() * 1000, nil
}

// BenchmarkQueries measures the wall-clock time of issuing every query id
// through the active strategy, in milliseconds. It runs against whatever
// tape and index the preceding build left behind; lookup outcomes are
// discarded.
func (s *Simulator) BenchmarkQueries(queryIDs []uint64) (float64, error) {
	if s.strategy == nil {
		return 0, ErrNoStrategy
	}

	start := time.Now()
	for _, id := range queryIDs {
		if _, err := s.strategy.FindBlock(s.device, id); err != nil {
			return 0, errors.Wrapf(err, "querying block %d", id)
		}
	}
	return time.Since(start).Seconds() * 1000, nil
}
