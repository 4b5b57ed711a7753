package index

import (
	"github.com/blueflylabor/fakeTape/tape"
)

// NoIndex is the baseline strategy: no auxiliary state, every lookup is a
// circular scan of the whole medium. It models worst-case linear tape
// search.
type NoIndex struct{}

// NewNoIndex returns the no-index baseline.
func NewNoIndex() *NoIndex {
	return &NoIndex{}
}

// BuildIndex is a no-op: there is no index to build and no cost to pay. It
// appends nothing and leaves the head untouched.
func (s *NoIndex) BuildIndex(*tape.Device) (float64, error) {
	return 0, nil
}

// FindBlock scans circularly from the current head position: for each of
// the device's blocks it seeks one position onward (wrapping at the end),
// reads it, and stops at the first data block whose identifier matches.
// A full pass without a match reports not-found with the whole scan cost.
func (s *NoIndex) FindBlock(dev *tape.Device, id uint64) (Lookup, error) {
	n := dev.BlockCount()
	if n == 0 {
		return Lookup{}, nil
	}

	start := dev.Position()
	var cost float64

	for i := 0; i < n; i++ {
		pos := (start + i) % n

		c, err := dev.Seek(pos)
		cost += c
		if err != nil {
			return Lookup{Cost: cost}, err
		}

		blk, c, err := dev.ReadCurrent()
		cost += c
		if err != nil {
			return Lookup{Cost: cost}, err
		}

		if !blk.Index && blk.ID == id {
			return Lookup{Position: pos, Found: true, Cost: cost}, nil
		}
	}

	return Lookup{Cost: cost}, nil
}

// Name implements Strategy.
func (s *NoIndex) Name() string {
	return "No Index"
}

// Stats implements Strategy.
func (s *NoIndex) Stats() string {
	return "No index used"
}
