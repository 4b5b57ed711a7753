// Package index implements the indexing strategies compared by the
// simulation: a bare linear scan, a fixed-interval position map, and a
// two-level hierarchical index. Strategies accumulate simulated device cost;
// they never measure wall-clock time.
package index

import (
	"github.com/pkg/errors"

	"github.com/blueflylabor/fakeTape/tape"
)

// ErrUnknownStrategy reports a strategy name New does not recognize.
var ErrUnknownStrategy = errors.New("unknown index strategy")

// Lookup is the outcome of a single FindBlock call. Cost is charged even
// when the block was not found.
type Lookup struct {
	Position int
	Found    bool
	Cost     float64 // simulated seconds
}

// Strategy builds an auxiliary index over a device's blocks and resolves
// data identifiers to tape positions.
//
// BuildIndex rebuilds the index from scratch and may append index blocks to
// the device as a side effect; each implementation documents exactly how
// many blocks it appends and where. BuildIndex restores the head to the
// position held at call start and is a no-op on an empty device. FindBlock
// charges every seek and read it performs against the device, including
// lookups that end in a miss.
type Strategy interface {
	BuildIndex(dev *tape.Device) (float64, error)
	FindBlock(dev *tape.Device, id uint64) (Lookup, error)
	Name() string
	Stats() string
}

// Options carries the strategy parameters. Zero values select each
// strategy's own default.
type Options struct {
	FixedInterval  int
	Level1Interval int
	Level2Interval int
}

// New constructs the strategy named "none", "fixed" or "hierarchical".
// Unrecognized names fail with ErrUnknownStrategy.
func New(name string, opts Options) (Strategy, error) {
	switch name {
	case "none":
		return NewNoIndex(), nil
	case "fixed":
		return NewFixedInterval(opts.FixedInterval), nil
	case "hierarchical":
		return NewHierarchical(opts.Level1Interval, opts.Level2Interval), nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
}
