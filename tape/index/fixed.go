package index

import (
	"fmt"

	"github.com/blueflylabor/fakeTape/tape"
)

// fixedIndexIDOffset lifts appended index-block identifiers out of the data
// identifier range so a stale map entry can never verify against an index
// block.
const fixedIndexIDOffset = 1_000_000

// defaultFixedInterval is the number of data records grouped under one
// appended index block when no interval is configured.
const defaultFixedInterval = 10

// FixedInterval keeps an exact identifier-to-position map and appends one
// empty index block to the tape for every interval data records seen during
// the build. Lookups seek straight to the mapped position and verify the
// block there.
type FixedInterval struct {
	interval int
	index    map[uint64]int
}

// NewFixedInterval returns a fixed-interval strategy grouping interval data
// records per appended index block. Non-positive intervals fall back to the
// default.
func NewFixedInterval(interval int) *FixedInterval {
	if interval <= 0 {
		interval = defaultFixedInterval
	}
	return &FixedInterval{
		interval: interval,
		index:    make(map[uint64]int),
	}
}

// BuildIndex walks the whole tape once, recording the exact position of
// every data block and appending an empty index block after each interval of
// distinct identifiers. Appends land at the end of the tape, so the walk
// grows under its own feet and sweeps over its freshly written index blocks,
// which it skips. The head is restored to where it started.
func (s *FixedInterval) BuildIndex(dev *tape.Device) (float64, error) {
	s.index = make(map[uint64]int)

	if dev.BlockCount() == 0 {
		return 0, nil
	}

	start := dev.Position()
	var cost float64

	for pos := 0; pos < dev.BlockCount(); pos++ {
		c, err := dev.Seek(pos)
		cost += c
		if err != nil {
			return cost, err
		}

		blk, c, err := dev.ReadCurrent()
		cost += c
		if err != nil {
			return cost, err
		}
		if blk.Index {
			continue
		}

		s.index[blk.ID] = pos
		if len(s.index)%s.interval == 0 {
			cost += dev.Write(tape.NewIndexBlock(blk.ID + fixedIndexIDOffset))

			c, err := dev.MoveForward(1)
			cost += c
			if err != nil {
				return cost, err
			}
		}
	}

	c, err := dev.Seek(start)
	cost += c
	if err != nil {
		return cost, err
	}
	return cost, nil
}

// FindBlock looks the identifier up in the map, seeks to the recorded
// position and reads the block there to verify it. An identifier absent from
// the map is reported not found without touching the device. A verification
// mismatch, possible when the tape changed after the build, is reported not
// found with the cost already paid.
func (s *FixedInterval) FindBlock(dev *tape.Device, id uint64) (Lookup, error) {
	pos, ok := s.index[id]
	if !ok {
		return Lookup{}, nil
	}

	var cost float64

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

	if blk.ID != id {
		return Lookup{Cost: cost}, nil
	}
	return Lookup{Position: pos, Found: true, Cost: cost}, nil
}

// Name implements Strategy.
func (s *FixedInterval) Name() string {
	return "Fixed Interval Index"
}

// Stats implements Strategy.
func (s *FixedInterval) Stats() string {
	return fmt.Sprintf("Interval: %d, Index entries: %d", s.interval, len(s.index))
}
