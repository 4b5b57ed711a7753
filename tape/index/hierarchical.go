package index

import (
	"fmt"

	"github.com/blueflylabor/fakeTape/tape"
)

// Identifiers of the two summary blocks appended by the hierarchical build.
// They sit above the data identifier range.
const (
	level2SummaryID = 1_000_000
	level1SummaryID = 2_000_000
)

// Default bucket widths when none are configured.
const (
	defaultLevel1Interval = 100
	defaultLevel2Interval = 10
)

// bucketRef addresses a data block by its two-level bucket coordinates.
type bucketRef struct {
	l1 int
	l2 int
}

// Hierarchical buckets data blocks by their ordinal in the build walk:
// level2Interval consecutive data blocks share a level-2 bucket and
// level1Interval level-2 buckets share a level-1 bucket. The build appends
// two empty summary blocks at the end of the tape; lookups consult both
// before seeking an approximate position recovered from the bucket
// coordinates.
type Hierarchical struct {
	level1Interval int
	level2Interval int
	index          map[uint64]bucketRef
}

// NewHierarchical returns a hierarchical strategy with the given bucket
// widths. Non-positive widths fall back to the defaults.
func NewHierarchical(level1, level2 int) *Hierarchical {
	if level1 <= 0 {
		level1 = defaultLevel1Interval
	}
	if level2 <= 0 {
		level2 = defaultLevel2Interval
	}
	return &Hierarchical{
		level1Interval: level1,
		level2Interval: level2,
		index:          make(map[uint64]bucketRef),
	}
}

// BuildIndex walks the blocks present at call time, collecting data-block
// identifiers in encounter order, then appends the level-2 and level-1
// summary blocks and computes each identifier's bucket coordinates from its
// ordinal in the walk, not its tape position. The head is restored to where
// it started.
func (s *Hierarchical) BuildIndex(dev *tape.Device) (float64, error) {
	s.index = make(map[uint64]bucketRef)

	n := dev.BlockCount()
	if n == 0 {
		return 0, nil
	}

	start := dev.Position()
	var cost float64

	c, err := dev.Seek(0)
	cost += c
	if err != nil {
		return cost, err
	}

	var ids []uint64
	for pos := 0; pos < n; pos++ {
		blk, c, err := dev.ReadCurrent()
		cost += c
		if err != nil {
			return cost, err
		}
		if !blk.Index {
			ids = append(ids, blk.ID)
		}

		if pos < n-1 {
			c, err := dev.MoveForward(1)
			cost += c
			if err != nil {
				return cost, err
			}
		}
	}

	cost += dev.Write(tape.NewIndexBlock(level2SummaryID))
	cost += dev.Write(tape.NewIndexBlock(level1SummaryID))

	for ordinal, id := range ids {
		l2 := ordinal / s.level2Interval
		l1 := l2 / s.level1Interval
		s.index[id] = bucketRef{l1: l1, l2: l2}
	}

	c, err = dev.Seek(start)
	cost += c
	if err != nil {
		return cost, err
	}
	return cost, nil
}

// FindBlock looks the identifier up in the bucket map. On a hit it always
// seeks to and reads both trailing summary blocks, charging their cost, then
// recovers a candidate position from the bucket coordinates, clamped below
// the summary region, and verifies the block there. An identifier absent
// from the map is reported not found without touching the device.
//
// The recovered position is an approximation: ordinals round down to their
// level-2 bucket start and the level-1 component is counted twice for later
// buckets, so verification fails for blocks the formula lands short of or
// beyond. Callers get not-found with the cost already paid in that case.
func (s *Hierarchical) FindBlock(dev *tape.Device, id uint64) (Lookup, error) {
	ref, ok := s.index[id]
	if !ok {
		return Lookup{}, nil
	}

	count := dev.BlockCount()
	var cost float64

	for _, pos := range []int{count - 2, count - 1} {
		c, err := dev.Seek(pos)
		cost += c
		if err != nil {
			return Lookup{Cost: cost}, err
		}
		_, c, err = dev.ReadCurrent()
		cost += c
		if err != nil {
			return Lookup{Cost: cost}, err
		}
	}

	target := (ref.l1*s.level1Interval + ref.l2) * s.level2Interval
	if target >= count-2 {
		target = count - 3
	}

	c, err := dev.Seek(target)
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
	return Lookup{Position: target, Found: true, Cost: cost}, nil
}

// Name implements Strategy.
func (s *Hierarchical) Name() string {
	return "Hierarchical Index"
}

// Stats implements Strategy.
func (s *Hierarchical) Stats() string {
	return fmt.Sprintf("Level1 interval: %d, Level2 interval: %d, Index entries: %d",
		s.level1Interval, s.level2Interval, len(s.index))
}
