package tape

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blueflylabor/fakeTape/config"
)

// ErrOutOfRange reports a seek or read beyond the block sequence, including
// any access against an empty device.
var ErrOutOfRange = errors.New("position out of range")

// Device simulates a sequential-access medium: an ordered, append-only
// sequence of blocks and a single head cursor. Every operation returns the
// simulated time it would cost on the real medium; costs are additive linear
// functions of payload size and seek distance, so accumulated cost alone is
// enough to compare strategies.
//
// The device is not safe for concurrent use; the harness owns it on a single
// logical thread.
type Device struct {
	blockSize  int
	readSpeed  float64 // bytes/second
	writeSpeed float64 // bytes/second
	seekTime   float64 // seconds per block of distance

	pos    int
	blocks []Block

	metrics *deviceMetrics
}

// New builds a device with the given timing parameters. Metrics are
// registered on reg, so use a fresh registry per device.
func New(opts config.DeviceOptions, reg prometheus.Registerer) *Device {
	return &Device{
		blockSize:  opts.BlockSize,
		readSpeed:  opts.ReadSpeed,
		writeSpeed: opts.WriteSpeed,
		seekTime:   opts.SeekTimePerBlock,
		metrics:    newDeviceMetrics(reg),
	}
}

// Write appends the block and returns the write cost, payload size over
// write throughput. Appending never fails and never moves the head.
func (d *Device) Write(b Block) float64 {
	d.blocks = append(d.blocks, b)

	cost := float64(b.Size()) / d.writeSpeed
	d.metrics.writes.Inc()
	d.metrics.bytesWritten.Add(float64(b.Size()))
	d.metrics.simulatedSeconds.Add(cost)
	return cost
}

// ReadCurrent returns the block under the head and the read cost, payload
// size over read throughput. It fails with ErrOutOfRange when the head does
// not address a block, which includes every read against an empty device.
func (d *Device) ReadCurrent() (Block, float64, error) {
	if d.pos >= len(d.blocks) {
		return Block{}, 0, errors.Wrapf(ErrOutOfRange, "read at position %d of %d", d.pos, len(d.blocks))
	}

	b := d.blocks[d.pos]
	cost := float64(b.Size()) / d.readSpeed
	d.metrics.reads.Inc()
	d.metrics.simulatedSeconds.Add(cost)
	return b, cost, nil
}

// Seek moves the head to target and returns the cost, distance times the
// per-block seek time. A zero-distance seek is charged zero. Targets outside
// [0, BlockCount) fail with ErrOutOfRange and leave the head where it was.
func (d *Device) Seek(target int) (float64, error) {
	if target < 0 || target >= len(d.blocks) {
		return 0, errors.Wrapf(ErrOutOfRange, "seek to block %d of %d", target, len(d.blocks))
	}

	distance := target - d.pos
	if distance < 0 {
		distance = -distance
	}
	cost := float64(distance) * d.seekTime
	d.pos = target

	d.metrics.seeks.Inc()
	d.metrics.seekDistance.Observe(float64(distance))
	d.metrics.simulatedSeconds.Add(cost)
	return cost, nil
}

// MoveForward advances the head n blocks, clamping at the last block, and
// charges the clamped distance. On an empty device it fails like Seek.
func (d *Device) MoveForward(n int) (float64, error) {
	target := d.pos + n
	if target >= len(d.blocks) {
		target = len(d.blocks) - 1
	}
	return d.Seek(target)
}

// MoveBackward rewinds the head n blocks, clamping at block zero, and
// charges the clamped distance. On an empty device it fails like Seek.
func (d *Device) MoveBackward(n int) (float64, error) {
	target := d.pos - n
	if target < 0 {
		target = 0
	}
	return d.Seek(target)
}

// Position reports the head position. It is only meaningful once the device
// holds at least one block.
func (d *Device) Position() int {
	return d.pos
}

// BlockCount reports how many blocks the medium holds.
func (d *Device) BlockCount() int {
	return len(d.blocks)
}

// BlockSize reports the configured block size in bytes.
func (d *Device) BlockSize() int {
	return d.blockSize
}

// BlockAt returns the block at index i without charging simulated time; it
// exists for inspection, not for the timing model.
func (d *Device) BlockAt(i int) (Block, error) {
	if i < 0 || i >= len(d.blocks) {
		return Block{}, errors.Wrapf(ErrOutOfRange, "block %d of %d", i, len(d.blocks))
	}
	return d.blocks[i], nil
}

// Reset clears the block sequence and rewinds the head.
func (d *Device) Reset() {
	d.blocks = nil
	d.pos = 0
}
