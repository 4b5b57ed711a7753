package tape

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueflylabor/fakeTape/config"
)

func testOptions() config.DeviceOptions {
	return config.DeviceOptions{
		BlockSize:        4096,
		ReadSpeed:        1024 * 1024,
		WriteSpeed:       512 * 1024,
		SeekTimePerBlock: 0.01,
	}
}

func newTestDevice(t *testing.T, payloadSizes ...int) *Device {
	t.Helper()

	dev := New(testOptions(), prometheus.NewRegistry())
	for i, size := range payloadSizes {
		dev.Write(NewDataBlock(uint64(i+1), make([]byte, size)))
	}
	return dev
}

func TestWriteCost(t *testing.T) {
	dev := newTestDevice(t)

	cost := dev.Write(NewDataBlock(7, make([]byte, 2048)))
	require.InDelta(t, 2048.0/(512*1024), cost, 1e-12)
	require.Equal(t, 1, dev.BlockCount())

	// Writing never moves the head.
	require.Equal(t, 0, dev.Position())

	// Empty-payload index blocks are free to write.
	require.Zero(t, dev.Write(NewIndexBlock(1000007)))
	require.Equal(t, 2, dev.BlockCount())
}

func TestReadCurrentCost(t *testing.T) {
	dev := newTestDevice(t, 1024, 4096)

	blk, cost, err := dev.ReadCurrent()
	require.NoError(t, err)
	assert.EqualValues(t, 1, blk.ID)
	assert.InDelta(t, 1024.0/(1024*1024), cost, 1e-12)

	_, err = dev.Seek(1)
	require.NoError(t, err)

	blk, cost, err = dev.ReadCurrent()
	require.NoError(t, err)
	assert.EqualValues(t, 2, blk.ID)
	assert.InDelta(t, 4096.0/(1024*1024), cost, 1e-12)
}

func TestReadCurrentEmptyDevice(t *testing.T) {
	dev := newTestDevice(t)

	_, _, err := dev.ReadCurrent()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSeekCostAndPosition(t *testing.T) {
	dev := newTestDevice(t, 10, 10, 10, 10, 10)

	cost, err := dev.Seek(4)
	require.NoError(t, err)
	assert.Equal(t, 4, dev.Position())
	assert.InDelta(t, 4*0.01, cost, 1e-12)

	cost, err = dev.Seek(1)
	require.NoError(t, err)
	assert.Equal(t, 1, dev.Position())
	assert.InDelta(t, 3*0.01, cost, 1e-12)

	// A zero-distance seek is still a seek, charged zero.
	cost, err = dev.Seek(1)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestSeekOutOfRange(t *testing.T) {
	dev := newTestDevice(t, 10, 10)

	_, err := dev.Seek(2)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = dev.Seek(-1)
	require.ErrorIs(t, err, ErrOutOfRange)

	// Failed seeks leave the head untouched.
	assert.Equal(t, 0, dev.Position())

	empty := newTestDevice(t)
	_, err = empty.Seek(0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMoveClamping(t *testing.T) {
	dev := newTestDevice(t, 10, 10, 10, 10)

	cost, err := dev.MoveForward(100)
	require.NoError(t, err)
	assert.Equal(t, 3, dev.Position())
	assert.InDelta(t, 3*0.01, cost, 1e-12)

	cost, err = dev.MoveBackward(100)
	require.NoError(t, err)
	assert.Equal(t, 0, dev.Position())
	assert.InDelta(t, 3*0.01, cost, 1e-12)

	cost, err = dev.MoveForward(1)
	require.NoError(t, err)
	assert.Equal(t, 1, dev.Position())
	assert.InDelta(t, 0.01, cost, 1e-12)

	cost, err = dev.MoveBackward(1)
	require.NoError(t, err)
	assert.Equal(t, 0, dev.Position())
	assert.InDelta(t, 0.01, cost, 1e-12)
}

func TestMoveOnEmptyDevice(t *testing.T) {
	dev := newTestDevice(t)

	_, err := dev.MoveForward(1)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = dev.MoveBackward(1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBlockAt(t *testing.T) {
	dev := newTestDevice(t, 10, 20)

	blk, err := dev.BlockAt(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, blk.ID)
	assert.Equal(t, 20, blk.Size())

	_, err = dev.BlockAt(2)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = dev.BlockAt(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestReset(t *testing.T) {
	dev := newTestDevice(t, 10, 10, 10)
	_, err := dev.Seek(2)
	require.NoError(t, err)

	dev.Reset()
	assert.Equal(t, 0, dev.BlockCount())
	assert.Equal(t, 0, dev.Position())

	_, _, err = dev.ReadCurrent()
	require.ErrorIs(t, err, ErrOutOfRange)
}
