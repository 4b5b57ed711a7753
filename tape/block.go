package tape

// Block is the unit of storage on the simulated medium. A block is immutable
// once written: the device appends blocks and never deletes or rewrites them.
type Block struct {
	ID      uint64
	Payload []byte
	Index   bool // true for index/summary blocks written by a strategy
}

// NewDataBlock returns a data block carrying the given payload.
func NewDataBlock(id uint64, payload []byte) Block {
	return Block{ID: id, Payload: payload}
}

// NewIndexBlock returns an empty-payload index block. Index blocks cost
// nothing to read or write under the timing model; only their tape positions
// matter.
func NewIndexBlock(id uint64) Block {
	return Block{ID: id, Index: true}
}

// Size reports the payload size in bytes, the quantity the timing model
// charges for.
func (b Block) Size() int {
	return len(b.Payload)
}
