// Package format defines the binary layout of the block header that
// prefixes every block in a managed pool. The goal is to keep the
// byte-level encoding focused and independent from the allocator so the
// pool package can treat the region as typed structures without owning
// the layout details.
package format

const (
	// HeaderSize is the number of bytes occupied by the block header.
	// Every block, free or allocated, starts with one, and a block is
	// never smaller than its own header.
	HeaderSize = 32

	// BlockSizeOff is the offset of the total block size field (int64).
	// The size includes the header itself.
	BlockSizeOff = 0

	// BlockNextOff and BlockPrevOff hold the free-list links (int64
	// block offsets). They are meaningful only while the block is free;
	// NilOffset marks the end of the list in either direction.
	BlockNextOff = 8
	BlockPrevOff = 16

	// BlockStateOff is the offset of the state field (uint32), holding
	// StateAllocated or StateFree. The trailing 4 bytes of the header
	// are padding.
	BlockStateOff = 24

	// StateAllocated and StateFree are the two legal state values.
	StateAllocated uint32 = 0
	StateFree      uint32 = 1
)

// NilOffset marks an absent free-list link. Offset 0 is the first block
// of the pool, so the sentinel must be negative.
const NilOffset int64 = -1
