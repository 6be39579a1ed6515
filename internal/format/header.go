package format

import "fmt"

// BlockHeader is the decoded form of the metadata record prefixing a block.
//
// Header layout (little-endian):
//
//	Offset  Size  Description
//	0x00    8     Total block size in bytes, header included (int64).
//	0x08    8     Free-list next link: block offset, NilOffset when absent.
//	0x10    8     Free-list prev link: block offset, NilOffset when absent.
//	0x18    4     State: StateAllocated or StateFree.
//	0x1C    4     Padding.
//
// The links are only meaningful while the block is free.
type BlockHeader struct {
	Off  int64 // Block start offset within the pool
	Size int64 // Total size including the header
	Free bool
	Next int64
	Prev int64
}

// ReadBlockHeader decodes the header at off. The caller must pass the
// offset of a block start; headers absorbed by coalescing are interior
// bytes and decode to garbage.
func ReadBlockHeader(b []byte, off int64) (BlockHeader, error) {
	if off < 0 || off+HeaderSize > int64(len(b)) {
		return BlockHeader{}, fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	size := ReadI64(b, off+BlockSizeOff)
	if size < HeaderSize || off+size > int64(len(b)) {
		return BlockHeader{}, fmt.Errorf("header at %d: size %d: %w", off, size, ErrCorrupt)
	}
	state := ReadU32(b, off+BlockStateOff)
	if state != StateAllocated && state != StateFree {
		return BlockHeader{}, fmt.Errorf("header at %d: state %d: %w", off, state, ErrCorrupt)
	}
	return BlockHeader{
		Off:  off,
		Size: size,
		Free: state == StateFree,
		Next: ReadI64(b, off+BlockNextOff),
		Prev: ReadI64(b, off+BlockPrevOff),
	}, nil
}

// WriteBlockHeader encodes h into b at h.Off. It is the inverse of
// ReadBlockHeader and performs no validation beyond bounds.
func WriteBlockHeader(b []byte, h BlockHeader) error {
	if h.Off < 0 || h.Off+HeaderSize > int64(len(b)) {
		return fmt.Errorf("header at %d: %w", h.Off, ErrTruncated)
	}
	PutI64(b, h.Off+BlockSizeOff, h.Size)
	PutI64(b, h.Off+BlockNextOff, h.Next)
	PutI64(b, h.Off+BlockPrevOff, h.Prev)
	state := StateAllocated
	if h.Free {
		state = StateFree
	}
	PutU32(b, h.Off+BlockStateOff, state)
	PutU32(b, h.Off+BlockStateOff+4, 0)
	return nil
}
