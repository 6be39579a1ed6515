package pool

import (
	"fmt"

	"github.com/Amangaur31/poolalloc/internal/format"
)

// Ref is a payload offset into the pool, as returned by Alloc. The block
// header sits immediately before it.
type Ref = int64

// NilRef is the null reference. Free(NilRef) is a no-op. Payloads always
// start at format.HeaderSize or later, so 0 is never a valid Ref.
const NilRef Ref = 0

// Pool owns one contiguous byte region and manages it as a sequence of
// blocks, each either allocated or free. Free blocks are linked into an
// intrusive doubly linked list threaded through their headers; freeHead is
// the list's only external anchor.
type Pool struct {
	region   []byte
	size     int64
	freeHead int64 // block offset of the list head, format.NilOffset when empty
	closed   bool
	stats    Stats
}

// New reserves poolSize contiguous bytes from the host and initializes a
// single free block spanning the entire region.
//
// A poolSize smaller than one block header yields a constructed but inert
// allocator together with ErrPoolTooSmall: the pool holds no region, every
// subsequent Alloc fails with ErrNoSpace, and FreeList is empty.
func New(poolSize int64) (*Pool, error) {
	if poolSize < format.HeaderSize {
		return &Pool{freeHead: format.NilOffset}, ErrPoolTooSmall
	}

	region, err := reserveRegion(poolSize)
	if err != nil {
		return nil, fmt.Errorf("pool: reserve %d bytes: %w", poolSize, err)
	}

	p := &Pool{
		region:   region,
		size:     poolSize,
		freeHead: 0,
	}
	p.setBlockSize(0, poolSize)
	p.setBlockState(0, format.StateFree)
	p.setBlockNext(0, format.NilOffset)
	p.setBlockPrev(0, format.NilOffset)
	return p, nil
}

// Close releases the region back to the host. The pool is unusable
// afterwards: Alloc and Free return ErrClosed. Closing an already-closed
// pool is a no-op.
func (p *Pool) Close() error {
	if p == nil || p.closed {
		return nil
	}
	var err error
	if p.region != nil {
		err = releaseRegion(p.region)
		p.region = nil
	}
	p.closed = true
	p.freeHead = format.NilOffset
	return err
}

// Size returns the pool's total capacity in bytes, header overhead included.
func (p *Pool) Size() int64 { return p.size }

// Header field accessors. All offsets are block starts; the bounds are the
// caller's responsibility, matching the trust the allocator places in its
// own free-list links.

func (p *Pool) blockSize(off int64) int64 {
	return format.ReadI64(p.region, off+format.BlockSizeOff)
}

func (p *Pool) setBlockSize(off, size int64) {
	format.PutI64(p.region, off+format.BlockSizeOff, size)
}

func (p *Pool) blockFree(off int64) bool {
	return format.ReadU32(p.region, off+format.BlockStateOff) == format.StateFree
}

func (p *Pool) setBlockState(off int64, state uint32) {
	format.PutU32(p.region, off+format.BlockStateOff, state)
}

func (p *Pool) blockNext(off int64) int64 {
	return format.ReadI64(p.region, off+format.BlockNextOff)
}

func (p *Pool) setBlockNext(off, next int64) {
	format.PutI64(p.region, off+format.BlockNextOff, next)
}

func (p *Pool) blockPrev(off int64) int64 {
	return format.ReadI64(p.region, off+format.BlockPrevOff)
}

func (p *Pool) setBlockPrev(off, prev int64) {
	format.PutI64(p.region, off+format.BlockPrevOff, prev)
}
