package pool

import (
	"fmt"

	"github.com/Amangaur31/poolalloc/internal/format"
)

// CheckInvariants validates the allocator's structural invariants and
// returns a descriptive error for the first violation found:
//
//   - every header decodes cleanly (sane size, legal state);
//   - the free list's links are reciprocal and every entry is free;
//   - blocks tile [0, Size) exactly, each at least one header large;
//   - every physically free block is on the free list exactly once;
//   - no two physically adjacent blocks are both free.
//
// The check is read-only and intended for tests and diagnostics. Headers
// are decoded through format.ReadBlockHeader, so its bounds and sanity
// checks apply to every block visited.
func (p *Pool) CheckInvariants() error {
	if p.region == nil {
		if p.freeHead != format.NilOffset {
			return fmt.Errorf("pool: free list head %d with no region", p.freeHead)
		}
		return nil
	}

	// Walk the free list, checking membership, state, and link
	// reciprocity.
	listed := make(map[int64]bool)
	prev := format.NilOffset
	for off := p.freeHead; off != format.NilOffset; {
		h, err := format.ReadBlockHeader(p.region, off)
		if err != nil {
			return fmt.Errorf("pool: free-list entry: %w", err)
		}
		if listed[off] {
			return fmt.Errorf("pool: block %d appears on the free list twice", off)
		}
		listed[off] = true
		if !h.Free {
			return fmt.Errorf("pool: allocated block %d is on the free list", off)
		}
		if h.Prev != prev {
			return fmt.Errorf("pool: block %d prev link is %d, want %d", off, h.Prev, prev)
		}
		prev = off
		off = h.Next
	}

	// Walk the physical block sequence: sizes sum exactly to the pool
	// size with no gaps or overlaps.
	var off int64
	prevFree := false
	for off < p.size {
		h, err := format.ReadBlockHeader(p.region, off)
		if err != nil {
			return fmt.Errorf("pool: block walk: %w", err)
		}
		if h.Free {
			if !listed[off] {
				return fmt.Errorf("pool: free block %d missing from the free list", off)
			}
			if prevFree {
				return fmt.Errorf("pool: adjacent free blocks at %d", off)
			}
			delete(listed, off)
		}
		prevFree = h.Free
		off += h.Size
	}

	for off := range listed {
		return fmt.Errorf("pool: free-list entry %d is not a block start", off)
	}
	return nil
}
