package pool

import "github.com/Amangaur31/poolalloc/internal/format"

// Alloc returns a reference to a region of at least n usable bytes, plus a
// slice over the block's full usable extent. The search is first-fit over
// the free list in its current order, which is insertion order rather than
// address order.
//
// n <= 0 fails with ErrZeroSize and mutates nothing. When no free block
// fits, Alloc fails with ErrNoSpace and the pool is unchanged: the search
// itself is read-only until a candidate is committed.
func (p *Pool) Alloc(n int64) (Ref, []byte, error) {
	if p.closed {
		return NilRef, nil, ErrClosed
	}
	if n <= 0 {
		return NilRef, nil, ErrZeroSize
	}
	p.stats.AllocCalls++

	// A request the whole pool cannot hold can never fit, and rejecting it
	// here keeps n + HeaderSize below the int64 ceiling.
	if n > p.size-format.HeaderSize {
		p.stats.FailedAllocs++
		return NilRef, nil, ErrNoSpace
	}

	total := n + format.HeaderSize

	for off := p.freeHead; off != format.NilOffset; off = p.blockNext(off) {
		size := p.blockSize(off)
		if size < total {
			continue
		}

		if size > total+format.HeaderSize {
			// The leftover can host a header of its own: split. The low
			// part becomes the allocation of exactly total bytes and the
			// remainder takes the original's place in the free list.
			rem := off + total
			p.setBlockSize(rem, size-total)
			p.setBlockState(rem, format.StateFree)
			p.replace(off, rem)
			p.setBlockSize(off, total)
			size = total
			p.stats.SplitCount++
		} else {
			// Perfect fit, or a leftover too small to ever be reused:
			// hand out the whole block, slack included.
			p.unlink(off)
			if size > total {
				p.stats.AbsorbCount++
			}
		}

		p.setBlockState(off, format.StateAllocated)
		p.stats.BytesAllocated += size

		ref := off + format.HeaderSize
		return ref, p.region[ref : off+size], nil
	}

	p.stats.FailedAllocs++
	return NilRef, nil, ErrNoSpace
}

// Free returns a previously allocated block to the pool, coalescing it
// with physically adjacent free blocks in both directions. Free(NilRef)
// is a no-op.
//
// Freeing a reference that is not currently allocated (a double free, or
// a reference never returned by Alloc) is undefined behavior beyond the
// bounds check; see the package documentation.
func (p *Pool) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	if p.closed {
		return ErrClosed
	}
	off := ref - format.HeaderSize
	if off < 0 || off+format.HeaderSize > p.size {
		return ErrBadRef
	}
	p.stats.FreeCalls++

	size := p.blockSize(off)
	p.stats.BytesFreed += size

	// Right-coalesce first: the physically next block is pure address
	// arithmetic. Merging it now means a subsequent left merge absorbs
	// the combined extent in one step.
	if next := off + size; next < p.size && p.blockFree(next) {
		p.unlink(next)
		size += p.blockSize(next)
		p.setBlockSize(off, size)
		p.stats.CoalesceRight++
	}

	// Left-coalesce: the list is not address-ordered, so scan it for a
	// free block ending exactly where this one begins. On a hit the freed
	// block is absorbed into an existing entry and needs no insertion.
	for cur := p.freeHead; cur != format.NilOffset; cur = p.blockNext(cur) {
		if cur+p.blockSize(cur) == off {
			p.setBlockSize(cur, p.blockSize(cur)+size)
			p.stats.CoalesceLeft++
			return nil
		}
	}

	p.pushFree(off)
	return nil
}
