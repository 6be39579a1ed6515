// Package pool implements a fixed-capacity memory allocator with manual
// Alloc/Free semantics over one contiguous byte region.
//
// # Overview
//
// The pool is reserved once at construction and managed as a sequence of
// physically adjacent blocks, each prefixed by a 32-byte header holding its
// size, state, and free-list links. Free blocks form an intrusive doubly
// linked list threaded through their own headers, so the allocator needs no
// auxiliary bookkeeping memory: the metadata lives inside the bytes it
// manages. Blocks are addressed by integer offset into the region rather
// than raw pointers; the only platform-specific boundary is reserving and
// releasing the region itself.
//
// # Allocation
//
// Alloc performs a first-fit search over the free list in its current
// (insertion) order. When the chosen block is larger than needed by more
// than one header, it is split: the low part becomes the allocation and the
// remainder takes the original's place in the free list. Smaller leftovers
// are handed out with the block rather than stranded as fragments too small
// to ever be reused.
//
// # Deallocation
//
// Free eagerly coalesces in both directions. The right neighbor is found by
// address arithmetic (a block's offset plus its size is the next block's
// offset) and absorbed if free. The left neighbor requires a scan, because
// the free list is not address ordered: a free block whose end equals the
// freed block's start absorbs it. Only if no left merge happens is the
// block inserted at the head of the list. After every Free, no two
// physically adjacent blocks are both free.
//
// # Usage Example
//
//	p, err := pool.New(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ref, buf, err := p.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//
//	// Later, return the block to the pool.
//	err = p.Free(ref)
//
// # Diagnostics
//
// FreeList returns a read-only snapshot of the free list as (offset, size)
// pairs in traversal order. Stats exposes operation counters, and
// CheckInvariants validates the partition, the list links, and the
// no-adjacent-free-blocks property without mutating anything.
//
// # Caller Obligations
//
// Free detects nil and out-of-range references, but freeing a reference
// that is not currently allocated — a double free, or a reference never
// returned by Alloc — is undefined behavior, not a detected error. Callers
// must also not touch pool memory outside the extents returned by Alloc.
//
// # Thread Safety
//
// Pool instances are not thread-safe. All operations run synchronously on
// the calling goroutine; callers that share a pool across goroutines must
// serialize access externally with a single lock around every operation.
package pool
