package pool

import "errors"

var (
	// ErrPoolTooSmall indicates the requested capacity cannot hold even one
	// block header. The pool is constructed but inert: every Alloc fails.
	ErrPoolTooSmall = errors.New("pool: capacity smaller than one block header")

	// ErrNoSpace indicates no free block is large enough for the request.
	ErrNoSpace = errors.New("pool: no free block large enough")

	// ErrZeroSize indicates a zero or negative allocation size. The request
	// is rejected without side effects.
	ErrZeroSize = errors.New("pool: zero-size allocation")

	// ErrBadRef indicates a reference outside the pool's bounds.
	ErrBadRef = errors.New("pool: bad block reference")

	// ErrClosed indicates the pool has been closed and its region released.
	ErrClosed = errors.New("pool: allocator closed")
)
