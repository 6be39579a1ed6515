package pool

import "github.com/Amangaur31/poolalloc/internal/format"

// FreeBlock describes one free-list entry in a snapshot.
type FreeBlock struct {
	Off  int64 `json:"offset"`
	Size int64 `json:"size"`
}

// FreeList returns the current free list as (offset, size) pairs in
// traversal order. It never mutates the pool. An exhausted pool yields an
// empty snapshot.
func (p *Pool) FreeList() []FreeBlock {
	var out []FreeBlock
	for off := p.freeHead; off != format.NilOffset; off = p.blockNext(off) {
		out = append(out, FreeBlock{Off: off, Size: p.blockSize(off)})
	}
	return out
}

// FreeBytes returns the total number of free bytes, header overhead
// included.
func (p *Pool) FreeBytes() int64 {
	var total int64
	for off := p.freeHead; off != format.NilOffset; off = p.blockNext(off) {
		total += p.blockSize(off)
	}
	return total
}
