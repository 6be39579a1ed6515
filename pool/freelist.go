package pool

import "github.com/Amangaur31/poolalloc/internal/format"

// Intrusive free-list maintenance. The list is doubly linked through the
// block headers themselves and is ordered by insertion, not by address.

// unlink removes the block at off from the free list, stitching its
// neighbors together. The block's own links are left stale; they stop
// being meaningful the moment the block leaves the list.
func (p *Pool) unlink(off int64) {
	prev := p.blockPrev(off)
	next := p.blockNext(off)
	if prev != format.NilOffset {
		p.setBlockNext(prev, next)
	} else {
		p.freeHead = next
	}
	if next != format.NilOffset {
		p.setBlockPrev(next, prev)
	}
}

// pushFree marks the block at off free and inserts it at the head of the
// list.
func (p *Pool) pushFree(off int64) {
	p.setBlockState(off, format.StateFree)
	p.setBlockNext(off, p.freeHead)
	p.setBlockPrev(off, format.NilOffset)
	if p.freeHead != format.NilOffset {
		p.setBlockPrev(p.freeHead, off)
	}
	p.freeHead = off
}

// replace substitutes the block at newOff for the one at oldOff, keeping
// the same list neighbors. Used when splitting: the remainder takes the
// place of the block it was carved from, so list order is preserved.
func (p *Pool) replace(oldOff, newOff int64) {
	prev := p.blockPrev(oldOff)
	next := p.blockNext(oldOff)
	p.setBlockNext(newOff, next)
	p.setBlockPrev(newOff, prev)
	if prev != format.NilOffset {
		p.setBlockNext(prev, newOff)
	} else {
		p.freeHead = newOff
	}
	if next != format.NilOffset {
		p.setBlockPrev(next, newOff)
	}
}
