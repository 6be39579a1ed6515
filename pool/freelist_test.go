package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amangaur31/poolalloc/internal/format"
)

// Test_FreeListInsertionOrder verifies the list is most-recently-freed
// first, not address ordered.
func Test_FreeListInsertionOrder(t *testing.T) {
	p := newTestPool(t, 1024)

	blockTotal := int64(64 + format.HeaderSize) // 96 bytes per block
	a := mustAlloc(t, p, 64)                    // [0, 96)
	mustAlloc(t, p, 64)                         // [96, 192) stays allocated
	c := mustAlloc(t, p, 64)                    // [192, 288)

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(c)) // right-merges with the trailing remainder

	snap := p.FreeList()
	require.Len(t, snap, 2)
	assert.Equal(t, FreeBlock{Off: 2 * blockTotal, Size: 1024 - 2*blockTotal}, snap[0],
		"most recently freed block heads the list")
	assert.Equal(t, FreeBlock{Off: 0, Size: blockTotal}, snap[1])
	requireInvariants(t, p)
}

// Test_FirstFitFollowsListOrder verifies the search takes the first
// fitting entry in traversal order, even when a lower-address block would
// also fit.
func Test_FirstFitFollowsListOrder(t *testing.T) {
	p := newTestPool(t, 1024)

	blockTotal := int64(64 + format.HeaderSize)
	a := mustAlloc(t, p, 64)
	mustAlloc(t, p, 64)
	c := mustAlloc(t, p, 64)

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(c))

	// Head of the list is the high-address extent at 192; the block at 0
	// fits too but must not be chosen.
	ref := mustAlloc(t, p, 64)
	assert.Equal(t, 2*blockTotal+format.HeaderSize, ref,
		"first fit is first encountered, not lowest address")
	requireInvariants(t, p)
}

func Test_SnapshotDoesNotMutate(t *testing.T) {
	p := newTestPool(t, 1024)
	mustAlloc(t, p, 100)

	first := p.FreeList()
	second := p.FreeList()
	require.Equal(t, first, second)

	// Tampering with the snapshot must not reach the pool.
	first[0].Size = 1
	require.Equal(t, second, p.FreeList())
	requireInvariants(t, p)
}

func Test_EmptyFreeListIsRepresentable(t *testing.T) {
	p := newTestPool(t, 256)

	ref, _, err := p.Alloc(256 - format.HeaderSize)
	require.NoError(t, err)

	assert.Empty(t, p.FreeList())
	assert.Zero(t, p.FreeBytes())
	requireInvariants(t, p)

	require.NoError(t, p.Free(ref))
	assert.Equal(t, []FreeBlock{{Off: 0, Size: 256}}, p.FreeList())
}
