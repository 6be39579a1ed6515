package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amangaur31/poolalloc/internal/format"
)

func TestCheckInvariantsRejectsCorruptState(t *testing.T) {
	p := newTestPool(t, 1024)
	mustAlloc(t, p, 100)

	// Scribble an impossible state value into the first block's header.
	format.PutU32(p.region, format.BlockStateOff, 7)

	err := p.CheckInvariants()
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrCorrupt)
}

func TestCheckInvariantsRejectsUndersizedBlock(t *testing.T) {
	p := newTestPool(t, 1024)
	mustAlloc(t, p, 100)

	// A size smaller than one header cannot be a real block.
	format.PutI64(p.region, format.BlockSizeOff, 8)

	assert.ErrorIs(t, p.CheckInvariants(), format.ErrCorrupt)
}
