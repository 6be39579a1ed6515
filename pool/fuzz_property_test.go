package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Fuzz_RandomAllocFree_GuardInvariants performs random alloc/free
// sequences and validates the structural invariants after every step.
func Test_Fuzz_RandomAllocFree_GuardInvariants(t *testing.T) {
	const poolSize = 1 << 16

	p := newTestPool(t, poolSize)
	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility

	var live []Ref
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 || len(live) == 0 {
			n := int64(1 + rng.Intn(512))
			ref, _, err := p.Alloc(n)
			if err != nil {
				require.ErrorIs(t, err, ErrNoSpace, "step %d: only exhaustion may fail", i)
			} else {
				live = append(live, ref)
			}
		} else {
			idx := rng.Intn(len(live))
			require.NoError(t, p.Free(live[idx]), "step %d", i)
			live = append(live[:idx], live[idx+1:]...)
		}

		require.NoError(t, p.CheckInvariants(), "step %d", i)
	}

	// Draining every live allocation must coalesce the pool back to a
	// single spanning free block.
	for _, ref := range live {
		require.NoError(t, p.Free(ref))
	}
	require.NoError(t, p.CheckInvariants())
	require.Equal(t, []FreeBlock{{Off: 0, Size: poolSize}}, p.FreeList())
}
