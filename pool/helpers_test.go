package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestPool constructs a pool of the given capacity and registers cleanup.
func newTestPool(t *testing.T, size int64) *Pool {
	t.Helper()
	p, err := New(size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// mustAlloc allocates n bytes or fails the test.
func mustAlloc(t *testing.T, p *Pool, n int64) Ref {
	t.Helper()
	ref, buf, err := p.Alloc(n)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, ref)
	require.GreaterOrEqual(t, int64(len(buf)), n, "payload must cover the request")
	return ref
}

// requireInvariants asserts the pool's structural invariants hold.
func requireInvariants(t *testing.T, p *Pool) {
	t.Helper()
	require.NoError(t, p.CheckInvariants())
}
