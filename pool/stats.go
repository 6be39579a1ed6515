package pool

// Stats holds counters maintained across Alloc/Free calls, for testing and
// instrumentation.
type Stats struct {
	AllocCalls    int // Alloc calls past the argument checks
	FreeCalls     int // Free calls past the nil/bounds checks
	FailedAllocs  int // Allocs that found no block large enough
	SplitCount    int // Blocks split during allocation
	AbsorbCount   int // Allocations that absorbed a too-small leftover
	CoalesceRight int // Merges with the physically next block
	CoalesceLeft  int // Merges into a free block ending at the freed one

	BytesAllocated int64 // Total bytes handed out, headers included
	BytesFreed     int64 // Total bytes returned, headers included
}

// Stats returns a copy of the current counters.
func (p *Pool) Stats() Stats { return p.stats }
