package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amangaur31/poolalloc/pool"
)

var statsSize int64

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run the demo workload and print allocator counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pool.New(statsSize)
		if err != nil {
			return err
		}
		defer p.Close()

		if err := runWorkload(p, false); err != nil {
			return err
		}

		s := p.Stats()
		if jsonOut {
			return printJSON(s)
		}
		fmt.Printf("Alloc calls:     %d\n", s.AllocCalls)
		fmt.Printf("Free calls:      %d\n", s.FreeCalls)
		fmt.Printf("Failed allocs:   %d\n", s.FailedAllocs)
		fmt.Printf("Splits:          %d\n", s.SplitCount)
		fmt.Printf("Absorbed tails:  %d\n", s.AbsorbCount)
		fmt.Printf("Coalesce right:  %d\n", s.CoalesceRight)
		fmt.Printf("Coalesce left:   %d\n", s.CoalesceLeft)
		fmt.Printf("Bytes allocated: %d\n", s.BytesAllocated)
		fmt.Printf("Bytes freed:     %d\n", s.BytesFreed)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int64Var(&statsSize, "size", 1024, "Pool capacity in bytes")
	rootCmd.AddCommand(statsCmd)
}
