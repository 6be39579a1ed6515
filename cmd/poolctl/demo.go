package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amangaur31/poolalloc/pool"
)

var demoSize int64

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the allocation scenarios and print free-list snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pool.New(demoSize)
		if err != nil {
			return err
		}
		defer p.Close()
		return runWorkload(p, !quiet)
	},
}

func init() {
	demoCmd.Flags().Int64Var(&demoSize, "size", 1024, "Pool capacity in bytes")
	rootCmd.AddCommand(demoCmd)
}

// runWorkload drives the allocator through the two canonical scenarios:
// split-then-coalesce on three mixed-size blocks, and a triple merge across
// five equal blocks. With print enabled it snapshots the free list after
// every step.
func runWorkload(p *pool.Pool, print bool) error {
	show := func(caption string) error {
		if !print {
			return nil
		}
		printInfo("%s\n", caption)
		return printFreeList(p)
	}

	if err := show("Initial state:"); err != nil {
		return err
	}

	printInfo("--- Allocating 100, 200, and 50 bytes ---\n")
	p1, _, err := p.Alloc(100)
	if err != nil {
		return err
	}
	p2, _, err := p.Alloc(200)
	if err != nil {
		return err
	}
	p3, _, err := p.Alloc(50)
	if err != nil {
		return err
	}
	if err := show("State after allocations:"); err != nil {
		return err
	}

	if err := p.Free(p2); err != nil {
		return err
	}
	if err := show("After freeing the middle block (two free extents):"); err != nil {
		return err
	}

	if err := p.Free(p1); err != nil {
		return err
	}
	if err := show("After freeing the first block (merged with its right neighbor):"); err != nil {
		return err
	}

	if err := p.Free(p3); err != nil {
		return err
	}
	if err := show("After freeing the last block (single spanning extent again):"); err != nil {
		return err
	}

	printInfo("--- Allocating five 60-byte blocks ---\n")
	refs := make([]pool.Ref, 5)
	for i := range refs {
		refs[i], _, err = p.Alloc(60)
		if err != nil {
			return err
		}
	}
	if err := show("State after allocations:"); err != nil {
		return err
	}

	if err := p.Free(refs[1]); err != nil {
		return err
	}
	if err := p.Free(refs[3]); err != nil {
		return err
	}
	if err := show("After freeing the 2nd and 4th blocks:"); err != nil {
		return err
	}

	if err := p.Free(refs[2]); err != nil {
		return err
	}
	if err := show("After freeing the 3rd block (2nd through 4th merge):"); err != nil {
		return err
	}

	for _, ref := range []pool.Ref{refs[0], refs[4]} {
		if err := p.Free(ref); err != nil {
			return err
		}
	}
	return show("Final state:")
}

// printFreeList renders the current free list, one row per entry in
// traversal order.
func printFreeList(p *pool.Pool) error {
	snap := p.FreeList()
	if jsonOut {
		return printJSON(snap)
	}
	fmt.Println("--- Free List ---")
	if len(snap) == 0 {
		fmt.Println("[EMPTY]")
	}
	for i, fb := range snap {
		fmt.Printf("Block %2d: Offset = %5d, Size = %5d bytes\n", i, fb.Off, fb.Size)
	}
	fmt.Println("-----------------")
	fmt.Println()
	return nil
}
