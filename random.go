package main

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/govacuum/agent/random"
)

// RandomCommand returns the command running the uniformly random
// policy, which accumulates the -1 per-step reward with no regard for
// the state of the rooms
func RandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Run episodes under a uniformly random policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := newWorld()
			if err != nil {
				return err
			}

			runPolicy("random", random.New(world, seed), world)
			return nil
		},
	}
}
