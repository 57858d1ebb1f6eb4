package main

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/govacuum/agent/utility"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
)

// UtilityCommand returns the command running the maximum expected
// utility policy, which evaluates the transition function for every
// action and moves to the candidate next state of highest utility
func UtilityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "utility",
		Short: "Run episodes under a maximum expected utility policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := newWorld()
			if err != nil {
				return err
			}

			p, err := utility.New(world, vacuumworld.Utility)
			if err != nil {
				return err
			}

			runPolicy("utility", p, world)
			return nil
		},
	}
}
