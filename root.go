package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	env "github.com/samuelfneumann/govacuum/environment"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
)

// Flags common to every demonstration
var (
	episodes int
	horizon  int
	seed     uint64
	discount float64

	returnsFile string
	lengthsFile string
	plotFile    string

	render      bool
	renderDelay time.Duration

	randomStart bool
	startRoom   string
	startDustA  float64
	startDustB  float64
)

// RootCommand returns the root command line argument parser, holding
// one subcommand per decision strategy
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "govacuum",
		Short: "Decision strategies for a vacuum agent in a two-room world",
	}

	cmd.PersistentFlags().IntVar(&episodes, "episodes", 10,
		"Number of episodes to run")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", 1000,
		"Maximum number of steps per episode")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 192382,
		"Random seed for starting states and random policies")
	cmd.PersistentFlags().Float64Var(&discount, "discount", 1.0,
		"Discount factor")

	cmd.PersistentFlags().StringVar(&returnsFile, "returns",
		"./returns.bin", "File to save episodic returns to")
	cmd.PersistentFlags().StringVar(&lengthsFile, "lengths",
		"./lengths.bin", "File to save episode lengths to")
	cmd.PersistentFlags().StringVar(&plotFile, "plot", "",
		"If set, save a plot of episodic returns to this file")

	cmd.PersistentFlags().BoolVar(&render, "render", false,
		"Render each timestep of each episode")
	cmd.PersistentFlags().DurationVar(&renderDelay, "delay",
		250*time.Millisecond, "Delay between rendered timesteps")

	cmd.PersistentFlags().BoolVar(&randomStart, "random-start", true,
		"Draw starting states uniformly at random")
	cmd.PersistentFlags().StringVar(&startRoom, "room", "A",
		"Starting room when --random-start=false (A or B)")
	cmd.PersistentFlags().Float64Var(&startDustA, "dust-a", 0.5,
		"Starting dust level of room A when --random-start=false")
	cmd.PersistentFlags().Float64Var(&startDustB, "dust-b", 0.5,
		"Starting dust level of room B when --random-start=false")

	cmd.AddCommand(RandomCommand())
	cmd.AddCommand(UtilityCommand())

	return cmd
}

// newWorld constructs the vacuum world environment described by the
// command line flags
func newWorld() (*vacuumworld.VacuumWorld, error) {
	starter, err := newStarter()
	if err != nil {
		return nil, err
	}

	task := vacuumworld.NewCleanAll(starter, horizon)
	world, _ := vacuumworld.New(task, discount)
	return world, nil
}

// newStarter constructs the starting state distribution described by
// the command line flags
func newStarter() (env.Starter, error) {
	if randomStart {
		return vacuumworld.NewUniformStart(seed), nil
	}

	var room float64
	switch strings.ToUpper(startRoom) {
	case "A":
		room = vacuumworld.RoomA
	case "B":
		room = vacuumworld.RoomB
	default:
		return nil, fmt.Errorf("no such room %q, must be A or B", startRoom)
	}

	return vacuumworld.NewSingleStart(room, startDustA, startDustB)
}
