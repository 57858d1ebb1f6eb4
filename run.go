package main

import (
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/progressbar"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/govacuum/agent"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
	"github.com/samuelfneumann/govacuum/experiment"
	"github.com/samuelfneumann/govacuum/experiment/tracker"
	"github.com/samuelfneumann/govacuum/utils/floatutils"
)

// runPolicy runs the argument policy on the world for the configured
// number of episodes, tracking episodic returns and episode lengths,
// then prints a summary of the accumulated rewards.
func runPolicy(name string, p agent.Policy, world *vacuumworld.VacuumWorld) {
	returns := tracker.NewReturn(returnsFile)
	lengths := tracker.NewEpisodeLength(lengthsFile)

	if render {
		runRendered(world, p, returns, lengths)
		returns.Save()
		lengths.Save()
	} else {
		exp := experiment.NewOnline(world, p, uint(episodes*horizon),
			returns, lengths)

		bar := progressbar.New(50, episodes, time.Second, true)
		bar.Display()
		for i := 0; i < episodes; i++ {
			ended := exp.RunEpisode()
			bar.Increment()
			if ended {
				break
			}
		}
		bar.Close()

		exp.Save()
	}

	summarize(name)
}

// runRendered runs episodes while drawing the world to the terminal
// after every step
func runRendered(world *vacuumworld.VacuumWorld, p agent.Policy,
	trackers ...tracker.Tracker) {
	for i := 0; i < episodes; i++ {
		step := world.Reset()
		for _, t := range trackers {
			t.Track(step)
		}
		world.Render()
		time.Sleep(renderDelay)

		for !step.Last() {
			action := p.SelectAction(step)
			step, _ = world.Step(action)

			for _, t := range trackers {
				t.Track(step)
			}
			world.Render()
			time.Sleep(renderDelay)
		}
	}
}

// summarize loads the saved experiment data and prints a colored
// summary of the policy's performance
func summarize(name string) {
	returns := tracker.LoadData(returnsFile)
	lengths := tracker.LoadIntData(lengthsFile)

	if len(returns) == 0 {
		fmt.Println(aurora.Red("no episodes finished within the step budget"))
		return
	}

	steps := 0
	for _, length := range lengths {
		steps += length
	}

	fmt.Printf("%v policy  |  %v episodes  |  %v steps\n",
		aurora.Bold(name), len(returns), steps)
	fmt.Printf("Mean return: %v  |  Best: %v  |  Worst: %v\n",
		aurora.Green(fmt.Sprintf("%.2f", stat.Mean(returns, nil))),
		aurora.Green(fmt.Sprintf("%.0f", floatutils.Max(returns...))),
		aurora.Red(fmt.Sprintf("%.0f", floatutils.Min(returns...))))
	fmt.Printf("Mean episode length: %v\n",
		aurora.Blue(fmt.Sprintf("%.2f",
			float64(steps)/float64(len(lengths)))))

	if plotFile != "" {
		if err := plotReturns(name, returns, plotFile); err != nil {
			fmt.Println(aurora.Red(fmt.Sprintf("could not save plot: %v",
				err)))
			return
		}
		fmt.Printf("Saved return plot to %v\n", plotFile)
	}
}
