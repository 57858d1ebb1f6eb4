// Package experiment implements functionality for running an
// experiment
package experiment

import (
	"github.com/samuelfneumann/govacuum/experiment/tracker"
	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// drive the policy-environment loop: each episode, the environment is
// reset and the policy repeatedly selects actions which are stepped
// through the environment until the episode ends.
//
// The Run() method runs episodes until the experiment's total
// timestep limit is reached. The RunEpisode() method runs a single
// episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// will send each TimeStep to Trackers using the Tracker's Track()
// method, and the Save() method saves all tracked data to disk after
// the experiment has finished. New Trackers can be registered with an
// Experiment through the constructor or through an Experiment's
// Register() method.
type Experiment interface {
	Run()
	RunEpisode() bool // Returns whether the experiment's step limit was hit

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment
	Register(t tracker.Tracker)

	// Tracks the current timestep by sending it to Trackers
	track(ts.TimeStep)
}
