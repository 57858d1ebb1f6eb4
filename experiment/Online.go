package experiment

import (
	"github.com/samuelfneumann/govacuum/agent"
	env "github.com/samuelfneumann/govacuum/environment"
	"github.com/samuelfneumann/govacuum/experiment/tracker"
	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Online is an Experiment that runs a fixed policy online. The policy
// is queried for an action on each timestep, and the resulting
// timesteps are sent to any registered Trackers.
type Online struct {
	env.Environment
	agent.Policy
	maxSteps     uint
	currentSteps uint
	trackers     []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for in total, across episodes,
// and the t parameter is a slice of tracker.Tracker which determine
// what data is saved.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	t ...tracker.Tracker) *Online {
	return &Online{e, p, steps, 0, t}
}

// Register registers a tracker.Tracker with an Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning
// whether or not the experiment's total timestep limit has been
// reached
func (o *Online) RunEpisode() bool {
	step := o.Environment.Reset()
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select an action, step in the environment
		action := o.Policy.SelectAction(step)
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)
	}

	return o.currentSteps >= o.maxSteps
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() {
	ended := false

	for !ended {
		ended = o.RunEpisode()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(step ts.TimeStep) {
	for _, t := range o.trackers {
		t.Track(step)
	}
}
