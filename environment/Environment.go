// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines when and how episodes end. An Ender's End() method
// inspects a TimeStep and, if the episode should end at that TimeStep,
// modifies its StepType to timestep.Last and records the end type,
// returning true.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some
// environment, along with the starting and ending conditions of
// episodes on that environment
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool
	Min() float64 // returns the min possible reward
	Max() float64 // returns the max possible reward
	RewardSpec() Spec
}

// Model describes environments whose transition dynamics can be
// queried directly. NextState computes the state resulting from taking
// an action in an arbitrary state, without mutating the environment.
// Policies which rank candidate next states, such as the
// maximum-expected-utility policies in agent/utility, require their
// environments to implement Model.
type Model interface {
	NextState(state mat.Vector, action *mat.VecDense) mat.Vector
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task
	Reset() ts.TimeStep // Resets between episodes
	Step(action *mat.VecDense) (ts.TimeStep, bool)
	CurrentTimeStep() ts.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
