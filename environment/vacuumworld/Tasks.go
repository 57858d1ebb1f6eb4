package vacuumworld

import (
	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/govacuum/environment"
	ts "github.com/samuelfneumann/govacuum/timestep"
)

const (
	// StepReward is the reward given on every step of the CleanAll
	// task
	StepReward float64 = -1.0
)

// CleanAll implements the task of vacuuming both rooms until they are
// dust free. Rewards are -1 on every timestep, so that shorter
// episodes accumulate higher returns.
//
// Episodes end when both rooms' dust levels fall to within
// CleanTolerance of zero, or after a step limit.
type CleanAll struct {
	env.Starter
	cleanEnder env.Ender
	stepEnder  env.Ender
}

// NewCleanAll creates and returns a new CleanAll task given a Starter,
// which determines the starting states, and the maximum number of
// episode steps.
func NewCleanAll(s env.Starter, episodeSteps int) *CleanAll {
	cleanEnder := env.NewFunctionEnder(allClean, ts.TerminalStateReached)
	stepEnder := env.NewStepLimit(episodeSteps)

	return &CleanAll{s, cleanEnder, stepEnder}
}

// allClean returns whether both rooms of the argument state are dust
// free
func allClean(state mat.Vector) bool {
	return state.AtVec(1) <= CleanTolerance &&
		state.AtVec(2) <= CleanTolerance
}

// AtGoal returns a boolean indicating whether or not the argument
// state is the goal state, in which both rooms are dust free
func (c *CleanAll) AtGoal(state mat.Matrix) bool {
	return state.At(1, 0) <= CleanTolerance &&
		state.At(2, 0) <= CleanTolerance
}

// GetReward returns the reward for a given state and action, resulting
// in a given next state. Rewards are a constant -1.0 on every step of
// the task.
func (c *CleanAll) GetReward(_, _, _ mat.Vector) float64 {
	return StepReward
}

// Min returns the minimum attainable reward over all timesteps
func (c *CleanAll) Min() float64 { return StepReward }

// Max returns the maximum attainable reward over all timesteps
func (c *CleanAll) Max() float64 { return StepReward }

// RewardSpec returns the reward specification of the Task
func (c *CleanAll) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{c.Min()})
	upperBound := mat.NewVecDense(1, []float64{c.Max()})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Discrete)
}

// End determines if a timestep is the last timestep in the episode.
// If so, it changes the TimeStep's StepType to timestep.Last and
// records how the episode ended. This function returns true if the
// argument timestep is the last timestep in the episode and false
// otherwise.
func (c *CleanAll) End(t *ts.TimeStep) bool {
	// Check if both rooms were cleaned, modifying t if appropriate
	if end := c.cleanEnder.End(t); end {
		return true
	}

	// Check if the max steps was reached, modifying t if appropriate
	if end := c.stepEnder.End(t); end {
		return true
	}
	return false
}
