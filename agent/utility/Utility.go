// Package utility implements a maximum expected utility policy
package utility

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/govacuum/environment"
	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Policy selects the action leading to the next state of highest
// utility. For the current state, the Policy evaluates the
// environment's transition function for every action in the action
// set, scores each candidate next state with a utility function, and
// selects the action whose resulting state has strictly greatest
// utility. Ties are broken by enumeration order: the first action
// achieving the maximum wins.
//
// The environment must implement environment.Model so that candidate
// actions can be evaluated without stepping the live environment.
type Policy struct {
	model   env.Model
	utility func(mat.Vector) float64
	actions []*mat.VecDense
}

// New returns a new utility Policy which selects actions on
// environment e by ranking candidate next states with the argument
// utility function. New returns an error if e does not expose its
// transition dynamics or if e does not have a discrete,
// 1-dimensional action set.
func New(e env.Environment, utility func(mat.Vector) float64) (*Policy,
	error) {
	model, ok := e.(env.Model)
	if !ok {
		return nil, fmt.Errorf("new: environment does not expose its " +
			"transition dynamics")
	}

	actionSpec := e.ActionSpec()
	if actionSpec.Cardinality != env.Discrete {
		return nil, fmt.Errorf("new: utility policies require discrete " +
			"actions")
	}
	if actionSpec.Shape.Len() != 1 {
		return nil, fmt.Errorf("new: actions should be 1-dimensional")
	}

	minAction := int(actionSpec.LowerBound.AtVec(0))
	maxAction := int(actionSpec.UpperBound.AtVec(0))

	actions := make([]*mat.VecDense, 0, maxAction-minAction+1)
	for a := minAction; a <= maxAction; a++ {
		actions = append(actions, mat.NewVecDense(1, []float64{float64(a)}))
	}

	return &Policy{model, utility, actions}, nil
}

// SelectAction returns the action leading to the next state of
// highest utility
func (p *Policy) SelectAction(t ts.TimeStep) *mat.VecDense {
	action, _ := p.SelectActionValue(t)
	return action
}

// SelectActionValue returns the action leading to the next state of
// highest utility, together with that utility value
func (p *Policy) SelectActionValue(t ts.TimeStep) (*mat.VecDense, float64) {
	chosen := p.actions[0]
	maxUtility := math.Inf(-1)

	for _, action := range p.actions {
		nextState := p.model.NextState(t.Observation, action)

		if u := p.utility(nextState); u > maxUtility {
			chosen = action
			maxUtility = u
		}
	}

	return chosen, maxUtility
}
