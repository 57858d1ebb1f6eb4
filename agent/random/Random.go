// Package random implements a uniform random policy
package random

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/govacuum/environment"
	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Policy selects actions uniformly at random from an environment's
// discrete action set, independent of the current state.
type Policy struct {
	rng        *rand.Rand
	minAction  int
	numActions int
}

// New returns a new random Policy which selects actions uniformly
// from the action set of environment e, using the argument random
// seed
func New(e env.Environment, seed uint64) *Policy {
	actionSpec := e.ActionSpec()
	minAction := int(actionSpec.LowerBound.AtVec(0))
	maxAction := int(actionSpec.UpperBound.AtVec(0))

	source := rand.NewSource(seed)

	return &Policy{
		rng:        rand.New(source),
		minAction:  minAction,
		numActions: maxAction - minAction + 1,
	}
}

// SelectAction returns an action drawn uniformly at random from the
// action set. The argument TimeStep is ignored.
func (p *Policy) SelectAction(_ ts.TimeStep) *mat.VecDense {
	action := p.minAction + p.rng.Intn(p.numActions)
	return mat.NewVecDense(1, []float64{float64(action)})
}
