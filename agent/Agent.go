// Package agent defines how agents select actions
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/govacuum/timestep"
)

// Policy represents a policy that an agent can follow.
//
// Policies determine how agents select actions: given the current
// TimeStep, a Policy chooses the action to take from it. Policies in
// this module are fixed decision rules and do not learn from the
// transitions they generate.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}
