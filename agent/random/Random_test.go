package random_test

import (
	"testing"

	"github.com/samuelfneumann/govacuum/agent/random"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
)

// newWorld returns a vacuum world with uniformly random starts
func newWorld(seed uint64) *vacuumworld.VacuumWorld {
	task := vacuumworld.NewCleanAll(vacuumworld.NewUniformStart(seed), 100)
	world, _ := vacuumworld.New(task, 1.0)
	return world
}

// TestSelectActionInRange checks that all selected actions are legal
func TestSelectActionInRange(t *testing.T) {
	world := newWorld(42)
	p := random.New(world, 42)

	step := world.CurrentTimeStep()
	for i := 0; i < 1000; i++ {
		action := p.SelectAction(step)

		a := int(action.AtVec(0))
		if a < vacuumworld.MinDiscreteAction ||
			a > vacuumworld.MaxDiscreteAction {
			t.Fatalf("draw %v: illegal action %v", i, a)
		}
	}
}

// TestSelectActionSeeded checks that two policies with the same seed
// select the same action sequence
func TestSelectActionSeeded(t *testing.T) {
	world := newWorld(42)
	first := random.New(world, 97)
	second := random.New(world, 97)

	step := world.CurrentTimeStep()
	for i := 0; i < 100; i++ {
		a := first.SelectAction(step).AtVec(0)
		b := second.SelectAction(step).AtVec(0)

		if a != b {
			t.Fatalf("draw %v: policies with equal seeds disagree: "+
				"%v != %v", i, a, b)
		}
	}
}
