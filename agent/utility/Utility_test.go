package utility_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/govacuum/agent/utility"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
)

const tolerance float64 = 1e-10

// newWorld returns a vacuum world starting from the fixed state
// (room, dustA, dustB)
func newWorld(t *testing.T, room, dustA, dustB float64) *vacuumworld.VacuumWorld {
	start, err := vacuumworld.NewSingleStart(room, dustA, dustB)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	world, _ := vacuumworld.New(vacuumworld.NewCleanAll(start, 100), 1.0)
	return world
}

// TestSelectActionValue checks the documented utility table for the
// state (A, 0.4, 0.5):
//
//	MoveLeft  -> (A, 0.4, 0.5)	U = -0.70
//	MoveRight -> (B, 0.4, 0.5)	U = -0.65
//	Suck      -> (A, 0.3, 0.5)	U = -0.65
//
// MoveRight and Suck tie at the maximum, and MoveRight must win since
// it comes first in enumeration order.
func TestSelectActionValue(t *testing.T) {
	world := newWorld(t, vacuumworld.RoomA, 0.4, 0.5)

	p, err := utility.New(world, vacuumworld.Utility)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	action, value := p.SelectActionValue(world.CurrentTimeStep())

	if chosen := int(action.AtVec(0)); chosen != vacuumworld.MoveRight {
		t.Errorf("chose action %v, expected MoveRight (%v)", chosen,
			vacuumworld.MoveRight)
	}
	if math.Abs(value-(-0.65)) > tolerance {
		t.Errorf("chose utility %v, expected -0.65", value)
	}
}

// TestSelectActionEpisode checks the full greedy action sequence from
// the state (A, 0.2, 0.1)
func TestSelectActionEpisode(t *testing.T) {
	world := newWorld(t, vacuumworld.RoomA, 0.2, 0.1)

	p, err := utility.New(world, vacuumworld.Utility)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	expected := []int{
		vacuumworld.Suck,
		vacuumworld.Suck,
		vacuumworld.MoveRight,
		vacuumworld.Suck,
	}

	step := world.CurrentTimeStep()
	done := false
	for i, want := range expected {
		if done {
			t.Fatalf("episode ended early, after %v steps", i)
		}

		action := p.SelectAction(step)
		if got := int(action.AtVec(0)); got != want {
			t.Fatalf("step %v: chose action %v, expected %v", i, got, want)
		}

		step, done = world.Step(action)
	}

	if !done {
		t.Error("episode should have ended with both rooms clean")
	}
	if !world.AtGoal(step.Observation) {
		t.Errorf("final state %v is not the goal state", mat.Formatted(
			step.Observation))
	}
}

// TestNewActionEnumeration checks that the policy enumerates the full
// action set in order
func TestNewActionEnumeration(t *testing.T) {
	world := newWorld(t, vacuumworld.RoomB, 1.0, 1.0)

	// Prefer room A so that MoveLeft is always chosen
	preferA := func(state mat.Vector) float64 {
		return -state.AtVec(0)
	}

	p, err := utility.New(world, preferA)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	action := p.SelectAction(world.CurrentTimeStep())
	if got := int(action.AtVec(0)); got != vacuumworld.MoveLeft {
		t.Errorf("chose action %v, expected MoveLeft (%v)", got,
			vacuumworld.MoveLeft)
	}
}
