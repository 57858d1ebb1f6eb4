// Package vacuumworld implements the two-room vacuum cleaning world
package vacuumworld

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/samuelfneumann/govacuum/environment"
	ts "github.com/samuelfneumann/govacuum/timestep"
	"github.com/samuelfneumann/govacuum/utils/floatutils"
)

const (
	// Room encoding in the state vector
	RoomA float64 = 0.0
	RoomB float64 = 1.0

	// Dust level bounds for each room
	MinDust float64 = 0.0
	MaxDust float64 = 1.0

	// SuckAmount is the amount of dust removed from the current room
	// by a single Suck action
	SuckAmount float64 = 0.1

	// CleanTolerance is the dust level at or below which a room is
	// considered dust free. Repeated Suck actions leave tiny positive
	// residues from floating-point subtraction, so cleanliness is not
	// compared against exactly zero.
	CleanTolerance float64 = 0.001

	// Discrete Actions
	MinDiscreteAction int = 0
	MaxDiscreteAction int = 2

	MoveLeft  int = 0 // Move to room A
	MoveRight int = 1 // Move to room B
	Suck      int = 2 // Vacuum the current room

	ActionDims      int = 1
	ObservationDims int = 3
)

// VacuumWorld implements the two-room vacuum world environment. An
// agent occupies one of two rooms, A or B, each holding a dust level
// in [0, 1]. The agent can move to either room or vacuum the room it
// occupies, removing a fixed amount of dust. The episode ends once
// both rooms are dust free.
//
// State features are 3-dimensional: the occupied room (0 for A, 1 for
// B) followed by the dust levels of rooms A and B.
//
// Actions are 1-dimensional and discrete in (0, 1, 2):
//
//	Action	Meaning
//	  0		Move to room A
//	  1		Move to room B
//	  2		Vacuum the current room
//
// Actions other than 0, 1, or 2 result in a panic.
//
// VacuumWorld implements the environment.Environment and
// environment.Model interfaces.
type VacuumWorld struct {
	env.Task
	dustBounds r1.Interval
	lastStep   ts.TimeStep
	discount   float64
}

// New creates a new VacuumWorld environment with the argument task
func New(t env.Task, discount float64) (*VacuumWorld, ts.TimeStep) {
	dustBounds := r1.Interval{Min: MinDust, Max: MaxDust}

	state := t.Start()
	validateState(state, dustBounds)

	firstStep := ts.New(ts.First, 0.0, discount, state, 0)

	world := VacuumWorld{t, dustBounds, firstStep, discount}

	return &world, firstStep
}

// Reset resets the environment and returns a starting state drawn
// from the environment Starter
func (v *VacuumWorld) Reset() ts.TimeStep {
	state := v.Start()
	validateState(state, v.dustBounds)
	startStep := ts.New(ts.First, 0.0, v.discount, state, 0)
	v.lastStep = startStep

	return startStep
}

// NextState returns the state that results from taking action a in the
// argument state. The environment's stored state is never read or
// mutated, so NextState may be used to evaluate candidate actions
// without stepping the environment.
func (v *VacuumWorld) NextState(state mat.Vector, a *mat.VecDense) mat.Vector {
	if a.Len() != ActionDims {
		panic("nextState: actions should be 1-dimensional")
	}

	action := int(a.AtVec(0))
	if action < MinDiscreteAction || action > MaxDiscreteAction {
		panic(fmt.Sprintf("illegal action %v ∉ (0, 1, 2)", action))
	}

	room := state.AtVec(0)
	dustA := state.AtVec(1)
	dustB := state.AtVec(2)

	switch action {
	case MoveLeft:
		room = RoomA

	case MoveRight:
		room = RoomB

	case Suck:
		if room == RoomA {
			dustA = floatutils.Clip(dustA-SuckAmount, MinDust, MaxDust)
		} else {
			dustB = floatutils.Clip(dustB-SuckAmount, MinDust, MaxDust)
		}
	}

	return mat.NewVecDense(ObservationDims, []float64{room, dustA, dustB})
}

// Step takes one environmental step given action a and returns the
// next timestep as a timestep.TimeStep and a bool indicating whether
// or not the episode has ended. Legal actions are in the set
// {0, 1, 2}. Actions outside this range will cause the environment
// to panic.
func (v *VacuumWorld) Step(a *mat.VecDense) (ts.TimeStep, bool) {
	newState := v.NextState(v.lastStep.Observation, a)

	reward := v.GetReward(v.lastStep.Observation, a, newState)
	nextStep := ts.New(ts.Mid, reward, v.discount, newState,
		v.lastStep.Number+1)

	// Check if the step is the last in the episode and adjust the step
	// type if necessary
	v.End(&nextStep)

	v.lastStep = nextStep
	return nextStep, nextStep.Last()
}

// CurrentTimeStep returns the last TimeStep returned by Reset() or
// Step()
func (v *VacuumWorld) CurrentTimeStep() ts.TimeStep {
	return v.lastStep
}

// ObservationSpec returns the observation specification of the
// environment
func (v *VacuumWorld) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)
	lowerBound := mat.NewVecDense(ObservationDims, []float64{RoomA, MinDust,
		MinDust})
	upperBound := mat.NewVecDense(ObservationDims, []float64{RoomB, MaxDust,
		MaxDust})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Continuous)
}

// ActionSpec returns the action specification of the environment
func (v *VacuumWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MaxDiscreteAction)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discounting specification of the
// environment
func (v *VacuumWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{v.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// Render renders a text-based version of the environment
func (v *VacuumWorld) Render() {
	// Clear screen and draw
	os.Stdout.WriteString("\x1b[3;J\x1b[H\x1b[2J")
	fmt.Println(v.draw())
}

// draw returns the fixed-width text depiction of the two rooms: a
// 7-line, 18-character box with the agent icon in the occupied room
// and a status row holding both dust levels right-justified in
// 5-character fields.
func (v *VacuumWorld) draw() string {
	state := v.lastStep.Observation
	room := state.AtVec(0)

	iconA, iconB := " ", " "
	if room == RoomA {
		iconA = "@"
	} else {
		iconB = "@"
	}

	var builder strings.Builder
	fmt.Fprintln(&builder, "+--------+-------+")
	fmt.Fprintln(&builder, "|   A    |   B   |")
	fmt.Fprintf(&builder, "|   %v    |   %v   |\n", iconA, iconB)
	fmt.Fprintln(&builder, "|        |       |")
	fmt.Fprintln(&builder, "+--------+-------+")
	fmt.Fprintf(&builder, "|   %5.1f|  %5.1f|\n", state.AtVec(1),
		state.AtVec(2))
	fmt.Fprint(&builder, "+--------+-------+")

	return builder.String()
}

// String returns a string representation of the environment
func (v *VacuumWorld) String() string {
	str := "Vacuum World  |  Room: %v  |  Dust A: %v  |  Dust B: %v"
	state := v.lastStep.Observation
	return fmt.Sprintf(str, roomName(state.AtVec(0)), state.AtVec(1),
		state.AtVec(2))
}

// roomName returns the name of the room with the argument encoding
func roomName(room float64) string {
	if room == RoomA {
		return "A"
	}
	return "B"
}

// validateState validates the state to ensure the room is one of the
// two legal rooms and both dust levels are within the environmental
// limits
func validateState(s mat.Vector, dustBounds r1.Interval) {
	room := s.AtVec(0)
	if room != RoomA && room != RoomB {
		panic(fmt.Sprintf("illegal room %v ∉ {%v, %v}", room, RoomA,
			RoomB))
	}

	for i := 1; i < ObservationDims; i++ {
		dust := s.AtVec(i)
		if dust < dustBounds.Min || dust > dustBounds.Max {
			panic(fmt.Sprintf("illegal dust level %v ∉ [%v, %v]", dust,
				dustBounds.Min, dustBounds.Max))
		}
	}
}
