package vacuumworld

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/samuelfneumann/govacuum/environment"
)

// UniformStart samples starting states with the room chosen uniformly
// from {A, B} and both dust levels drawn independently and uniformly
// from [0, 1], rounded to one decimal place.
type UniformStart struct {
	room env.CategoricalStarter
	dust env.UniformStarter
}

// NewUniformStart returns a new UniformStart with the argument random
// seed
func NewUniformStart(seed uint64) env.Starter {
	room := env.NewCategoricalStarter([]int{2}, seed)
	dust := env.NewUniformStarter([]r1.Interval{
		{Min: MinDust, Max: MaxDust},
		{Min: MinDust, Max: MaxDust},
	}, seed)

	return UniformStart{room, dust}
}

// Start returns a starting state vector
func (u UniformStart) Start() mat.Vector {
	room := u.room.Start().AtVec(0)
	dust := u.dust.Start()

	return mat.NewVecDense(ObservationDims, []float64{
		room,
		scalar.Round(dust.AtVec(0), 1),
		scalar.Round(dust.AtVec(1), 1),
	})
}

// SingleStart starts every episode from the same fixed state
type SingleStart struct {
	state mat.Vector
}

// NewSingleStart returns a Starter which always starts episodes from
// the state (room, dustA, dustB)
func NewSingleStart(room, dustA, dustB float64) (env.Starter, error) {
	if room != RoomA && room != RoomB {
		return nil, fmt.Errorf("room = %v, must be %v or %v", room, RoomA,
			RoomB)
	}
	for _, dust := range []float64{dustA, dustB} {
		if dust < MinDust || dust > MaxDust {
			return nil, fmt.Errorf("dust level = %v ∉ [%v, %v]", dust,
				MinDust, MaxDust)
		}
	}

	state := mat.NewVecDense(ObservationDims, []float64{room, dustA, dustB})
	return &SingleStart{state}, nil
}

// Start returns the fixed starting state vector
func (s *SingleStart) Start() mat.Vector {
	return s.state
}

// DefaultStart returns the conventional fixed starting state: the
// agent in room A with both rooms half dusty.
func DefaultStart() env.Starter {
	start, err := NewSingleStart(RoomA, 0.5, 0.5)
	if err != nil {
		panic(fmt.Sprintf("defaultStart: %v", err))
	}
	return start
}
