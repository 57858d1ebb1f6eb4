package vacuumworld

import "gonum.org/v1/gonum/mat"

// Utility scores a state by how much dust remains in the two rooms,
// weighting the dust in the occupied room at half since the agent can
// vacuum that room without first moving to it. Cleaner states score
// higher, with the maximum utility of 0 at the dust-free goal states.
//
// Utility is the preference function used by maximum expected utility
// agents on this environment (see agent/utility).
func Utility(state mat.Vector) float64 {
	room := state.AtVec(0)
	dustA := state.AtVec(1)
	dustB := state.AtVec(2)

	if room == RoomA {
		return -dustA/2 - dustB
	}
	return -dustA - dustB/2
}
