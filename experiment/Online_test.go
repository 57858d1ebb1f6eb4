package experiment_test

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/govacuum/agent/utility"
	"github.com/samuelfneumann/govacuum/environment/vacuumworld"
	"github.com/samuelfneumann/govacuum/experiment"
	"github.com/samuelfneumann/govacuum/experiment/tracker"
)

// newWorld returns a vacuum world starting from the fixed state
// (A, 0.2, 0.1), from which the utility policy cleans both rooms in
// exactly 4 steps
func newWorld(t *testing.T) *vacuumworld.VacuumWorld {
	start, err := vacuumworld.NewSingleStart(vacuumworld.RoomA, 0.2, 0.1)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	world, _ := vacuumworld.New(vacuumworld.NewCleanAll(start, 50), 1.0)
	return world
}

// TestOnlineRunEpisode checks a full episode under the utility policy,
// including the data the trackers accumulate and save
func TestOnlineRunEpisode(t *testing.T) {
	world := newWorld(t)

	p, err := utility.New(world, vacuumworld.Utility)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	dir := t.TempDir()
	returnsFile := filepath.Join(dir, "returns.bin")
	lengthsFile := filepath.Join(dir, "lengths.bin")

	e := experiment.NewOnline(world, p, 100,
		tracker.NewReturn(returnsFile),
		tracker.NewEpisodeLength(lengthsFile))

	if ended := e.RunEpisode(); ended {
		t.Error("step budget should not be exhausted by one episode")
	}
	e.Save()

	if last := world.CurrentTimeStep(); !last.Last() {
		t.Error("episode should have ended")
	} else if last.Number != 4 {
		t.Errorf("episode took %v steps, expected 4", last.Number)
	}

	returns := tracker.LoadData(returnsFile)
	if len(returns) != 1 {
		t.Fatalf("tracked %v episodic returns, expected 1", len(returns))
	}
	if returns[0] != -4.0 {
		t.Errorf("episodic return was %v, expected -4", returns[0])
	}

	lengths := tracker.LoadIntData(lengthsFile)
	if len(lengths) != 1 || lengths[0] != 4 {
		t.Errorf("tracked episode lengths %v, expected [4]", lengths)
	}
}

// TestOnlineRun checks that Run stops at the experiment's total step
// budget
func TestOnlineRun(t *testing.T) {
	world := newWorld(t)

	p, err := utility.New(world, vacuumworld.Utility)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	e := experiment.NewOnline(world, p, 10)
	e.Run()

	// Each episode takes 4 steps, so the budget of 10 is exhausted 2
	// steps into the third episode
	step := world.CurrentTimeStep()
	if step.Last() {
		t.Error("experiment should have stopped mid-episode")
	}
	if step.Number != 2 {
		t.Errorf("stopped on step %v of the last episode, expected 2",
			step.Number)
	}
}
