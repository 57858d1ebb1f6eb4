// Package tracker implements Trackers, which track and save data
// generated during an experiment
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/samuelfneumann/govacuum/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData loads and returns the float64 data saved by a Tracker
func LoadData(filename string) []float64 {
	var data []float64
	load(filename, &data)
	return data
}

// LoadIntData loads and returns the int data saved by a Tracker
func LoadIntData(filename string) []int {
	var data []int
	load(filename, &data)
	return data
}

// load decodes the gob-encoded file at filename into data
func load(filename string, data interface{}) {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	if err := dec.Decode(data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}
}
