/*
Package sample implements bounded face crop sampling.

A Coordinator accumulates a target number of face crops from a serialized
frame stream. All session mutations happen on the frame delivery path
behind a single mutex, readers get consistent snapshots via Status.
*/
package sample

import (
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Event names published on the shared hub.
const (
	EventStarted   = "sample.started"
	EventProgress  = "sample.progress"
	EventCompleted = "sample.completed"
	EventStopped   = "sample.stopped"
	EventReset     = "sample.reset"
)

// State represents the sampling session state.
type State int

const (
	StateIdle State = iota
	StateSampling
	StateComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSampling:
		return "sampling"
	case StateComplete:
		return "complete"
	default:
		return "idle"
	}
}
