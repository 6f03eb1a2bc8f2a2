// Package timer provides stage-aware timing for command execution.
//
// A Timer tracks the total elapsed time since Start and the elapsed time of
// the current stage. Commands call NewStage between activities so success
// notifications can report both values.
package timer

import "time"

// Timer measures total and per-stage elapsed time.
type Timer interface {
	// Start begins the total and stage measurement.
	Start()

	// NewStage resets the stage measurement, keeping the total running.
	NewStage()

	// GetTiming returns the total elapsed time and the current stage's elapsed time.
	GetTiming() (total, stage time.Duration)
}

type realTimer struct {
	startedAt time.Time
	stageAt   time.Time
	now       func() time.Time
}

// New creates a Timer backed by the wall clock.
func New() Timer {
	return &realTimer{now: time.Now}
}

func (t *realTimer) Start() {
	t.startedAt = t.now()
	t.stageAt = t.startedAt
}

func (t *realTimer) NewStage() {
	t.stageAt = t.now()
}

func (t *realTimer) GetTiming() (time.Duration, time.Duration) {
	if t.startedAt.IsZero() {
		return 0, 0
	}

	current := t.now()

	return current.Sub(t.startedAt), current.Sub(t.stageAt)
}
