package domain

import "time"

// FitEvent describes one fit or fit-transform call, successful or not.
type FitEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Backend   string        `json:"backend"` // table representation kind
	Rows      int           `json:"rows"`
	Selected  int           `json:"selected"` // columns routed to the transformer
	Outputs   int           `json:"outputs"`  // columns in the result
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// TransformEvent describes one transform call, successful or not.
type TransformEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Backend   string        `json:"backend"`
	Rows      int           `json:"rows"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for applier observability.
// Hooks run synchronously on the calling goroutine; a nil hook is skipped.
type LifecycleHooks struct {
	OnFit       func(*FitEvent)
	OnTransform func(*TransformEvent)
}
