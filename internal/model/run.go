package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Run.
type State int

const (
	// StateUninitialized is a run that has not built its document yet.
	StateUninitialized State = iota

	// StateBuilt is a run holding a validated document.
	StateBuilt

	// StateRendered is a run whose document has been written. Terminal.
	StateRendered

	// StateFailed is a run that hit an error in any step. Terminal.
	StateFailed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilt:
		return "built"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateRendered || s == StateFailed
}

// CanAdvance reports whether a run in state s may move to next.
func (s State) CanAdvance(next State) bool {
	switch {
	case s.Terminal():
		return false
	case next == StateFailed:
		return true
	case s == StateUninitialized:
		return next == StateBuilt
	case s == StateBuilt:
		return next == StateRendered
	default:
		return false
	}
}

// RenderResult describes a written document.
type RenderResult struct {
	// Path is the destination the document was moved to.
	Path string `json:"path"`

	// Pages is the number of pages the layout engine produced.
	Pages int `json:"pages"`

	// Bytes is the size of the written file.
	Bytes int64 `json:"bytes"`
}

// Run is one build-and-render execution.
type Run struct {
	// ID uniquely identifies the run in the history database.
	ID string `json:"id"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`

	State    State         `json:"state"`
	Document *Document     `json:"-"`
	Result   *RenderResult `json:"result,omitempty"`

	// Fingerprint is the document fingerprint, set once the document is
	// built.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Err is the error that moved the run to StateFailed.
	Err error `json:"-"`

	// Steps lists the names of the pipeline steps that completed.
	Steps []string `json:"steps"`
}

// NewRun returns an uninitialized run with a fresh ID.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		State:     StateUninitialized,
		Steps:     make([]string, 0),
	}
}

// Advance moves the run to next, or returns ErrInvalidTransition.
func (r *Run) Advance(next State) error {
	if !r.State.CanAdvance(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.State, next)
	}
	r.State = next
	if next.Terminal() {
		r.FinishedAt = time.Now()
	}
	return nil
}

// Fail records err and moves the run to StateFailed. A run that already
// reached a terminal state keeps it.
func (r *Run) Fail(err error) {
	if r.State.Terminal() {
		return
	}
	r.Err = err
	r.State = StateFailed
	r.FinishedAt = time.Now()
}
