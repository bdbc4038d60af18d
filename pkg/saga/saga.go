// Package saga keeps undo actions for multi-step operations whose steps
// may live in stores without a shared transaction.
package saga

import (
	"context"
	"errors"
	"fmt"
)

type Compensation struct {
	Name string
	Undo func(ctx context.Context) error
}

type Saga struct {
	steps []Compensation
	done  bool
}

func New() *Saga {
	return &Saga{}
}

// Record registers the undo action of a step that has just succeeded.
func (s *Saga) Record(name string, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, Compensation{Name: name, Undo: undo})
}

func (s *Saga) Len() int {
	return len(s.steps)
}

// Compensate runs undo actions in reverse order. Every action is attempted even if
// an earlier one fails; the joined error lists each failure. Calling it twice is a no-op.
func (s *Saga) Compensate(ctx context.Context) error {
	if s.done {
		return nil
	}
	s.done = true

	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.Undo(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Forget drops recorded actions once the operation has committed.
func (s *Saga) Forget() {
	s.steps = nil
	s.done = true
}
