package search

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTarget is returned when the target integer is nil.
	ErrNilTarget = errors.New("search: target must not be nil")

	// ErrInvalidBeamWidth is returned when the beam width is not positive.
	ErrInvalidBeamWidth = errors.New("search: beam width must be positive")

	// ErrInvalidWidthBounds is returned when the adaptive width bounds are
	// not positive or min exceeds max.
	ErrInvalidWidthBounds = errors.New("search: adaptive width bounds must satisfy 0 < min <= max")

	// ErrInvalidBatchSize is returned when the batch size is negative.
	ErrInvalidBatchSize = errors.New("search: batch size must not be negative")

	// ErrInvalidPolicy is returned for an unknown scoring policy.
	ErrInvalidPolicy = errors.New("search: unknown scoring policy")
)

// WorkerError wraps a failure inside one batch task with its superstep
// context. The whole level is aborted and partial results discarded.
type WorkerError struct {
	Level int
	Batch int
	cause error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("search: level %d batch %d: %v", e.Level, e.Batch, e.cause)
}

func (e *WorkerError) Unwrap() error { return e.cause }
