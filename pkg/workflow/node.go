package workflow

import (
	"context"
	"errors"
)

// Node is one processing step of the conversation pipeline. A returned
// error is always recoverable: the engine records it on the state and
// keeps going. Nodes must leave the state in a usable condition even
// when they fail.
type Node interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

// ErrClassificationParse flags a model reply that could not be parsed
// into a label from the closed intent set. Never retried; the run falls
// through to the unknown branch.
var ErrClassificationParse = errors.New("classification response could not be parsed")

// ErrComplaintValidation flags complaint input that is too thin to file.
var ErrComplaintValidation = errors.New("complaint validation failed")
