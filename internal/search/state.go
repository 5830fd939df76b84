package search

import (
	"context"
	"errors"

	"github.com/atomicstack/wordsearch/internal/dictionary"
)

// LookupFailedMessage is the single user-facing text for any lookup failure.
const LookupFailedMessage = "No definitions found. Please try another word."

// Status is the renderable phase of the last accepted lookup.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ResultState is what the renderer draws. Message is set only for StatusError.
type ResultState struct {
	Status  Status
	Query   string
	Entries []dictionary.Entry
	Message string
}

// Failure classifies lookup errors.
type Failure int

const (
	FailureNone Failure = iota
	FailureCancelled
	FailureNotFound
	FailureNetwork
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureCancelled:
		return "cancelled"
	case FailureNotFound:
		return "not-found"
	default:
		return "network"
	}
}

// Classify maps a lookup error onto the failure taxonomy. Anything that is
// neither a cancellation nor a not-found answer counts as a network failure.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, context.Canceled):
		return FailureCancelled
	case errors.Is(err, dictionary.ErrNotFound):
		return FailureNotFound
	default:
		return FailureNetwork
	}
}
