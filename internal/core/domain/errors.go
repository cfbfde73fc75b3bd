package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a constructor received a missing or
	// malformed attribute. Raised synchronously at construction time,
	// never recoverable by retry.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTimeout indicates the config-server readiness wait exceeded
	// its deadline.
	ErrTimeout = errors.New("timed out")

	// ErrCancelled indicates a wait was aborted through its context
	// before the deadline elapsed.
	ErrCancelled = errors.New("cancelled")

	// ErrUpstreamFailure indicates a non-success HTTP response from the
	// cluster. The wrapping error carries the response payload.
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrTransportFailure indicates the underlying connection to the
	// cluster or container runtime could not be established.
	ErrTransportFailure = errors.New("transport failure")
)
