package random

import "errors"

var (
	// ErrUnavailable is returned when every secure source failed and the insecure fallback was not allowed.
	ErrUnavailable = errors.New("unable to generate IV")
	// ErrSourceUnavailable is returned by a source that cannot run in the current environment.
	ErrSourceUnavailable = errors.New("randomness source unavailable")
	// ErrInsufficientEntropy is returned when the kernel entropy pool is not ready.
	ErrInsufficientEntropy = errors.New("insufficient entropy")
	// ErrShortRead is returned when a source produced fewer bytes than requested.
	ErrShortRead = errors.New("short read from randomness source")
	// ErrInvalidLength is returned for non-positive lengths.
	ErrInvalidLength = errors.New("invalid length")
)
