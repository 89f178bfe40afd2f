package mixer

import "errors"

var (
	// ErrInvalidInput covers malformed desired profiles, allocations that do
	// not sum to 100 and liquid ids that do not resolve.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCandidates means even the broadest catalog query came back empty.
	ErrNoCandidates = errors.New("no candidate liquids available")

	ErrLiquidNotFound = errors.New("liquid not found")
)
