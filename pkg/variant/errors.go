package variant

import "errors"

// Sentinel errors carried by panics from the container operations. Every
// condition here is a bug at the offending call site, so it surfaces
// immediately and is never wrapped or retried.
var (
	// ErrNilAction reports a nil callback passed to an If* operation.
	ErrNilAction = errors.New("variant: nil action")

	// ErrNoValue reports a value access on a container that holds none.
	ErrNoValue = errors.New("variant: no value present")

	// ErrNoError reports an error access on a container that is not a failure.
	ErrNoError = errors.New("variant: no error present")
)
