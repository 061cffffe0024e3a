// Package variant holds the contracts shared by the container types in the
// optional and result subpackages: the absence sentinel test, the panic
// taxonomy, and the capability interfaces both containers satisfy.
//
// Highlights:
// - IsNil: reports whether a value is the language's "no value" sentinel
// - ErrNilAction/ErrNoValue/ErrNoError: sentinel errors carried by panics
// - Presence/ValueProvider/WithError: what a container can be asked for
//
// The subpackages depend on this package only; optional and result never
// depend on each other.
package variant
