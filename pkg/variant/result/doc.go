// Package result provides Result[V, E], a closed variant over a successful
// value, an explicit empty outcome and a typed failure. It keeps "no value"
// and "failed" apart as two distinct reasons for absence.
//
// Highlights:
// - Of: construct from a raw (value, error) pair; a non-absent error wins
// - Success/Empty/Failure: construct a specific variant directly
// - IsPresent/IsEmpty/IsFailure: inspect which variant holds
// - Get/Err: the contained value or error (panic on the wrong variant)
// - IfPresent/IfError: branch with callbacks instead of accessors
//
// Results are immutable values; construction picks the variant and nothing
// changes it afterwards, so instances may be shared freely across goroutines.
package result
