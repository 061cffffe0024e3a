// Package optional provides Optional[V], a closed variant over a present
// value and absence, for representing "no value" without nil checks.
//
// Highlights:
// - Of: construct Present from a value, or Absent from the nil sentinel
// - Absent: construct the empty container directly
// - IsPresent/IsEmpty: inspect which variant holds
// - Get: the contained value (panics on Absent)
// - IfPresent/IfPresentOrElse: branch with callbacks instead of accessors
//
// Optionals are immutable values; construction picks the variant and nothing
// changes it afterwards, so instances may be shared freely across goroutines.
package optional
