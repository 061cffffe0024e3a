package variant

import "time"

// Presence reports which side of the present/absent split a container is on.
// For the three-variant result type a failure answers false to both.
type Presence interface {
	// IsPresent returns true if the container holds a usable value
	IsPresent() bool
	// IsEmpty returns true if the container holds no value and no error
	IsEmpty() bool
}

// ValueProvider defines an interface for containers that expose a contained value
type ValueProvider[V any] interface {
	// Get returns the contained value
	Get() V
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError extends ValueProvider with a typed failure channel
type WithError[V, E any] interface {
	Presence
	ValueProvider[V]
	// Err returns the error if the container is a failure
	Err() E
	// IsFailure returns true if the container holds an error
	IsFailure() bool
}
