package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kybsa/variant/pkg/variant"
)

// Result is a closed variant over {Success, Empty, Failure}. Empty means
// "no value, no error" and is distinct from Failure. The zero value behaves
// as Empty. Exactly one variant holds at any time.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       E
	isSuccess bool
	isFailure bool
}

var _ variant.WithError[any, error] = Result[any, error]{}

// Of constructs the variant from a raw (value, err) pair. A non-absent err
// always wins, regardless of value; otherwise an absent value yields Empty
// and a non-absent one yields Success.
func Of[V, E any](value V, err E) Result[V, E] {
	if !variant.IsNil(err) {
		return Failure[V, E](err)
	}
	return Success[V, E](value)
}

// Success returns a Result holding value, or Empty when value is absent.
func Success[V, E any](value V) Result[V, E] {
	if variant.IsNil(value) {
		return Empty[V, E]()
	}
	return Result[V, E]{
		value:     value,
		isSuccess: true,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty returns a Result holding neither value nor error.
func Empty[V, E any]() Result[V, E] {
	return Result[V, E]{
		isSuccess: false,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure returns a Result holding err, or Empty when err is absent.
func Failure[V, E any](err E) Result[V, E] {
	if variant.IsNil(err) {
		return Empty[V, E]()
	}
	return Result[V, E]{
		err:       err,
		isSuccess: false,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// IsPresent returns true if the Result is a Success.
func (r Result[V, E]) IsPresent() bool {
	return r.isSuccess
}

// IsEmpty returns true if the Result is Empty. A Failure is not empty:
// it holds no value for a different reason.
func (r Result[V, E]) IsEmpty() bool {
	return !r.isSuccess && !r.isFailure
}

// IsFailure returns true if the Result holds an error.
func (r Result[V, E]) IsFailure() bool {
	return r.isFailure
}

// Get returns the contained value. It panics with variant.ErrNoValue unless
// the Result is a Success.
func (r Result[V, E]) Get() V {
	if !r.isSuccess {
		panic(variant.ErrNoValue)
	}
	return r.value
}

// Err returns the contained error. It panics with variant.ErrNoError unless
// the Result is a Failure.
func (r Result[V, E]) Err() E {
	if !r.isFailure {
		panic(variant.ErrNoError)
	}
	return r.err
}

// IfPresent invokes action with the value exactly once on Success and not
// at all otherwise. A nil action panics with variant.ErrNilAction on every
// variant, before anything is invoked.
func (r Result[V, E]) IfPresent(action func(V)) {
	if action == nil {
		panic(variant.ErrNilAction)
	}
	if r.isSuccess {
		action(r.value)
	}
}

// IfError invokes action with the error exactly once on Failure and not at
// all otherwise. A nil action panics with variant.ErrNilAction on every
// variant, before anything is invoked.
func (r Result[V, E]) IfError(action func(E)) {
	if action == nil {
		panic(variant.ErrNilAction)
	}
	if r.isFailure {
		action(r.err)
	}
}

// ID returns the construction identifier.
func (r Result[V, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC).
func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

// String renders the variant for debugging: "Success(v)", "Empty" or
// "Failure(e)".
func (r Result[V, E]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.isFailure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Empty"
	}
}
