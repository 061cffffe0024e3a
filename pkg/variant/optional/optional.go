package optional

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kybsa/variant/pkg/variant"
)

// Optional is a closed variant over {Present, Absent}. The zero value
// behaves as Absent. Exactly one variant holds at any time: a "present but
// nil" Optional is not constructible, because every exported constructor
// routes the absence sentinel to Absent.
type Optional[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	present   bool
}

var (
	_ variant.Presence           = Optional[any]{}
	_ variant.ValueProvider[any] = Optional[any]{}
)

// Of returns Present holding value, or Absent when value is the nil
// sentinel (nil pointer, interface, map, slice, channel or func).
// Non-nilable values, including zero ones, are always Present.
func Of[V any](value V) Optional[V] {
	if variant.IsNil(value) {
		return Absent[V]()
	}
	return Optional[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		present:   true,
	}
}

// Absent returns an Optional holding no value.
func Absent[V any]() Optional[V] {
	return Optional[V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// IsPresent returns true if the Optional holds a value.
func (o Optional[V]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the Optional is Absent. It is always the negation
// of IsPresent.
func (o Optional[V]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value. It panics with variant.ErrNoValue on
// Absent; branch with IsPresent or IfPresent instead of recovering.
func (o Optional[V]) Get() V {
	if !o.present {
		panic(variant.ErrNoValue)
	}
	return o.value
}

// IfPresent invokes action with the contained value exactly once if the
// Optional is Present, and not at all otherwise. A nil action panics with
// variant.ErrNilAction on every variant, before anything is invoked.
func (o Optional[V]) IfPresent(action func(V)) {
	if action == nil {
		panic(variant.ErrNilAction)
	}
	if o.present {
		action(o.value)
	}
}

// IfPresentOrElse invokes action with the contained value if the Optional
// is Present, otherwise invokes emptyAction. Exactly one of the two runs,
// exactly once. Both callbacks are validated up front, so a nil callback
// panics with variant.ErrNilAction even when its branch is not taken.
func (o Optional[V]) IfPresentOrElse(action func(V), emptyAction func()) {
	if action == nil || emptyAction == nil {
		panic(variant.ErrNilAction)
	}
	if o.present {
		action(o.value)
		return
	}
	emptyAction()
}

// ID returns the construction identifier.
func (o Optional[V]) ID() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC).
func (o Optional[V]) CreatedAt() time.Time {
	return o.createdAt
}

// String renders the variant for debugging: "Present(v)" or "Absent".
func (o Optional[V]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
