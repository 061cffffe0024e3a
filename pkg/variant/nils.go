package variant

import "reflect"

// IsNil reports whether i is the "no value" sentinel: untyped nil, or a nil
// value of a nilable kind (pointer, map, slice, channel, func, interface).
// Non-nilable values, including zero ones such as 0 and "", are never absent.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
