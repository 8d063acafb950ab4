// Package nilcheck detects nil values hidden behind interfaces.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including a typed nil stored in an interface.
// Value types such as structs are never nil.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
