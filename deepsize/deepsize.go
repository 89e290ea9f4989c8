// Package deepsize measures the live heap footprint of a value by
// reflection. The store uses it to cross-check the analytic memory
// model against what an index tree actually allocates.
package deepsize

import "reflect"

// Of returns the total bytes reachable from v: the value itself plus
// every string, slice and pointer target below it. Shared pointer
// targets are counted once, so cyclic structures terminate. Strings
// that share a backing array are counted per reference.
func Of(v any) int64 {
	if v == nil {
		return 0
	}
	w := walker{seen: make(map[uintptr]struct{})}
	rv := reflect.ValueOf(v)
	return int64(rv.Type().Size()) + w.indirect(rv)
}

type walker struct {
	seen map[uintptr]struct{}
}

// indirect returns the heap bytes v points at, excluding v's own inline
// storage, which the caller has already counted.
func (w *walker) indirect(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		ptr := v.Pointer()
		if _, ok := w.seen[ptr]; ok {
			return 0
		}
		w.seen[ptr] = struct{}{}
		elem := v.Elem()
		return int64(elem.Type().Size()) + w.indirect(elem)

	case reflect.String:
		return int64(v.Len())

	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		elemType := v.Type().Elem()
		total := int64(v.Cap()) * int64(elemType.Size())
		if hasIndirect(elemType) {
			for i := 0; i < v.Len(); i++ {
				total += w.indirect(v.Index(i))
			}
		}
		return total

	case reflect.Struct:
		var total int64
		for i := 0; i < v.NumField(); i++ {
			total += w.indirect(v.Field(i))
		}
		return total

	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		elem := v.Elem()
		return int64(elem.Type().Size()) + w.indirect(elem)

	default:
		// Scalars live inline. A func value's closure is opaque to
		// reflection and goes uncounted.
		return 0
	}
}

// hasIndirect reports whether values of type t can point at heap data.
func hasIndirect(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.String, reflect.Interface:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasIndirect(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
