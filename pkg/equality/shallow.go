// Package equality implements the one-level structural comparison that
// decides whether two selections count as "the same" for re-render
// purposes.
package equality

import "reflect"

// ShallowEqual reports whether a and b are observably equivalent at one
// level of nesting.
//
// Two values are shallow-equal when they are identical, or when both
// are sequences (slices or arrays) of the same type and length whose
// elements are pairwise identical, or when both are key-value
// composites (maps or structs) of the same type with matching keys
// whose values are pairwise identical. Anything else, including any
// type mismatch, is unequal.
//
// Element comparison is always identity: a slice field is the same
// slice or it is not, regardless of contents. ShallowEqual never
// recurses past the first level and never panics, treating nil like
// any other value.
func ShallowEqual(a, b any) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() != vb.IsNil() {
			return false
		}
		if identical(va, vb) {
			return true
		}
		return elementsIdentical(va, vb)
	case reflect.Array:
		return elementsIdentical(va, vb)
	case reflect.Map:
		if va.IsNil() != vb.IsNil() {
			return false
		}
		if identical(va, vb) {
			return true
		}
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !identical(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	default:
		return identical(va, vb)
	}
}

func elementsIdentical(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !identical(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

// identical is the single-value identity check: the same referenced
// cell for reference kinds, == for comparable values. It never
// recurses into contents.
func identical(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Slice:
		if a.IsNil() != b.IsNil() {
			return false
		}
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return identical(a.Elem(), b.Elem())
	default:
		if !a.Comparable() {
			return false
		}
		return a.Equal(b)
	}
}
