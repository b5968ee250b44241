// field.go — optional, type-safe detail accessors.
//
// Overview
//   DetailField provides an *optional* ergonomic layer for attaching and
//   reading typed details on taxonomy errors. It does not replace the plain
//   key/value API (WithDetail, MapOf) — it complements it.
//
// Goals
//   • Zero policy: purely a convenience for authors who prefer typed access.
//   • No lock-in: you can mix WithDetail("k", v) with DetailOf[T]("k").Get.
//   • Interop-first: reads through the AsError contract, so it works on
//     generated variants and erased snapshots alike.
//
// Caveats
//   • Reads are arm-exact against the Value model: numbers stored through
//     coercion land on the int64 or float64 arm, so read them as int64 or
//     float64 — DetailOf[int] will not match. No implicit conversions.
package xgxtaxon

import (
	"fmt"
)

// DetailField is a small, zero-policy helper for type-safe detail access.
// T is the Go type you intend to store/retrieve for the given key: one of
// string, int64, float64, bool, []Value, Map, or Value itself.
type DetailField[T any] struct {
	key string
}

// DetailOf constructs a DetailField[T] for a given key.
// Keys SHOULD be snake_case for consistency across logs/exports.
func DetailOf[T any](key string) DetailField[T] {
	return DetailField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f DetailField[T]) Key() string { return f.key }

// Set binds (key = val) on e and returns a NEW Error.
func (f DetailField[T]) Set(e Error, val T) Error {
	return e.WithDetail(f.key, any(val))
}

// SetIn binds (key = val) in m and returns a NEW Map. A nil receiver map
// becomes a present one, as with Map.Set.
func (f DetailField[T]) SetIn(m Map, val T) Map {
	return m.Set(f.key, coerceValue(any(val)))
}

// Get retrieves the typed value for this field from e.
// Returns (zero, false) if e is nil, the field is absent, or the stored
// value's arm does not correspond to T.
func (f DetailField[T]) Get(e AsError) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	details, ok := e.Details()
	if !ok {
		return zero, false
	}
	v, ok := details.Get(f.key)
	if !ok {
		return zero, false
	}
	return fieldValue[T](v)
}

// MustGet retrieves the typed value or panics with a descriptive error if
// the field is missing or mistyped.
//
// Use sparingly — it is intended for test code or contexts where absence is
// a programming error rather than a runtime condition.
func (f DetailField[T]) MustGet(e AsError) T {
	var zero T
	if e == nil {
		panic(fmt.Errorf("xgxtaxon.DetailField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := f.Get(e)
	if !ok {
		panic(fmt.Errorf("xgxtaxon.DetailField[%T](%q): field missing or mistyped", zero, f.key))
	}
	return v
}

// fieldValue maps a stored Value onto T: Value itself passes through, every
// other T is matched against the natural Go form of the stored arm.
func fieldValue[T any](v Value) (T, bool) {
	var zero T
	if _, isValue := any(zero).(Value); isValue {
		return any(v).(T), true
	}
	var raw any
	switch v.kind {
	case NullKind:
		raw = nil
	case StringKind:
		raw = v.str
	case IntKind:
		raw = v.i
	case FloatKind:
		raw = v.f
	case BoolKind:
		raw = v.b
	case SeqKind:
		raw, _ = v.Seq()
	case MapKind:
		raw, _ = v.Map()
	}
	tv, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}
