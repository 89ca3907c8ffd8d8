//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the per-option multi-value store, built on [TypeMap].
// Mirrors the "slice of values per option" shape that flagparser keeps
// as a plain []Value on the deque (see deque.go), generalized to be
// keyed by the requested element type T instead of a single concrete
// [Value] type.
//

package optparse

// AnyValue is a per-option typed multi-value store: for any requested
// type T, it maintains an ordered sequence of T. It wraps a [TypeMap] so
// that the stored shape for T is always []T.
type AnyValue struct {
	tm *TypeMap
}

// NewAnyValue returns an empty [*AnyValue].
func NewAnyValue() *AnyValue {
	return &AnyValue{tm: NewTypeMap()}
}

// AnyValuePush appends v to the sequence of T.
func AnyValuePush[T any](av *AnyValue, v T) {
	slice := TypeMapEntry[[]T](av.tm, func() []T { return nil })
	*slice = append(*slice, v)
}

// AnyValuePop removes and returns the last element of the sequence of T,
// if any.
func AnyValuePop[T any](av *AnyValue) (T, bool) {
	var zero T
	slice, ok := TypeMapGetMut[[]T](av.tm)
	if !ok || len(*slice) == 0 {
		return zero, false
	}
	last := (*slice)[len(*slice)-1]
	*slice = (*slice)[:len(*slice)-1]
	return last, true
}

// AnyValueSet replaces the sequence of T with vs.
func AnyValueSet[T any](av *AnyValue, vs []T) {
	TypeMapInsert[[]T](av.tm, vs)
}

// AnyValueLast returns the last element of the sequence of T, if any.
func AnyValueLast[T any](av *AnyValue) (T, bool) {
	var zero T
	slice, ok := TypeMapGet[[]T](av.tm)
	if !ok || len(slice) == 0 {
		return zero, false
	}
	return slice[len(slice)-1], true
}

// AnyValueLastMut returns a mutable pointer to the last element of the
// sequence of T, if any.
func AnyValueLastMut[T any](av *AnyValue) (*T, bool) {
	slice, ok := TypeMapGetMut[[]T](av.tm)
	if !ok || len(*slice) == 0 {
		return nil, false
	}
	return &(*slice)[len(*slice)-1], true
}

// AnyValueAll returns the full sequence of T, preserving insertion order
// until [AnyValueClearType] or [AnyValue.Clear] runs.
func AnyValueAll[T any](av *AnyValue) []T {
	slice, _ := TypeMapGet[[]T](av.tm)
	return slice
}

// AnyValueAllMut returns a mutable pointer to the full sequence of T.
func AnyValueAllMut[T any](av *AnyValue) *[]T {
	return TypeMapEntry[[]T](av.tm, func() []T { return nil })
}

// AnyValueClearType empties (without removing) the sequence of T.
func AnyValueClearType[T any](av *AnyValue) {
	TypeMapInsert[[]T](av.tm, []T(nil))
}

// AnyValueContains reports whether any values of type T have been stored.
func AnyValueContains[T any](av *AnyValue) bool {
	return TypeMapContains[[]T](av.tm)
}

// Clear empties the store for every type it has ever held.
func (av *AnyValue) Clear() {
	av.tm = NewTypeMap()
}
