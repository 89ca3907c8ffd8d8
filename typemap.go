//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the heterogeneous keyed-container need of a per-option
// value store that can hold any requested Go type; no direct flagparser
// analog exists, since flagparser stores a single concrete [Value] slice
// rather than a value per requested type, so this file is new code
// written in flagparser's idiom (plain struct, free helper functions, no
// reflection-heavy API surface exposed to callers).
//

package optparse

import "reflect"

// TypeMap is a heterogeneous keyed container indexed by type identity: at
// most one value is stored per distinct Go type. It backs [AnyValue] (a
// per-option multi-value store) and [Services] (a per-parse registry of
// user state).
//
// TypeMap is not safe for concurrent use; a single parse holds exclusive
// access to its OptionSet and Services throughout.
type TypeMap struct {
	values map[reflect.Type]any
}

// NewTypeMap returns an empty [*TypeMap].
func NewTypeMap() *TypeMap {
	return &TypeMap{values: make(map[reflect.Type]any)}
}

// typeKeyOf returns the reflect.Type identifying T, including interface
// types (for which reflect.TypeOf on a zero value would otherwise fail).
func typeKeyOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}

// TypeMapInsert stores v, replacing any previous value of type T.
func TypeMapInsert[T any](tm *TypeMap, v T) {
	tm.values[typeKeyOf[T]()] = &v
}

// TypeMapGet returns the stored value of type T, if any. Retrieval with
// the wrong type never mis-casts: it simply reports "not present",
// because the map key is the type itself.
func TypeMapGet[T any](tm *TypeMap) (T, bool) {
	var zero T
	raw, ok := tm.values[typeKeyOf[T]()]
	if !ok {
		return zero, false
	}
	return *raw.(*T), true
}

// TypeMapGetMut returns a mutable pointer to the stored value of type T,
// if any.
func TypeMapGetMut[T any](tm *TypeMap) (*T, bool) {
	raw, ok := tm.values[typeKeyOf[T]()]
	if !ok {
		return nil, false
	}
	return raw.(*T), true
}

// TypeMapRemove deletes the stored value of type T, if any.
func TypeMapRemove[T any](tm *TypeMap) {
	delete(tm.values, typeKeyOf[T]())
}

// TypeMapEntry returns a mutable pointer to the stored value of type T,
// initializing it with init() when absent.
func TypeMapEntry[T any](tm *TypeMap, init func() T) *T {
	key := typeKeyOf[T]()
	raw, ok := tm.values[key]
	if ok {
		return raw.(*T)
	}
	v := init()
	tm.values[key] = &v
	return &v
}

// TypeMapContains reports whether a value of type T is stored.
func TypeMapContains[T any](tm *TypeMap) bool {
	_, ok := tm.values[typeKeyOf[T]()]
	return ok
}
