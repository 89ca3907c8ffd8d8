//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the five-stage value lifecycle (initialize, parse,
// validate, store, access), plus the Stdin / Stop raw parsers, from
// original_source/aopt-core/src/value/parser.rs and
// aopt/src/value/storer.rs. The "erased handler with typed arguments"
// idiom (a behavior trait plus a generic constructor producing a
// type-erased implementation) is applied here to RawParser/Validator/
// Storer, matching the same shape used for [TypeMap]/[AnyValue]
// (reflect-free erasure through an interface plus a generic
// free-function constructor).
//

package optparse

import (
	"fmt"
	"reflect"
	"strconv"
)

// Initializer seeds an [*AnyValue] when an option's parse state resets.
type Initializer interface {
	Init(av *AnyValue)
}

type initializerFunc func(av *AnyValue)

func (f initializerFunc) Init(av *AnyValue) { f(av) }

// NewInitializer returns an [Initializer] that seeds the sequence of T
// with the given literal defaults (possibly empty).
func NewInitializer[T any](defaults ...T) Initializer {
	return initializerFunc(func(av *AnyValue) {
		AnyValueClearType[T](av)
		if len(defaults) > 0 {
			AnyValueSet(av, append([]T(nil), defaults...))
		}
	})
}

// NewCallbackInitializer returns an [Initializer] delegating to a custom
// callback.
func NewCallbackInitializer(fn func(av *AnyValue)) Initializer {
	return initializerFunc(fn)
}

// RawParser converts a raw argument fragment (nil when the matching style
// consumed none) plus the match [*Ctx] into a typed value, returning a
// failure error ([ErrMissingValue] or [ErrRawValParse]) when the raw
// value is absent or ill-formed.
type RawParser interface {
	Parse(raw *string, ctx *Ctx) (any, error)
}

type rawParserFunc[T any] func(raw *string, ctx *Ctx) (T, error)

func (f rawParserFunc[T]) Parse(raw *string, ctx *Ctx) (any, error) {
	v, err := f(raw, ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewRawParser adapts a typed parsing function into a type-erased
// [RawParser].
func NewRawParser[T any](fn func(raw *string, ctx *Ctx) (T, error)) RawParser {
	return rawParserFunc[T](fn)
}

// Validator is an optional typed predicate run on the parsed value.
// Failing validation yields [ErrValidate], a recoverable failure that
// lets the next [Style] try.
type Validator interface {
	Validate(v any) error
}

type validatorFunc[T any] func(T) error

func (f validatorFunc[T]) Validate(v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("validator type mismatch: expected %T, got %T", tv, v)
	}
	return f(tv)
}

// NewValidator adapts a typed predicate into a type-erased [Validator].
func NewValidator[T any](fn func(T) error) Validator {
	return validatorFunc[T](fn)
}

// Storer composes a [RawParser] and an optional [Validator] and writes
// the result into an [*AnyValue] using the option's [Action].
type Storer interface {
	Store(av *AnyValue, action Action, raw *string, ctx *Ctx) error
}

type storerImpl[T any] struct {
	parser    RawParser
	validator Validator
}

func (s storerImpl[T]) Store(av *AnyValue, action Action, raw *string, ctx *Ctx) error {
	boxed, err := s.parser.Parse(raw, ctx)
	if err != nil {
		return err
	}
	if s.validator != nil {
		if err := s.validator.Validate(boxed); err != nil {
			return ErrValidate{Uid: ctx.Uid, Name: ctx.NameMatched, Cause: err}
		}
	}
	if action == ActionCnt {
		applyCnt(av)
		return nil
	}
	v, ok := boxed.(T)
	if !ok {
		return fmt.Errorf("internal: storer type mismatch: expected %T, got %T", v, boxed)
	}
	applyAction(av, action, v)
	return nil
}

// NewStorer composes parser and validator (which may be nil) into a
// type-erased [Storer] for values of type T.
func NewStorer[T any](parser RawParser, validator Validator) Storer {
	return storerImpl[T]{parser: parser, validator: validator}
}

// Accessor owns an option's [*AnyValue] and [*RawValueStore] and exposes
// typed access to both. Since Go methods cannot be generic, typed access
// is exposed as free functions parameterized by the requested type:
// [Val], [Vals], [TakeVal], [TakeVals].
type Accessor struct {
	values *AnyValue
	raw    *RawValueStore
}

func newAccessor() *Accessor {
	return &Accessor{values: NewAnyValue(), raw: NewRawValueStore()}
}

// Val returns the last stored value of type T, if any.
func Val[T any](a *Accessor) (T, bool) { return AnyValueLast[T](a.values) }

// Vals returns every stored value of type T, in insertion order.
func Vals[T any](a *Accessor) []T { return AnyValueAll[T](a.values) }

// TakeVal removes and returns the last stored value of type T, if any.
func TakeVal[T any](a *Accessor) (T, bool) { return AnyValuePop[T](a.values) }

// TakeVals removes and returns every stored value of type T.
func TakeVals[T any](a *Accessor) []T {
	vs := append([]T(nil), AnyValueAll[T](a.values)...)
	AnyValueClearType[T](a.values)
	return vs
}

// RawVal returns the most recently captured raw argument fragment, if
// any.
func RawVal(a *Accessor) (string, bool) { return a.raw.Last() }

// RawVals returns every captured raw argument fragment, in insertion
// order.
func RawVals(a *Accessor) []string { return a.raw.All() }

// ValuePipeline is the five-stage value lifecycle bound to one [*Option]:
// Initializer, RawParser, Validator, Storer, Accessor.
type ValuePipeline struct {
	initializer Initializer
	storer      Storer
	accessor    *Accessor
}

// newValuePipeline builds a [*ValuePipeline] from an initializer (may be
// nil) and a composed storer.
func newValuePipeline(initializer Initializer, storer Storer) *ValuePipeline {
	return &ValuePipeline{initializer: initializer, storer: storer, accessor: newAccessor()}
}

// Accessor returns the pipeline's [*Accessor].
func (vp *ValuePipeline) Accessor() *Accessor { return vp.accessor }

// reset clears the accessor and re-runs the initializer.
func (vp *ValuePipeline) reset() {
	vp.accessor.values.Clear()
	vp.accessor.raw.Clear()
	if vp.initializer != nil {
		vp.initializer.Init(vp.accessor.values)
	}
}

// store runs the Storer stage and, on success, appends raw to the
// RawValueStore.
func (vp *ValuePipeline) store(action Action, raw *string, ctx *Ctx) error {
	if err := vp.storer.Store(vp.accessor.values, action, raw, ctx); err != nil {
		return err
	}
	if raw != nil {
		vp.accessor.raw.Push(*raw)
	}
	return nil
}

// --- built-in RawParsers ---

type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floatingPoint interface {
	~float32 | ~float64
}

func bitSizeOf[T any]() int {
	var zero T
	return int(reflect.TypeOf(zero).Size()) * 8
}

// SignedIntParser returns a [RawParser] converting the raw fragment into
// a signed integer of type T, covering all integer widths.
func SignedIntParser[T signedInteger]() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (T, error) {
		var zero T
		if raw == nil {
			return zero, ErrMissingValue{Uid: ctx.Uid, Name: ctx.NameMatched}
		}
		n, err := strconv.ParseInt(*raw, 0, bitSizeOf[T]())
		if err != nil {
			return zero, ErrRawValParse{Uid: ctx.Uid, Name: ctx.NameMatched, Raw: *raw, Cause: err}
		}
		return T(n), nil
	})
}

// UnsignedIntParser returns a [RawParser] converting the raw fragment
// into an unsigned integer of type T.
func UnsignedIntParser[T unsignedInteger]() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (T, error) {
		var zero T
		if raw == nil {
			return zero, ErrMissingValue{Uid: ctx.Uid, Name: ctx.NameMatched}
		}
		n, err := strconv.ParseUint(*raw, 0, bitSizeOf[T]())
		if err != nil {
			return zero, ErrRawValParse{Uid: ctx.Uid, Name: ctx.NameMatched, Raw: *raw, Cause: err}
		}
		return T(n), nil
	})
}

// FloatParser returns a [RawParser] converting the raw fragment into a
// floating-point value of type T.
func FloatParser[T floatingPoint]() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (T, error) {
		var zero T
		if raw == nil {
			return zero, ErrMissingValue{Uid: ctx.Uid, Name: ctx.NameMatched}
		}
		f, err := strconv.ParseFloat(*raw, bitSizeOf[T]())
		if err != nil {
			return zero, ErrRawValParse{Uid: ctx.Uid, Name: ctx.NameMatched, Raw: *raw, Cause: err}
		}
		return T(f), nil
	})
}

// BoolParser returns a [RawParser] for bool: absent raw (a Boolean or
// Combined style match) yields true; a present raw (an Argument-style
// `--name=value` match) is parsed with [strconv.ParseBool].
func BoolParser() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (bool, error) {
		if raw == nil {
			return true, nil
		}
		b, err := strconv.ParseBool(*raw)
		if err != nil {
			return false, ErrRawValParse{Uid: ctx.Uid, Name: ctx.NameMatched, Raw: *raw, Cause: err}
		}
		return b, nil
	})
}

// StringParser returns a [RawParser] that requires a raw value and
// returns it unmodified.
func StringParser() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (string, error) {
		if raw == nil {
			return "", ErrMissingValue{Uid: ctx.Uid, Name: ctx.NameMatched}
		}
		return *raw, nil
	})
}

// Path is the result type of [PathParser]: a filesystem path captured
// verbatim from the command line (no normalization is performed; that is
// a caller concern).
type Path string

// PathParser returns a [RawParser] that requires a raw value and returns
// it as a [Path].
func PathParser() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (Path, error) {
		if raw == nil {
			return "", ErrMissingValue{Uid: ctx.Uid, Name: ctx.NameMatched}
		}
		return Path(*raw), nil
	})
}

// Stdin is the marker value produced by [StdinParser] on matching the
// literal "-" token, conventionally meaning "read from standard input".
type Stdin struct{}

// StdinParser returns a [RawParser] that matches only the literal token
// "-", yielding [Stdin]{}. Any other raw value is a recoverable failure,
// letting the next style (or the fallback/pos handling) try.
func StdinParser() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (Stdin, error) {
		if raw == nil || *raw != "-" {
			got := ""
			if raw != nil {
				got = *raw
			}
			return Stdin{}, ErrRawValParse{
				Uid: ctx.Uid, Name: ctx.NameMatched, Raw: got,
				Cause: fmt.Errorf(`expected literal "-"`),
			}
		}
		return Stdin{}, nil
	})
}

// Stop is the marker value produced by [StopParser] on matching the
// literal "--" token. Matching also sets [Ctx.PolicyAction] to
// [PolicyActionStop]; when the handler runs during the walk, the walk
// then diverts all subsequent tokens straight to the NOA list. Under
// [DelayPolicy] that holds only for options listed in NoDelay, since the
// other handlers run after the walk.
type Stop struct{}

// StopParser returns a [RawParser] that matches only the literal token
// "--", yielding [Stop]{} and requesting [PolicyActionStop].
func StopParser() RawParser {
	return NewRawParser(func(raw *string, ctx *Ctx) (Stop, error) {
		if raw == nil || *raw != "--" {
			got := ""
			if raw != nil {
				got = *raw
			}
			return Stop{}, ErrRawValParse{
				Uid: ctx.Uid, Name: ctx.NameMatched, Raw: got,
				Cause: fmt.Errorf(`expected literal "--"`),
			}
		}
		ctx.PolicyAction = PolicyActionStop
		return Stop{}, nil
	})
}
