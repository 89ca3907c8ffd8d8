//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the value-accumulation policy an option's stored values
// follow (Set/App/Pop/Cnt/Clr/Null), including the Pop/Cnt edge cases
// from original_source/aopt/src/opt/action.rs. Enum-valued configuration
// kept as a tagged constant, in the style of flagparser's OptionType
// bitmask (option.go).
//

package optparse

// Action is the value-accumulation policy applied when a [*ValuePipeline]
// Storer successfully parses and validates a raw argument.
type Action int

// These constants define the allowed [Action] values.
const (
	// ActionSet replaces the stored sequence with a single value.
	ActionSet Action = iota

	// ActionApp appends the value to the stored sequence.
	ActionApp

	// ActionPop removes the last stored value; pushing nothing.
	ActionPop

	// ActionCnt treats the stored sequence as a single uint64 counter
	// and increments it, ignoring the parsed value's type and content.
	ActionCnt

	// ActionClr clears the stored sequence.
	ActionClr

	// ActionNull leaves the stored sequence untouched.
	ActionNull
)

// String returns a short, human-readable name for a.
func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionApp:
		return "app"
	case ActionPop:
		return "pop"
	case ActionCnt:
		return "cnt"
	case ActionClr:
		return "clr"
	case ActionNull:
		return "null"
	default:
		return "unknown"
	}
}

// applyAction applies a to av's sequence of T with the freshly parsed
// value v. ActionCnt is handled separately by callers (see pipeline.go's
// storerImpl.Store) since it operates on a uint64 counter regardless of T.
func applyAction[T any](av *AnyValue, a Action, v T) {
	switch a {
	case ActionSet:
		AnyValueSet(av, []T{v})
	case ActionApp:
		AnyValuePush(av, v)
	case ActionPop:
		AnyValuePop[T](av)
	case ActionClr:
		AnyValueClearType[T](av)
	case ActionNull:
		// no-op
	case ActionCnt:
		// handled by storerImpl.Store before reaching here
	}
}

// applyCnt implements ActionCnt: values[uint64] is incremented at index 0,
// creating it (starting from zero) if absent.
func applyCnt(av *AnyValue) {
	slice := AnyValueAllMut[uint64](av)
	if len(*slice) == 0 {
		*slice = []uint64{0}
	}
	(*slice)[0]++
}
