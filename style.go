//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/option.go
// (the OptionType bitmask: optionKindEarly/Standalone/Groupable combined
// with optionArgumentNone/Required/Optional via bit flags).
//

package optparse

// Style is the surface form by which an [*Option] may be matched in the
// argument stream. An option's Styles field is a bitmask: a single option
// may legally be attempted under more than one style (e.g., a bool option
// accepts both [StyleCombined] and [StyleBoolean]).
type Style uint16

// These constants define the allowed [Style] values.
const (
	// StyleArgument matches `--name value` or `--name=value`.
	StyleArgument Style = 1 << iota

	// StyleBoolean matches `--name`, implying a true value.
	StyleBoolean

	// StyleCombined matches multi-letter short groups like `-abc`,
	// splitting into one match per letter (`-a -b -c`).
	StyleCombined

	// StyleEmbeddedValue matches `-ival` as `-i val` for short options.
	StyleEmbeddedValue

	// StyleEmbeddedValuePlus is like StyleEmbeddedValue but for long
	// options (`--ival` splitting at varying positions).
	StyleEmbeddedValuePlus

	// StyleFlag matches a boolean long option (`--verbose`).
	StyleFlag

	// StyleCmd matches a fixed first positional keyword (a subcommand
	// name).
	StyleCmd

	// StylePos matches a positional argument by [Index].
	StylePos

	// StyleMain always matches; invoked for side effects once per
	// parse, after Cmd/Pos processing.
	StyleMain
)

// Has reports whether s includes flag.
func (s Style) Has(flag Style) bool {
	return s&flag != 0
}

// styleAttemptOrder is the sequence MatchPolicies try per token:
// EqualWithValue, Argument, EmbeddedValue, EmbeddedValuePlus,
// CombinedOption, Boolean, Flag. EqualWithValue is not a distinct Style:
// it is [StyleArgument] attempted first specifically when the token
// already carries an inline `=value`, which buildMatcher (policy.go)
// implements by preferring the inline value when present.
var styleAttemptOrder = []Style{
	StyleArgument,
	StyleEmbeddedValue,
	StyleEmbeddedValuePlus,
	StyleCombined,
	StyleBoolean,
	StyleFlag,
}

// StyleAll is the union of every style, used by the "any" [Ctor].
const StyleAll = StyleArgument | StyleBoolean | StyleCombined | StyleEmbeddedValue |
	StyleEmbeddedValuePlus | StyleFlag | StyleCmd | StylePos | StyleMain

// consumesArgument reports whether a successful match under style s
// requires a raw value (as opposed to a boolean/flag-style match that
// never consumes one).
func (s Style) consumesArgument() bool {
	switch s {
	case StyleArgument, StyleEmbeddedValue, StyleEmbeddedValuePlus:
		return true
	default:
		return false
	}
}
