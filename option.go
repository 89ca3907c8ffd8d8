//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/option.go
//
// flagparser's Option is a flat (Prefix, Name, Type, DefaultValue) struct
// with factory functions keyed by shape (NewOptionWithArgumentNone,
// NewOptionWithArgumentRequired, ...). A richer Option carrying
// styles/index/action/force plus a value pipeline is needed here; this
// keeps flagparser's "plain struct + free factory functions" shape and
// its "no subclassing, differ only by inferred configuration" philosophy,
// generalized to the aopt-style model.
//

package optparse

// Uid is an opaque unsigned identifier assigned monotonically as options
// are added to an [*OptionSet]. It is immutable for the option's lifetime.
type Uid uint64

// Alias is a (prefix, name) pair an [*Option] can also be matched under,
// in addition to its primary Name (which uses the [*OptionSet]'s default
// prefix set).
type Alias struct {
	Prefix string
	Name   string
}

// Option is the central entity of this package: a declarative description
// of a single command-line argument, plus the transient state ("matched")
// a parse mutates.
//
// Construct an Option through a [Ctor] registered on an [*OptionSet]
// (see [*OptionSet.AddOption]) rather than directly; Ctors assign sane
// defaults via the [InferDefaults] layer and validate invariants (e.g., that
// Styles is non-empty) that this struct itself does not enforce.
type Option struct {
	uid Uid

	// Name is the option's primary name (matched without any Alias).
	Name string

	// Aliases lists additional (prefix, name) pairs this option also
	// matches under.
	Aliases []Alias

	// TypeName is the short tag identifying the [Ctor] that built this
	// option (e.g. "int", "bool", "str", "pos", "cmd", "main", "any").
	TypeName string

	// Styles is the set of [Style] values this option may be matched
	// under. Invariant: always non-empty for an option built by a
	// [Ctor].
	Styles Style

	// Index is the positional index specification. Consulted only when
	// IgnoreIndex is false.
	Index Index

	// Force indicates the option must be matched at least once for the
	// parse to succeed.
	Force bool

	// Action is the value-accumulation policy applied on a successful
	// store.
	Action Action

	// IgnoreName, IgnoreAlias, IgnoreIndex mask out the corresponding
	// matching criteria; used by Pos/Main/Any kinds.
	IgnoreName  bool
	IgnoreAlias bool
	IgnoreIndex bool

	// Hint and Help are opaque strings consumed by an external renderer,
	// except that Hint is also surfaced on [ErrOptRequired] for a
	// minimally useful error message.
	Hint string
	Help string

	pipeline *ValuePipeline
	matched  bool
}

// Uid returns o's assigned identifier.
func (o *Option) Uid() Uid { return o.uid }

// Matched reports whether the current parse observed a successful match
// (and store) for o.
func (o *Option) Matched() bool { return o.matched }

// Accessor returns o's [*Accessor], through which parsed/raw values are
// read.
func (o *Option) Accessor() *Accessor { return o.pipeline.accessor }

// Pipeline returns o's [*ValuePipeline].
func (o *Option) Pipeline() *ValuePipeline { return o.pipeline }

// reset clears transient match state and runs the pipeline's
// Initializer, called at the start of every parse.
func (o *Option) reset() {
	o.matched = false
	o.pipeline.reset()
}

// nameMatches reports whether candidate (a plain option name, without
// prefix) equals o's Name, honoring IgnoreName.
func (o *Option) nameMatches(candidate string) bool {
	if o.IgnoreName {
		return false
	}
	return o.Name == candidate
}

// aliasMatches reports whether (prefix, candidate) equals one of o's
// Aliases, honoring IgnoreAlias.
func (o *Option) aliasMatches(prefix, candidate string) bool {
	if o.IgnoreAlias {
		return false
	}
	for _, a := range o.Aliases {
		if a.Prefix == prefix && a.Name == candidate {
			return true
		}
	}
	return false
}

// indexMatches reports whether pos/total satisfy o's Index, honoring
// IgnoreIndex (which, when true, always reports a match).
func (o *Option) indexMatches(pos, total int) bool {
	if o.IgnoreIndex {
		return true
	}
	return o.Index.Matches(pos, total)
}

// requiresForceCheck reports whether o participates in the Checker's opt
// check: valued/boolean styles with Force=true.
func (o *Option) requiresForceCheck() bool {
	return o.Styles.Has(StyleArgument | StyleBoolean | StyleCombined | StyleFlag)
}

// matches is the composite predicate [SingleOpt] evaluates per candidate
// option: the identity gate (name-or-alias) is skipped
// entirely only when both IgnoreName and IgnoreAlias are set; otherwise
// at least one of a non-ignored name/alias comparison must succeed. The
// position gate is skipped when IgnoreIndex is set, otherwise
// [Index.Matches] must hold.
func (o *Option) matches(prefix, name string, pos, total int) bool {
	identityIgnored := o.IgnoreName && o.IgnoreAlias
	identityPass := (!o.IgnoreName && o.nameMatches(name)) || (!o.IgnoreAlias && o.aliasMatches(prefix, name))
	positionPass := o.IgnoreIndex || o.indexMatches(pos, total)
	return (identityIgnored || identityPass) && positionPass
}
