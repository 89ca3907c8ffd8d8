//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config.go
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doparse.go
//

package optparse

import "fmt"

// failer is implemented by every failure-kind error this package returns;
// the fatal-kind errors do not implement it. A failure is
// recoverable within a single token: the driver lets the next [Style]
// attempt, or the token falls through to the NOA list. A fatal error (the
// default when failer is not implemented, see [isFailure]) aborts the parse.
type failer interface {
	isFailure() bool
}

// isFailure reports whether err is a recoverable failure rather than a
// fatal error. Errors that do not implement [failer] are treated as fatal.
func isFailure(err error) bool {
	f, ok := err.(failer)
	return ok && f.isFailure()
}

// ErrMissingValue indicates a [Style] that consumes an argument matched a
// token with no raw value available (e.g., `--output` at the end of argv).
type ErrMissingValue struct {
	Uid  Uid
	Name string
}

var _ error = ErrMissingValue{}

func (err ErrMissingValue) Error() string {
	return fmt.Sprintf("option %q requires a value", err.Name)
}

func (ErrMissingValue) isFailure() bool { return true }

// ErrRawValParse indicates the [RawParser] stage could not convert the raw
// argument fragment into the requested type.
type ErrRawValParse struct {
	Uid   Uid
	Name  string
	Raw   string
	Cause error
}

var _ error = ErrRawValParse{}

func (err ErrRawValParse) Error() string {
	return fmt.Sprintf("option %q: cannot parse value %q: %v", err.Name, err.Raw, err.Cause)
}

func (err ErrRawValParse) Unwrap() error { return err.Cause }

func (ErrRawValParse) isFailure() bool { return true }

// ErrValidate indicates the [Validator] stage rejected a parsed value.
type ErrValidate struct {
	Uid   Uid
	Name  string
	Cause error
}

var _ error = ErrValidate{}

func (err ErrValidate) Error() string {
	return fmt.Sprintf("option %q: invalid value: %v", err.Name, err.Cause)
}

func (err ErrValidate) Unwrap() error { return err.Cause }

func (ErrValidate) isFailure() bool { return true }

// ErrExtractValue indicates a handler could not pull the argument it
// needs out of a [Ctx]. No code in this package returns it; it is
// available to custom [Handler]s.
type ErrExtractValue struct {
	Uid  Uid
	Name string
	What string
}

var _ error = ErrExtractValue{}

func (err ErrExtractValue) Error() string {
	return fmt.Sprintf("option %q: cannot extract %s from context", err.Name, err.What)
}

func (ErrExtractValue) isFailure() bool { return true }

// ErrOptionNotFound indicates a lookup by name or uid found nothing.
type ErrOptionNotFound struct {
	Name string
	Uid  Uid
}

var _ error = ErrOptionNotFound{}

func (err ErrOptionNotFound) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("option %q not found", err.Name)
	}
	return fmt.Sprintf("option uid %d not found", err.Uid)
}

func (ErrOptionNotFound) isFailure() bool { return true }

// ErrPosRequired indicates a positional [Option] with Force=true was not
// matched by the end of the parse.
type ErrPosRequired struct {
	Name string
	Uid  Uid
}

var _ error = ErrPosRequired{}

func (err ErrPosRequired) Error() string {
	return fmt.Sprintf("positional argument %q is required", err.Name)
}

func (ErrPosRequired) isFailure() bool { return true }

// ErrOptRequired indicates a valued/boolean [Option] with Force=true was
// not matched by the end of the parse.
type ErrOptRequired struct {
	Name string
	Uid  Uid
	Hint string
}

var _ error = ErrOptRequired{}

func (err ErrOptRequired) Error() string {
	if err.Hint != "" {
		return fmt.Sprintf("option %q is required: %s", err.Name, err.Hint)
	}
	return fmt.Sprintf("option %q is required", err.Name)
}

func (ErrOptRequired) isFailure() bool { return true }

// ErrCmdRequired indicates no Cmd-style [Option] was matched even though
// one or more were declared.
type ErrCmdRequired struct{}

var _ error = ErrCmdRequired{}

func (ErrCmdRequired) Error() string { return "a command is required" }

func (ErrCmdRequired) isFailure() bool { return true }

// ErrArgMalformed is a fatal error raised when a token cannot be
// classified at all (e.g., a `/`-negated valued option).
type ErrArgMalformed struct {
	Token string
	Why   string
}

var _ error = ErrArgMalformed{}

func (err ErrArgMalformed) Error() string {
	return fmt.Sprintf("malformed argument %q: %s", err.Token, err.Why)
}

// ErrIndexParse is a fatal error raised when an [Index] specification is
// internally inconsistent (e.g., a Range with End <= Start).
type ErrIndexParse struct {
	Why string
}

var _ error = ErrIndexParse{}

func (err ErrIndexParse) Error() string { return fmt.Sprintf("invalid index specification: %s", err.Why) }

// ErrCreateOption is a fatal error raised by a [Ctor] that cannot build an
// [*Option] out of a [Config] (e.g., an unknown ctor id, or a groupable
// option whose name is not a single byte).
type ErrCreateOption struct {
	CtorID string
	Why    string
}

var _ error = ErrCreateOption{}

func (err ErrCreateOption) Error() string {
	return fmt.Sprintf("cannot create option with ctor %q: %s", err.CtorID, err.Why)
}

// ErrAmbiguousPrefix indicates that the same literal prefix appears more
// than once in a list passed to [*OptionSet.SetPrefixes].
type ErrAmbiguousPrefix struct {
	Prefix string
}

var _ error = ErrAmbiguousPrefix{}

func (err ErrAmbiguousPrefix) Error() string {
	return fmt.Sprintf("prefix %q is listed more than once", err.Prefix)
}

// ErrDuplicateName indicates that one option's [Config] lists the same
// alias twice. Two distinct options may share a name; name-based lookup
// then returns the first one inserted.
type ErrDuplicateName struct {
	Name string
}

var _ error = ErrDuplicateName{}

func (err ErrDuplicateName) Error() string {
	return fmt.Sprintf("multiple options with %q name", err.Name)
}

// ErrNoParserMatched is a fatal error raised by [ForwardPolicy] (strict
// mode) when a token classifies as an option but no declared [*Option]
// matches it in any attempted [Style].
type ErrNoParserMatched struct {
	Token string
}

var _ error = ErrNoParserMatched{}

func (err ErrNoParserMatched) Error() string { return fmt.Sprintf("unrecognized option: %s", err.Token) }

// ErrUnexpectedPos reports a non-option argument that no declared Cmd or
// Pos option accepted at its position. It is a fatal-kind error, but the
// policies do not return it: they record it on [RunningCtx].Failures and
// keep the argument as NOA remainder.
type ErrUnexpectedPos struct {
	Value string
	Pos   int
}

var _ error = ErrUnexpectedPos{}

func (err ErrUnexpectedPos) Error() string {
	return fmt.Sprintf("unexpected positional argument %q at position %d", err.Value, err.Pos)
}
