//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/parser.go
// (the Parser struct gluing together an Options slice, a Config, and the
// flagscanner.Scanner construction). Generalized to wire an OptionSet, a
// HandlerRegistry, shared Services, and a pluggable [policyRunner]
// instead of a single fixed parse loop.
//

package optparse

import "github.com/bassosimone/optparse/internal/shellsplit"

// Parser is the top-level entry point: an [*OptionSet] plus the
// [*HandlerRegistry] and [*Services] every policy needs, and the
// [policyRunner] implementation (see [*ForwardPolicy], [*PrePolicy],
// [*DelayPolicy]) that drives one [*Parser.Parse] call.
type Parser struct {
	OptionSet *OptionSet
	Handlers  *HandlerRegistry
	Services  *Services
	Policy    policyRunner
}

// NewParser returns a [*Parser] configured with GNU-style defaults: the
// [*OptionSet]'s default longest-first prefix list ("--/", "--", "-/",
// "-"), a [*HandlerRegistry] whose fallback runs each option's
// [*ValuePipeline], fresh [*Services], and [*ForwardPolicy] as the
// default driver.
func NewParser() *Parser {
	return &Parser{
		OptionSet: NewOptionSet(),
		Handlers:  NewHandlerRegistry(),
		Services:  NewServices(),
		Policy:    &ForwardPolicy{},
	}
}

// Parse runs p.Policy over args from scratch (resetting every option's
// match state first). It returns the [*RunningCtx] accumulated during
// the parse (whose Failures records the errors the policy tolerated
// rather than returned), the NOA remainder (non-empty only under [*PrePolicy]), and any fatal
// error.
func (p *Parser) Parse(args []string) (*RunningCtx, []string, error) {
	rc := NewRunningCtx()
	as := NewArgStream(args, p.OptionSet.Prefixes())
	remainder, err := p.Policy.runPolicy(args, p.OptionSet, as, p.Handlers, p.Services, rc, true)
	return rc, remainder, err
}

// ParseLine splits line using POSIX shell-quoting rules (see
// internal/shellsplit) and calls [*Parser.Parse] with the result.
func (p *Parser) ParseLine(line string) (*RunningCtx, []string, error) {
	args, err := shellsplit.Split(line)
	if err != nil {
		return nil, nil, ErrArgMalformed{Token: line, Why: err.Error()}
	}
	return p.Parse(args)
}

// ParseString is an alias for [*Parser.ParseLine].
func (p *Parser) ParseString(line string) (*RunningCtx, []string, error) {
	return p.ParseLine(line)
}

// ParseChained runs a [*PrePolicy] pass over args, then a [*ForwardPolicy]
// pass over the NOA remainder the first pass could not claim — a second
// pass, typically a ForwardPolicy parsing a subcommand's own flags. Both
// passes share the same OptionSet, Handlers, and Services and accumulate
// into the same [*RunningCtx], so SessionID identifies one logical parse
// across both. The second pass does not reset the OptionSet, so the
// first pass's matches and stored values survive into it.
func (p *Parser) ParseChained(args []string) (*RunningCtx, error) {
	rc := NewRunningCtx()

	pre := &PrePolicy{}
	as := NewArgStream(args, p.OptionSet.Prefixes())
	remainder, err := pre.runPolicy(args, p.OptionSet, as, p.Handlers, p.Services, rc, true)
	if err != nil {
		return rc, err
	}

	fwd := &ForwardPolicy{}
	as2 := NewArgStream(remainder, p.OptionSet.Prefixes())
	if _, err := fwd.runPolicy(remainder, p.OptionSet, as2, p.Handlers, p.Services, rc, false); err != nil {
		return rc, err
	}
	return rc, nil
}
