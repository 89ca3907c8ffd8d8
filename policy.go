//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the top-level parse driver (Forward/Pre/Delay policies).
// Adapted from:
// https://github.com/bassosimone/flagparser/blob/main/doparse.go (the
// token-by-token "classify, try each option kind in order, consume the
// next token when required" loop) generalized from flagparser's flat
// option-type switch to an ordered [Style] attempt list, plus the
// NOA/Cmd/Pos/Main passes flagparser has no analog for.
//

package optparse

import (
	"errors"

	"github.com/bassosimone/runtimex"
)

// policyRunner is the seam [*Parser] drives; [*ForwardPolicy],
// [*PrePolicy], and [*DelayPolicy] each implement it, sharing the helper
// functions below for the parts of the skeleton (reset, pre-check,
// per-token style attempts, NOA walk, post-parse checks) that do not
// vary between them. They differ only in strictness and in when option
// handlers run.
type policyRunner interface {
	// doReset controls whether the OptionSet is reset (matched flags
	// cleared, initializers re-run) before this pass. [*Parser.Parse]
	// always passes true; [*Parser.ParseChained] passes false for its
	// second (ForwardPolicy) pass so the first (PrePolicy) pass's
	// matches and stored values survive into it.
	runPolicy(args []string, os *OptionSet, as *ArgStream, hr *HandlerRegistry, sv *Services, rc *RunningCtx, doReset bool) ([]string, error)
}

// invokeFunc is called once a [*Ctx] has been built for a match. Forward
// and Pre invoke the [*HandlerRegistry] immediately; Delay instead
// queues the context for later replay (see policy_delay.go).
type invokeFunc func(ctx *Ctx) error

// buildMatcher returns the [matchPolicy] attempting style against tok,
// and whether a successful match consumes the following stream token as
// its raw value (StyleArgument with no inline value, e.g. `--output
// FILE`). A nil policy means style does not apply to tok at all (e.g.
// Boolean never applies once an inline `=value` is present).
func buildMatcher(tok ClassifiedToken, style Style, as *ArgStream) (matchPolicy, bool) {
	if style != StyleArgument && tok.InlineValue != nil {
		return nil, false
	}
	switch style {
	case StyleArgument:
		raw := tok.InlineValue
		consumesNext := false
		if raw == nil {
			if peek, ok := as.Peek(); ok && peek.Kind != TokenOption {
				v := peek.Raw
				raw = &v
				consumesNext = true
			}
		}
		return NewSingleOpt(tok.Prefix, tok.Name, StyleArgument, raw, 0, 0, tok.Negated), consumesNext
	case StyleEmbeddedValue:
		return NewEmbeddedShortMultiOpt(tok.Prefix, tok.Name, 0, 0), false
	case StyleEmbeddedValuePlus:
		return NewEmbeddedLongMultiOpt(tok.Prefix, tok.Name, 0, 0), false
	case StyleCombined:
		return NewCombinedMultiOpt(tok.Prefix, tok.Name, 0, 0), false
	case StyleBoolean:
		return NewSingleOpt(tok.Prefix, tok.Name, StyleBoolean, nil, 0, 0, tok.Negated), false
	case StyleFlag:
		return NewSingleOpt(tok.Prefix, tok.Name, StyleFlag, nil, 0, 0, tok.Negated), false
	default:
		return nil, false
	}
}

// attemptStyles tries order (styleAttemptOrder, or a caller-restricted
// subset) against tok, stopping at the first style whose match succeeds.
// A [failer] error from one style lets the next style try; any other
// error aborts immediately.
func attemptStyles(args []string, os *OptionSet, as *ArgStream, tok ClassifiedToken, overload bool, restrict []Style, invoke invokeFunc) (bool, error) {
	order := styleAttemptOrder
	if restrict != nil {
		order = restrict
	}
	for _, style := range order {
		mp, consumesNext := buildMatcher(tok, style, as)
		if mp == nil {
			continue
		}
		matched, err := mp.match(os, overload, func(opt *Option, raw *string) error {
			ctx := &Ctx{
				Uid: opt.Uid(), NameMatched: tok.Name, StyleMatched: style,
				RawValue: raw, FullArgs: args, Action: opt.Action, Negated: tok.Negated,
			}
			return invoke(ctx)
		})
		if err != nil {
			if isFailure(err) {
				continue
			}
			return false, err
		}
		if matched {
			if consumesNext {
				as.Advance()
			}
			return true, nil
		}
	}
	return false, nil
}

// walk scans as token by token. A literal "--" non-option token (see
// argstream.go's classify) sets rc.Stopped, after which every remaining
// token is diverted to the NOA list regardless of its own shape. When
// strict, an option-classified token matching no style aborts with
// [ErrNoParserMatched]; otherwise it is diverted to the NOA list
// instead.
func walk(args []string, os *OptionSet, as *ArgStream, rc *RunningCtx, strict, overload bool, restrict []Style, invoke invokeFunc) ([]string, error) {
	var noa []string
	for !as.Empty() {
		tok, _ := as.Current()

		if rc.Stopped {
			noa = append(noa, tok.Raw)
			as.Advance()
			continue
		}

		if tok.Kind == TokenNonOption {
			if tok.Raw == "--" {
				rc.Stopped = true
				as.Advance()
				continue
			}
			noa = append(noa, tok.Raw)
			as.Advance()
			continue
		}

		if tok.Negated && tok.InlineValue != nil {
			return noa, ErrArgMalformed{Token: tok.Raw, Why: "a /-negated option cannot also carry an inline value"}
		}

		matched, err := attemptStyles(args, os, as, tok, overload, restrict, func(ctx *Ctx) error {
			err := invoke(ctx)
			if err == nil && ctx.PolicyAction == PolicyActionStop {
				rc.Stopped = true
			}
			return err
		})
		if err != nil {
			return noa, err
		}
		if !matched {
			if strict {
				return noa, ErrNoParserMatched{Token: tok.Raw}
			}
			noa = append(noa, tok.Raw)
		}
		as.Advance()
	}
	// Every iteration above either advances the cursor or returns, so
	// the stream must be drained by the time the loop exits normally
	// (mirrors flagparser/parser.go's runtimex.Assert(input.Empty())
	// after its own token-consuming loop).
	runtimex.Assert(as.Empty())
	return noa, nil
}

// noaConsumer adapts invoke into the matchConsumer shape
// [*SingleNonOpt.match] expects.
func noaConsumer(args []string, style Style, pos, total int, invoke invokeFunc) matchConsumer {
	return func(opt *Option, raw *string) error {
		ctx := &Ctx{
			Uid: opt.Uid(), NameMatched: opt.Name, StyleMatched: style,
			RawValue: raw, Index: pos, Total: total, FullArgs: args, Action: opt.Action,
		}
		return invoke(ctx)
	}
}

// processNoaList is step 5: the first element additionally attempts
// [StyleCmd]; every element attempts [StylePos] at its 1-based position.
// Elements no declared option claims are recorded as (non-fatal)
// failures and returned as the remainder, which [*PrePolicy] hands back
// to the caller for a second parsing pass.
func processNoaList(args []string, os *OptionSet, rc *RunningCtx, noa []string, invoke invokeFunc) ([]string, error) {
	total := len(noa)
	var remainder []string
	for i, raw := range noa {
		pos := i + 1
		matchedThis := false

		if pos == 1 {
			cm := NewSingleNonOpt(StyleCmd, raw, pos, total)
			matched, err := cm.match(os, false, noaConsumer(args, StyleCmd, pos, total, invoke))
			if err != nil {
				return remainder, err
			}
			matchedThis = matched
		}

		pm := NewSingleNonOpt(StylePos, raw, pos, total)
		matched, err := pm.match(os, false, noaConsumer(args, StylePos, pos, total, invoke))
		if err != nil {
			return remainder, err
		}
		if matched {
			matchedThis = true
		}

		if !matchedThis {
			rc.RecordFailure(ErrUnexpectedPos{Value: raw, Pos: pos})
			remainder = append(remainder, raw)
		}
	}
	return remainder, nil
}

// invokeMain is step 7: every Main-style option always matches, once,
// with a synthetic context.
func invokeMain(args []string, os *OptionSet, invoke invokeFunc) error {
	for _, opt := range os.Options() {
		if !opt.Styles.Has(StyleMain) {
			continue
		}
		opt.matched = true
		ctx := &Ctx{Uid: opt.Uid(), NameMatched: opt.Name, StyleMatched: StyleMain, FullArgs: args, Action: opt.Action}
		if err := invoke(ctx); err != nil {
			if !isFailure(err) {
				return err
			}
		}
	}
	return nil
}

// joinChecks is a small helper folding a Checker pass's []error into one
// error (or nil), using the standard library's multi-error join rather
// than hand-rolling a custom aggregate type.
func joinChecks(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
