//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the same parse skeleton as ForwardPolicy, but with every
// step wrapped through ignore-failure-only error handling, returning the
// set of unmatched NOAs.
//

package optparse

// PrePolicy runs the same skeleton as [*ForwardPolicy] but never aborts
// on a recoverable failure: fatal errors still abort, while handler and
// check failures are recorded on [*RunningCtx.Failures] and parsing
// continues. It
// returns the NOA remainder no declared Pos/Cmd option claimed, for a
// second pass (typically a [*ForwardPolicy] parsing a subcommand's own
// flags; see [*Parser.ParseChained]).
type PrePolicy struct {
	// Overload allows more than one option to claim the same token.
	Overload bool

	// Styles restricts which styles are attempted, in the given order.
	Styles []Style
}

var _ policyRunner = (*PrePolicy)(nil)

func (p *PrePolicy) runPolicy(args []string, os *OptionSet, as *ArgStream, hr *HandlerRegistry, sv *Services, rc *RunningCtx, doReset bool) ([]string, error) {
	if doReset {
		os.resetAll()
	}
	if err := preCheck(os); err != nil {
		return nil, err
	}

	invoke := func(ctx *Ctx) error {
		if err := hr.Invoke(ctx, os, sv, rc); err != nil {
			if !isFailure(err) {
				return err
			}
			rc.RecordFailure(err)
		}
		return nil
	}

	noa, err := walk(args, os, as, rc, false, p.Overload, p.Styles, invoke)
	if err != nil {
		return nil, err
	}

	for _, e := range checkOpt(os) {
		rc.RecordFailure(e)
	}

	remainder, err := processNoaList(args, os, rc, noa, invoke)
	if err != nil {
		return nil, err
	}

	for _, e := range checkCmd(os) {
		rc.RecordFailure(e)
	}
	for _, e := range checkPos(os) {
		rc.RecordFailure(e)
	}

	if err := invokeMain(args, os, invoke); err != nil {
		return nil, err
	}

	return remainder, nil
}
