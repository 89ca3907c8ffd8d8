//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the strict-by-default top-level parse driver.
//

package optparse

// ForwardPolicy invokes option handlers as soon as a token matches; this
// is the default policy and matches conventional getopt-like behavior.
// An unrecognized option token is fatal.
type ForwardPolicy struct {
	// Overload allows more than one option to claim the same token.
	Overload bool

	// Styles restricts which styles are attempted, in the given order.
	// A nil slice attempts the default order.
	Styles []Style
}

var _ policyRunner = (*ForwardPolicy)(nil)

func (p *ForwardPolicy) runPolicy(args []string, os *OptionSet, as *ArgStream, hr *HandlerRegistry, sv *Services, rc *RunningCtx, doReset bool) ([]string, error) {
	if doReset {
		os.resetAll()
	}
	if err := preCheck(os); err != nil {
		return nil, err
	}

	invoke := func(ctx *Ctx) error { return hr.Invoke(ctx, os, sv, rc) }

	noa, err := walk(args, os, as, rc, true, p.Overload, p.Styles, invoke)
	if err != nil {
		return nil, err
	}

	if err := joinChecks(checkOpt(os)); err != nil {
		return nil, err
	}

	if _, err := processNoaList(args, os, rc, noa, invoke); err != nil {
		return nil, err
	}

	if err := joinChecks(checkCmd(os)); err != nil {
		return nil, err
	}
	if err := joinChecks(checkPos(os)); err != nil {
		return nil, err
	}

	if err := invokeMain(args, os, invoke); err != nil {
		return nil, err
	}

	return nil, nil
}
