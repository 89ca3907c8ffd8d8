//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: a parse driver that, during the walk, only captures
// contexts for matched options without invoking handlers. After all
// Cmd/Pos/Main side-effects have run, it replays the captured contexts,
// except for a configurable list of option names whose handlers run
// eagerly even under this policy.
//

package optparse

// DelayPolicy defers option-handler invocation (and therefore the
// default handler's ValuePipeline store) until after every Cmd/Pos/Main
// side effect has completed, so handlers can see the full parsed state
// — useful for cross-option validation. NoDelay names opt out, running
// eagerly like [*ForwardPolicy] instead.
type DelayPolicy struct {
	// Overload allows more than one option to claim the same token.
	Overload bool

	// Styles restricts which styles are attempted, in the given order.
	Styles []Style

	// NoDelay lists option names whose handlers run eagerly during the
	// walk instead of being deferred to the replay pass.
	NoDelay []string
}

var _ policyRunner = (*DelayPolicy)(nil)

func (p *DelayPolicy) runPolicy(args []string, os *OptionSet, as *ArgStream, hr *HandlerRegistry, sv *Services, rc *RunningCtx, doReset bool) ([]string, error) {
	if doReset {
		os.resetAll()
	}
	if err := preCheck(os); err != nil {
		return nil, err
	}

	noDelay := make(map[string]bool, len(p.NoDelay))
	for _, n := range p.NoDelay {
		noDelay[n] = true
	}

	eager := func(ctx *Ctx) error { return hr.Invoke(ctx, os, sv, rc) }

	var captured deque[*Ctx]
	deferring := func(ctx *Ctx) error {
		if opt, ok := os.Get(ctx.Uid); ok && noDelay[opt.Name] {
			return eager(ctx)
		}
		captured.PushBack(ctx)
		return nil
	}

	noa, err := walk(args, os, as, rc, true, p.Overload, p.Styles, deferring)
	if err != nil {
		return nil, err
	}

	if err := joinChecks(checkOpt(os)); err != nil {
		return nil, err
	}

	if _, err := processNoaList(args, os, rc, noa, eager); err != nil {
		return nil, err
	}

	if err := joinChecks(checkCmd(os)); err != nil {
		return nil, err
	}
	if err := joinChecks(checkPos(os)); err != nil {
		return nil, err
	}

	if err := invokeMain(args, os, eager); err != nil {
		return nil, err
	}

	for !captured.Empty() {
		ctx, _ := captured.Front()
		captured.PopFront()
		if err := hr.Invoke(ctx, os, sv, rc); err != nil {
			if !isFailure(err) {
				return nil, err
			}
			rc.RecordFailure(err)
		}
	}

	return nil, nil
}
