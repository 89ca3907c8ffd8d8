//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the end-of-parse invariant checks (required options,
// positional index coverage, command requirement). No direct flagparser
// analog (flagparser has no force/required concept); the three-pass
// shape and the pre-check are new code built around the Option model.
//

package optparse

// preCheck enforces that no force-required Pos option claims effective
// index 1 when any Cmd-style option is declared: the Cmd keyword
// occupies that slot.
func preCheck(os *OptionSet) error {
	if len(os.cmdOptions()) == 0 {
		return nil
	}
	for _, opt := range os.Options() {
		if !opt.Styles.Has(StylePos) || !opt.Force || opt.IgnoreIndex {
			continue
		}
		if opt.Index.Kind == IndexForward && opt.Index.N == 1 {
			return ErrCreateOption{
				CtorID: opt.TypeName,
				Why:    "a force-required Pos option cannot claim index 1 when a Cmd option is declared",
			}
		}
	}
	return nil
}

// checkOpt is pass 1: every Argument/Boolean/Combined/Flag-style option
// with Force=true must have matched.
func checkOpt(os *OptionSet) []error {
	var errs []error
	for _, opt := range os.Options() {
		if !opt.requiresForceCheck() || !opt.Force || opt.matched {
			continue
		}
		errs = append(errs, ErrOptRequired{Name: opt.Name, Uid: opt.uid, Hint: opt.Hint})
	}
	return errs
}

// checkPos is pass 2: fixed-slot Pos options (Forward/List/closed Range)
// are grouped by slotKey and need at least one match per group unless
// every member has Force=false; floating-slot Pos options (Backward/
// Except/AnyWhere/open Range) are checked individually.
func checkPos(os *OptionSet) []error {
	var errs []error
	groups := make(map[string][]*Option)
	var order []string

	for _, opt := range os.Options() {
		if !opt.Styles.Has(StylePos) {
			continue
		}
		if opt.Index.isFloating() {
			if opt.Force && !opt.matched {
				errs = append(errs, ErrPosRequired{Name: opt.Name, Uid: opt.uid})
			}
			continue
		}
		key, ok := opt.Index.slotKey()
		if !ok {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], opt)
	}

	for _, key := range order {
		members := groups[key]
		anyMatched, anyForced := false, false
		for _, opt := range members {
			anyMatched = anyMatched || opt.matched
			anyForced = anyForced || opt.Force
		}
		if anyForced && !anyMatched {
			errs = append(errs, ErrPosRequired{Name: members[0].Name, Uid: members[0].uid})
		}
	}
	return errs
}

// checkCmd is pass 3: if any Cmd-style option is declared, at least one
// must have matched.
func checkCmd(os *OptionSet) []error {
	cmds := os.cmdOptions()
	if len(cmds) == 0 {
		return nil
	}
	for _, opt := range cmds {
		if opt.matched {
			return nil
		}
	}
	return []error{ErrCmdRequired{}}
}
