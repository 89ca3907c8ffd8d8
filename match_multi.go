//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: a match policy that wraps a list of SingleOpts — one per
// grouped letter for Combined, one per candidate split position for
// EmbeddedValue/EmbeddedValuePlus. No direct flagparser analog
// (flagparser has no combined short-option groups); the all-or-nothing
// vs. first-match-wins split below follows each style's own semantics
// ("all letters of a -abc group must resolve, or none do" vs. "the
// longest name=value split that matches an option wins").
//

package optparse

// multiMode selects how [MultiOpt] combines its children's outcomes.
type multiMode int

const (
	// multiAll requires every child to match; any miss (or failure)
	// undoes whichever children already matched. Used for StyleCombined
	// groups, where `-abc` must resolve to three options or none.
	multiAll multiMode = iota

	// multiFirst tries children in order and stops at the first full
	// match, undoing nothing from children that were merely attempted
	// (a [SingleOpt] only records a match on success). Used for
	// EmbeddedValue/EmbeddedValuePlus split candidates.
	multiFirst
)

// MultiOpt combines several [*SingleOpt] attempts into one match.
type MultiOpt struct {
	children []*SingleOpt
	mode     multiMode
}

// NewCombinedMultiOpt splits name into one-byte [*SingleOpt] candidates
// under [StyleCombined], e.g. `-abc` into `-a`, `-b`, `-c`.
func NewCombinedMultiOpt(prefix, name string, pos, total int) *MultiOpt {
	children := make([]*SingleOpt, 0, len(name))
	for i := 0; i < len(name); i++ {
		children = append(children, NewSingleOpt(prefix, name[i:i+1], StyleCombined, nil, pos, total, false))
	}
	return &MultiOpt{children: children, mode: multiAll}
}

// NewEmbeddedShortMultiOpt splits name at its first byte under
// [StyleEmbeddedValue], e.g. `-ival` into option `-i` with raw `val`.
// Names shorter than two bytes never produce a candidate.
func NewEmbeddedShortMultiOpt(prefix, name string, pos, total int) *MultiOpt {
	if len(name) < 2 {
		return &MultiOpt{mode: multiFirst}
	}
	raw := name[1:]
	child := NewSingleOpt(prefix, name[:1], StyleEmbeddedValue, &raw, pos, total, false)
	return &MultiOpt{children: []*SingleOpt{child}, mode: multiFirst}
}

// NewEmbeddedLongMultiOpt tries every split position of name (longest
// option name first) under [StyleEmbeddedValuePlus], e.g. `--outputfile`
// into candidates `--outputfil`+`e`, `--outputfi`+`le`, ..., `--o`+`utputfile`.
func NewEmbeddedLongMultiOpt(prefix, name string, pos, total int) *MultiOpt {
	var children []*SingleOpt
	for split := len(name) - 1; split >= 1; split-- {
		raw := name[split:]
		children = append(children, NewSingleOpt(prefix, name[:split], StyleEmbeddedValuePlus, &raw, pos, total, false))
	}
	return &MultiOpt{children: children, mode: multiFirst}
}

func (m *MultiOpt) matched() bool {
	for _, c := range m.children {
		if c.matched() {
			return true
		}
	}
	return false
}

func (m *MultiOpt) reset() {
	for _, c := range m.children {
		c.reset()
	}
}

func (m *MultiOpt) match(os *OptionSet, overload bool, consume matchConsumer) (bool, error) {
	if len(m.children) == 0 {
		return false, nil
	}
	switch m.mode {
	case multiAll:
		for _, c := range m.children {
			ok, err := c.match(os, overload, consume)
			if err != nil {
				m.undo(os)
				return false, err
			}
			if !ok {
				m.undo(os)
				return false, nil
			}
		}
		return true, nil
	default: // multiFirst
		for _, c := range m.children {
			ok, err := c.match(os, overload, consume)
			if err != nil {
				if isFailure(err) {
					continue
				}
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

func (m *MultiOpt) undo(os *OptionSet) {
	for _, c := range m.children {
		c.undo(os)
	}
}
