//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: matching Cmd/Pos/Main options by style and index alone;
// Cmd additionally compares the declared name against the raw NOA token
// text (there is no prefix to strip). No flagparser analog (flagparser
// has no positional-argument concept); the shape mirrors
// match_single.go's SingleOpt for consistency.
//

package optparse

// SingleNonOpt attempts to match one non-option token (a Cmd keyword or a
// plain positional value) against every Cmd/Pos/Main-style candidate in
// an [*OptionSet].
type SingleNonOpt struct {
	Style Style
	Raw   string
	Pos   int
	Total int

	matchedUids []Uid
}

// NewSingleNonOpt builds a [*SingleNonOpt] ready to [SingleNonOpt.match].
func NewSingleNonOpt(style Style, raw string, pos, total int) *SingleNonOpt {
	return &SingleNonOpt{Style: style, Raw: raw, Pos: pos, Total: total}
}

func (m *SingleNonOpt) matched() bool { return len(m.matchedUids) > 0 }

func (m *SingleNonOpt) reset() { m.matchedUids = nil }

func (m *SingleNonOpt) filter(opt *Option) bool { return !opt.Styles.Has(m.Style) }

// match walks every option in os, attempting each one m.filter does not
// exclude. [StyleCmd] additionally requires opt.Name to equal the raw
// token text (a Cmd keyword is compared literally, not through a prefix);
// Pos/Main rely solely on [Option.indexMatches].
func (m *SingleNonOpt) match(os *OptionSet, overload bool, consume matchConsumer) (bool, error) {
	for _, opt := range os.Options() {
		if m.filter(opt) {
			continue
		}
		if m.Style == StyleCmd && opt.Name != m.Raw {
			continue
		}
		if !opt.indexMatches(m.Pos, m.Total) {
			continue
		}

		raw := m.Raw
		opt.matched = true
		if err := consume(opt, &raw); err != nil {
			opt.matched = false
			if !isFailure(err) {
				return false, err
			}
			continue
		}
		m.matchedUids = append(m.matchedUids, opt.Uid())
		if !overload {
			return true, nil
		}
	}
	return m.matched(), nil
}

func (m *SingleNonOpt) undo(os *OptionSet) {
	for _, uid := range m.matchedUids {
		if opt, ok := os.Get(uid); ok {
			opt.matched = false
		}
	}
	m.matchedUids = nil
}
