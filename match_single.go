//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: matching one option against a classified token by name,
// alias, and position. Adapted from the per-candidate scan in
// https://github.com/bassosimone/flagparser/blob/main/doparse.go (walking
// every *Option looking for a name match), generalized to the richer
// identity/position gate [Option.matches] implements.
//

package optparse

// SingleOpt attempts to match one classified option token (name, prefix,
// optional inline raw value, one [Style]) against every candidate in an
// [*OptionSet], honoring each option's identity/position gates.
type SingleOpt struct {
	Prefix  string
	Name    string
	Style   Style
	Raw     *string
	Pos     int
	Total   int
	Negated bool

	matchedUids []Uid
}

// NewSingleOpt builds a [*SingleOpt] ready to [SingleOpt.match] against an
// [*OptionSet].
func NewSingleOpt(prefix, name string, style Style, raw *string, pos, total int, negated bool) *SingleOpt {
	return &SingleOpt{Prefix: prefix, Name: name, Style: style, Raw: raw, Pos: pos, Total: total, Negated: negated}
}

func (m *SingleOpt) matched() bool { return len(m.matchedUids) > 0 }

func (m *SingleOpt) reset() { m.matchedUids = nil }

// filter reports whether opt cannot possibly be attempted under m.Style,
// short-circuiting the identity/position gates.
func (m *SingleOpt) filter(opt *Option) bool { return !opt.Styles.Has(m.Style) }

// match walks every option in os in insertion order, attempting each one
// that m.filter does not exclude. A style that consumes an argument with
// no raw value present yields [ErrMissingValue] immediately; any other
// consume error clears that option's matched flag and, if it is a
// [failer], lets the scan continue to the next candidate.
func (m *SingleOpt) match(os *OptionSet, overload bool, consume matchConsumer) (bool, error) {
	for _, opt := range os.Options() {
		if m.filter(opt) {
			continue
		}
		if !opt.matches(m.Prefix, m.Name, m.Pos, m.Total) {
			continue
		}
		if m.Style.consumesArgument() && m.Raw == nil {
			return false, ErrMissingValue{Uid: opt.Uid(), Name: opt.Name}
		}

		opt.matched = true
		if err := consume(opt, m.Raw); err != nil {
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

func (m *SingleOpt) undo(os *OptionSet) {
	for _, uid := range m.matchedUids {
		if opt, ok := os.Get(uid); ok {
			opt.matched = false
		}
	}
	m.matchedUids = nil
}
