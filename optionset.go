//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/parser.go
// (the Options []*Option + AddOption/AddOptionWithArgumentNone family).
//

package optparse

import (
	"sort"

	"github.com/bassosimone/runtimex"
)

// OptionSet is an ordered collection of options with uid assignment,
// lookup by uid/name, a [Ctor] registry, and a pluggable prefix list.
type OptionSet struct {
	options  []*Option
	byUid    map[Uid]*Option
	nextUid  Uid
	ctors    map[string]Ctor
	prefixes []string
}

// defaultPrefixes are the GNU-ish recognized prefixes, longest-first. A
// "/" prefix (Windows-style) is not added by default on this
// platform-agnostic core; callers targeting Windows conventions can add
// it via [*OptionSet.SetPrefixes].
var defaultPrefixes = []string{"--/", "--", "-/", "-"}

// NewOptionSet returns an [*OptionSet] with the built-in [Ctor]s
// registered and the default prefix list configured.
func NewOptionSet() *OptionSet {
	os := &OptionSet{
		byUid:    make(map[Uid]*Option),
		ctors:    make(map[string]Ctor),
		prefixes: append([]string(nil), defaultPrefixes...),
	}
	registerBuiltinCtors(os)
	return os
}

// RegisterCtor adds or replaces the [Ctor] registered under id.
func (os *OptionSet) RegisterCtor(id string, ctor Ctor) {
	os.ctors[id] = ctor
}

// SetPrefixes replaces the recognized prefix list. Prefixes are sorted
// longest-first internally regardless of the order passed in. A
// duplicate literal prefix is an [ErrAmbiguousPrefix].
func (os *OptionSet) SetPrefixes(prefixes []string) error {
	seen := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		if seen[p] {
			return ErrAmbiguousPrefix{Prefix: p}
		}
		seen[p] = true
	}
	cp := append([]string(nil), prefixes...)
	sort.SliceStable(cp, func(i, j int) bool { return len(cp[i]) > len(cp[j]) })
	os.prefixes = cp
	return nil
}

// Prefixes returns the current prefix list, longest-first.
func (os *OptionSet) Prefixes() []string { return os.prefixes }

// AddOption materializes an [*Option] from cfg via the registered [Ctor]
// matching cfg.CtorID, inserts it, and returns it.
func (os *OptionSet) AddOption(cfg Config) (*Option, error) {
	ctor, ok := os.ctors[cfg.CtorID]
	if !ok {
		return nil, ErrCreateOption{CtorID: cfg.CtorID, Why: "no ctor registered under this id"}
	}
	opt, err := ctor(cfg)
	if err != nil {
		return nil, err
	}
	os.insert(opt)
	return opt, nil
}

// insert assigns the next uid to opt and appends it to the set.
func (os *OptionSet) insert(opt *Option) {
	os.nextUid++
	opt.uid = os.nextUid
	_, collision := os.byUid[opt.uid]
	runtimex.Assert(!collision)
	os.options = append(os.options, opt)
	os.byUid[opt.uid] = opt
}

// Options returns every option in insertion order.
func (os *OptionSet) Options() []*Option { return os.options }

// Get returns the option with the given uid, if any.
func (os *OptionSet) Get(uid Uid) (*Option, bool) {
	opt, ok := os.byUid[uid]
	return opt, ok
}

// FindOpt resolves name against every option's Name first, then its
// Aliases, in insertion order; the first match wins.
func (os *OptionSet) FindOpt(name string) (*Option, bool) {
	for _, opt := range os.options {
		if opt.Name == name {
			return opt, true
		}
	}
	for _, opt := range os.options {
		for _, a := range opt.Aliases {
			if a.Name == name {
				return opt, true
			}
		}
	}
	return nil, false
}

// FindUid resolves name to a uid the same way [*OptionSet.FindOpt] does.
func (os *OptionSet) FindUid(name string) (Uid, bool) {
	opt, ok := os.FindOpt(name)
	if !ok {
		return 0, false
	}
	return opt.uid, true
}

// resetAll clears every option's matched flag and re-runs its
// initializer; called at the start of each parse.
func (os *OptionSet) resetAll() {
	for _, opt := range os.options {
		opt.reset()
	}
}

// cmdOptions returns every Cmd-style option, in insertion order.
func (os *OptionSet) cmdOptions() []*Option {
	var out []*Option
	for _, opt := range os.options {
		if opt.Styles.Has(StyleCmd) {
			out = append(out, opt)
		}
	}
	return out
}
