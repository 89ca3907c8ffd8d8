//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the shared matcher contract every match-policy shape
// implements. original_source/aopt/src/arg models "guess" strategies as
// a trait with match/undo/filter methods over an uopt; this file states
// that contract as a Go interface and the remaining match_*.go files as
// its three concrete shapes (SingleOpt, MultiOpt, SingleNonOpt).
//

package optparse

// matchConsumer is invoked once per option a [matchPolicy] matches,
// carrying the raw fragment (if any) that should flow into the option's
// [ValuePipeline]. Returning an error aborts that one option's match (the
// policy reverts its own bookkeeping and, for [failer] errors, lets the
// caller try the next [Style] or the next candidate).
type matchConsumer func(opt *Option, raw *string) error

// matchPolicy is the shared contract SingleOpt/MultiOpt/SingleNonOpt
// each implement: attempt a match against every candidate in set
// honoring overload, report whether anything matched, and support
// reverting a partial match (matchPolicy.undo) when a caller upstream
// (e.g. a MultiOpt combining several attempts) decides the whole attempt
// must be abandoned.
type matchPolicy interface {
	// matched reports whether the last match attempt recorded at least
	// one successful match.
	matched() bool

	// reset clears matched-state bookkeeping without touching the
	// OptionSet, so the same matchPolicy value can be reused for the
	// next token.
	reset()

	// match attempts the policy's shape against os, calling consume for
	// every option it matches. overload, when true, keeps matching
	// further candidates instead of stopping at the first, allowing more
	// than one Option to claim the same token (e.g. two aliases of the
	// same logical flag).
	match(os *OptionSet, overload bool, consume matchConsumer) (bool, error)

	// undo reverts the matched flag (and internal bookkeeping) for
	// every option this policy matched, without touching the options'
	// stored values (a [Storer] has already run and is not undone; the
	// unmatched-required-option check must not see a false positive).
	undo(os *OptionSet)
}

var (
	_ matchPolicy = (*SingleOpt)(nil)
	_ matchPolicy = (*MultiOpt)(nil)
	_ matchPolicy = (*SingleNonOpt)(nil)
)
