//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the per-match invocation context and the policy-action
// side channel the Stop sentinel raises. The per-parse identity stamp
// uses github.com/google/uuid, the same way the wider example pack
// stamps correlation ids, so a handler can correlate invocations across
// a two-phase PrePolicy+ForwardPolicy chain.
//

package optparse

import "github.com/google/uuid"

// PolicyAction is a side-channel signal a [RawParser] can raise through a
// [Ctx] to influence the driver beyond "parsed value" or "error". The
// only built-in producer is [StopParser], which sets PolicyActionStop on
// matching the literal "--" token.
type PolicyAction int

// These constants define the allowed [PolicyAction] values.
const (
	// PolicyActionNone signals no special driver behavior.
	PolicyActionNone PolicyAction = iota

	// PolicyActionStop signals that all subsequent tokens, regardless
	// of prefix, should be diverted straight to the NOA list.
	PolicyActionStop
)

// Ctx is the per-match invocation context passed to handlers.
type Ctx struct {
	// Uid is the uid of the option this context concerns.
	Uid Uid

	// NameMatched is the option name (or alias) the token actually used.
	NameMatched string

	// StyleMatched is the [Style] under which the match happened.
	StyleMatched Style

	// RawValue is the raw argument fragment captured for this match, if
	// the style consumes one.
	RawValue *string

	// Index is the 1-based non-option position of this match, valid
	// only for Cmd/Pos-style matches (zero otherwise).
	Index int

	// Total is the number of non-option arguments in the parse, valid
	// alongside Index.
	Total int

	// FullArgs is a reference to the full input argument slice.
	FullArgs []string

	// Action is the option's configured [Action].
	Action Action

	// PolicyAction is set by a [RawParser] (e.g. [StopParser]) to
	// signal the driver.
	PolicyAction PolicyAction

	// Negated is true when the token used a `/`-negated prefix.
	Negated bool
}

// RunningCtx accumulates cross-token parse state: exit flags and failure
// records. A handler may read and mutate it; it survives after Parse
// returns so a caller can inspect what happened even on error.
type RunningCtx struct {
	// Failures collects, in the order they happened, the errors a policy
	// tolerated instead of returning: an [ErrUnexpectedPos] for each
	// non-option argument no Cmd/Pos option claimed, handler failures
	// under [PrePolicy] and during [DelayPolicy]'s replay, and the
	// opt/cmd/pos check failures under [PrePolicy]. A failure that only
	// makes one [Style] attempt fall through to the next is not recorded.
	Failures []error

	// Stopped is true once a [PolicyActionStop] has been observed.
	Stopped bool

	// SessionID uniquely identifies one Parse invocation, letting a
	// handler correlate state across a [Parser.ParseChained] pass.
	SessionID uuid.UUID
}

// NewRunningCtx returns a fresh [*RunningCtx] stamped with a new session
// id.
func NewRunningCtx() *RunningCtx {
	return &RunningCtx{SessionID: uuid.New()}
}

// RecordFailure appends err to Failures.
func (rc *RunningCtx) RecordFailure(err error) {
	rc.Failures = append(rc.Failures, err)
}

// Services is a process-wide (per-parse) [TypeMap] storing user state
// handlers can access, mutated only through the exclusive borrow the
// driver hands to each handler call.
type Services struct {
	tm *TypeMap
}

// NewServices returns an empty [*Services].
func NewServices() *Services {
	return &Services{tm: NewTypeMap()}
}

// ServicesInsert stores v, replacing any previous value of type T.
func ServicesInsert[T any](sv *Services, v T) {
	TypeMapInsert(sv.tm, v)
}

// ServicesGet returns the stored value of type T, if any.
func ServicesGet[T any](sv *Services) (T, bool) {
	return TypeMapGet[T](sv.tm)
}

// ServicesGetMut returns a mutable pointer to the stored value of type T,
// if any.
func ServicesGetMut[T any](sv *Services) (*T, bool) {
	return TypeMapGetMut[T](sv.tm)
}

// ServicesEntry returns a mutable pointer to the stored value of type T,
// initializing it with init() when absent.
func ServicesEntry[T any](sv *Services, init func() T) *T {
	return TypeMapEntry(sv.tm, init)
}
