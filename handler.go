//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: the per-option user-handler table and its default
// handler. No direct flagparser analog (flagparser has no per-option
// callback, only a decoded []Value slice); the per-uid map plus fallback
// follows the same "plain map, no interface hierarchy" shape
// flagparser/config.go uses for its prefix->kind lookup.
//

package optparse

// Handler is invoked once an option has matched a token. It may read and
// mutate the OptionSet (including the matched option's own pipeline, via
// os.Get(ctx.Uid)), the shared Services, and the per-parse RunningCtx.
//
// Rather than a declarative extractor trait selecting which Ctx fields a
// handler needs, a Go Handler simply reads the Ctx fields it cares about
// directly, and records any typed result by calling the AnyValue-family
// functions on the matched option's Accessor itself. A trait-based
// extractor would not give a Go caller anything that field access
// doesn't already.
type Handler func(ctx *Ctx, os *OptionSet, sv *Services, rc *RunningCtx) error

// HandlerRegistry maps an option's uid to a custom [Handler], applying a
// fallback to every uid with none registered.
type HandlerRegistry struct {
	handlers map[Uid]Handler
	fallback Handler
}

// NewHandlerRegistry returns an empty [*HandlerRegistry] whose fallback
// runs the matched option's [*ValuePipeline] Storer stage: the default
// behavior when no user handler is registered.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[Uid]Handler), fallback: defaultHandler}
}

// Register installs handler for uid, replacing any previous one.
func (hr *HandlerRegistry) Register(uid Uid, handler Handler) {
	hr.handlers[uid] = handler
}

// SetFallback replaces the registry's fallback handler.
func (hr *HandlerRegistry) SetFallback(handler Handler) {
	hr.fallback = handler
}

// Invoke resolves and runs the handler registered for ctx.Uid, or the
// fallback when none is registered.
func (hr *HandlerRegistry) Invoke(ctx *Ctx, os *OptionSet, sv *Services, rc *RunningCtx) error {
	h, ok := hr.handlers[ctx.Uid]
	if !ok {
		h = hr.fallback
	}
	if h == nil {
		return nil
	}
	return h(ctx, os, sv, rc)
}

// defaultHandler runs the matched option's ValuePipeline Storer stage
// with the context's captured raw value and action.
func defaultHandler(ctx *Ctx, os *OptionSet, sv *Services, rc *RunningCtx) error {
	opt, ok := os.Get(ctx.Uid)
	if !ok {
		return ErrOptionNotFound{Uid: ctx.Uid}
	}
	return opt.pipeline.store(ctx.Action, ctx.RawValue, ctx)
}
