//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config.go
//
// flagparser's config.go validates a flat []*Option slice and builds a
// prefix->kind map. Here the same "config that's computed once and
// handed the raw Option list" idea becomes a [Ctor] registry plus a
// [Config] struct: a [Ctor] turns a [Config] into an [*Option], selected
// by a short type tag (ctor_id).
//

package optparse

// Config is the configuration surface consumed by a [Ctor]: name,
// aliases, hint, help, type tag, and optional overrides for the values
// the [InferDefaults] layer would otherwise choose.
type Config struct {
	// Name is the option's primary name (required).
	Name string

	// Aliases lists additional (prefix, name) pairs.
	Aliases []Alias

	// Hint and Help are opaque strings for an external renderer.
	Hint string
	Help string

	// TypeName is recorded on the built [*Option] for introspection
	// (e.g. by a renderer); it does not select the [Ctor]. When empty,
	// the option records CtorID instead.
	TypeName string

	// CtorID selects which registered [Ctor] builds this option (e.g.
	// "int", "bool", "str", "pos", "cmd", "main", "any", "raw",
	// "fallback"). Required.
	CtorID string

	// Action, Index, Styles, Force override the [Ctor]'s inferred
	// defaults when non-nil.
	Action *Action
	Index  *Index
	Styles *Style
	Force  *bool

	// Initializer, Validator, Storer override the corresponding
	// [ValuePipeline] stage when non-nil. Validator is folded into the
	// [Ctor]'s default [Storer] construction; Storer, when set,
	// replaces the whole composed storer (so Validator is ignored in
	// that case).
	Initializer Initializer
	Validator   Validator
	Storer      Storer
}

// Ctor is a factory that turns a [Config] into an [*Option], keyed by a
// short type tag: no inheritance, every option kind is unified behind
// one Option struct plus this Ctor registry.
type Ctor func(cfg Config) (*Option, error)

// buildOption assembles an [*Option] from cfg, falling back to d for any
// field cfg does not override, and validates the documented invariants
// (styles non-empty, index well-formed, groupable names are single-byte).
func buildOption(cfg Config, d InferDefaults, defaultInit Initializer, defaultStorer Storer) (*Option, error) {
	if cfg.Name == "" {
		return nil, ErrCreateOption{CtorID: cfg.CtorID, Why: "name cannot be empty"}
	}

	styles := d.Styles
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	if styles == 0 {
		return nil, ErrCreateOption{CtorID: cfg.CtorID, Why: "styles cannot be empty"}
	}

	index := d.Index
	if cfg.Index != nil {
		index = *cfg.Index
	}
	if err := index.Validate(); err != nil {
		return nil, err
	}

	action := d.Action
	if cfg.Action != nil {
		action = *cfg.Action
	}

	force := d.Force
	if cfg.Force != nil {
		force = *cfg.Force
	}

	if styles.Has(StyleCombined) && !d.IgnoreName && len(cfg.Name) != 1 {
		return nil, ErrCreateOption{
			CtorID: cfg.CtorID,
			Why:    "groupable (Combined-style) option names must be a single byte",
		}
	}

	seenAliases := make(map[Alias]bool, len(cfg.Aliases))
	for _, a := range cfg.Aliases {
		if seenAliases[a] {
			return nil, ErrDuplicateName{Name: a.Name}
		}
		seenAliases[a] = true
	}

	init := defaultInit
	if cfg.Initializer != nil {
		init = cfg.Initializer
	}
	storer := defaultStorer
	if cfg.Storer != nil {
		storer = cfg.Storer
	}
	typeName := cfg.TypeName
	if typeName == "" {
		typeName = cfg.CtorID
	}

	return &Option{
		Name:        cfg.Name,
		Aliases:     cfg.Aliases,
		TypeName:    typeName,
		Styles:      styles,
		Index:       index,
		Force:       force,
		Action:      action,
		IgnoreName:  d.IgnoreName,
		IgnoreAlias: d.IgnoreAlias,
		IgnoreIndex: d.IgnoreIndex,
		Hint:        cfg.Hint,
		Help:        cfg.Help,
		pipeline:    newValuePipeline(init, storer),
	}, nil
}

// --- built-in Ctors ---

func ctorBool(cfg Config) (*Option, error) {
	d := InferBool()
	storer := NewStorer[bool](BoolParser(), cfg.Validator)
	return buildOption(cfg, d, NewInitializer(false), storer)
}

func ctorSignedInt(cfg Config) (*Option, error) {
	d := InferScalar()
	storer := NewStorer[int64](SignedIntParser[int64](), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[int64](), storer)
}

func ctorUnsignedInt(cfg Config) (*Option, error) {
	d := InferScalar()
	storer := NewStorer[uint64](UnsignedIntParser[uint64](), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[uint64](), storer)
}

func ctorFloat(cfg Config) (*Option, error) {
	d := InferScalar()
	storer := NewStorer[float64](FloatParser[float64](), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[float64](), storer)
}

func ctorString(cfg Config) (*Option, error) {
	d := InferScalar()
	storer := NewStorer[string](StringParser(), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[string](), storer)
}

func ctorPath(cfg Config) (*Option, error) {
	d := InferScalar()
	storer := NewStorer[Path](PathParser(), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[Path](), storer)
}

func ctorCmd(cfg Config) (*Option, error) {
	d := InferCmd()
	storer := NewStorer[bool](NewRawParser(func(raw *string, ctx *Ctx) (bool, error) {
		return true, nil
	}), cfg.Validator)
	return buildOption(cfg, d, NewInitializer(false), storer)
}

func ctorPos(cfg Config) (*Option, error) {
	d := InferPos()
	storer := NewStorer[string](StringParser(), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[string](), storer)
}

func ctorMain(cfg Config) (*Option, error) {
	d := InferMain()
	storer := NewStorer[struct{}](NewRawParser(func(raw *string, ctx *Ctx) (struct{}, error) {
		return struct{}{}, nil
	}), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[struct{}](), storer)
}

func ctorAny(cfg Config) (*Option, error) {
	d := InferAny()
	storer := NewStorer[string](NewRawParser(func(raw *string, ctx *Ctx) (string, error) {
		if raw == nil {
			return "", nil
		}
		return *raw, nil
	}), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[string](), storer)
}

// ctorRaw captures the raw fragment without converting or storing a
// typed value (Action Null): useful for options whose only purpose is
// recording that they were seen, or whose conversion a custom handler
// performs instead of the default Storer.
func ctorRaw(cfg Config) (*Option, error) {
	d := InferScalar()
	d.Action = ActionNull
	storer := NewStorer[string](StringParser(), cfg.Validator)
	return buildOption(cfg, d, NewInitializer[string](), storer)
}

func ctorFallback(cfg Config) (*Option, error) {
	return ctorRaw(cfg)
}

// registerBuiltinCtors populates os's Ctor registry with the built-in
// type tags.
func registerBuiltinCtors(os *OptionSet) {
	os.ctors["bool"] = ctorBool
	os.ctors["int"] = ctorSignedInt
	os.ctors["uint"] = ctorUnsignedInt
	os.ctors["flt"] = ctorFloat
	os.ctors["str"] = ctorString
	os.ctors["path"] = ctorPath
	os.ctors["cmd"] = ctorCmd
	os.ctors["pos"] = ctorPos
	os.ctors["main"] = ctorMain
	os.ctors["any"] = ctorAny
	os.ctors["raw"] = ctorRaw
	os.ctors["fallback"] = ctorFallback
}
