//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Grounded on: https://github.com/bassosimone/flagparser/blob/main/parser.go
// (the AddOptionWithArgumentNone/Required/Optional family of typed
// convenience wrappers around the generic AddOption). Here the same
// "one short typed method per shape" idea wraps [*OptionSet.AddOption]
// plus the [Ctor] registry instead of a fixed OptionType bitmask.
//

package optparse

// Bool declares a boolean option (Combined + Boolean styles).
func (os *OptionSet) Bool(cfg Config) (*Option, error) {
	cfg.CtorID = "bool"
	return os.AddOption(cfg)
}

// Int64 declares a signed-integer option (Argument style).
func (os *OptionSet) Int64(cfg Config) (*Option, error) {
	cfg.CtorID = "int"
	return os.AddOption(cfg)
}

// Uint64 declares an unsigned-integer option (Argument style).
func (os *OptionSet) Uint64(cfg Config) (*Option, error) {
	cfg.CtorID = "uint"
	return os.AddOption(cfg)
}

// Float64 declares a floating-point option (Argument style).
func (os *OptionSet) Float64(cfg Config) (*Option, error) {
	cfg.CtorID = "flt"
	return os.AddOption(cfg)
}

// String declares a string option (Argument style).
func (os *OptionSet) String(cfg Config) (*Option, error) {
	cfg.CtorID = "str"
	return os.AddOption(cfg)
}

// Path declares a filesystem-path option (Argument style), whose
// Accessor yields [Path] values.
func (os *OptionSet) Path(cfg Config) (*Option, error) {
	cfg.CtorID = "path"
	return os.AddOption(cfg)
}

// Cmd declares a subcommand keyword (Cmd style, force=true, index 1).
func (os *OptionSet) Cmd(cfg Config) (*Option, error) {
	cfg.CtorID = "cmd"
	return os.AddOption(cfg)
}

// Pos declares a positional argument (Pos style).
func (os *OptionSet) Pos(cfg Config) (*Option, error) {
	cfg.CtorID = "pos"
	return os.AddOption(cfg)
}

// Main declares an always-invoked side-effect option (Main style).
func (os *OptionSet) Main(cfg Config) (*Option, error) {
	cfg.CtorID = "main"
	return os.AddOption(cfg)
}

// Any declares an option attempted under every style (the "Any" marker).
func (os *OptionSet) Any(cfg Config) (*Option, error) {
	cfg.CtorID = "any"
	return os.AddOption(cfg)
}
