//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doc.go
//

/*
Package optparse implements the matching engine at the core of a command
line argument parsing framework: an option model, a value pipeline, and a
set of parse policies (forward, pre-scan, delayed).

Unlike a plain getopt-style scanner, [*OptionSet] holds richly typed
[*Option] values that carry their own [Style] set, positional [Index],
[Action], and [*ValuePipeline]. A policy (see [ForwardPolicy], [PrePolicy],
[DelayPolicy]) walks an [*ArgStream], classifies each token, asks the
match policies (see [SingleOpt], [MultiOpt], [SingleNonOpt]) to find a
matching option, and lets the [*ValuePipeline] parse, validate, and store
the result. Help rendering, shell-completion generation, and declarative
builder sugar are explicitly out of scope: they are external collaborators
that consume the option metadata this package exposes.

# Building an option set

Options are produced by [Ctor] functions registered in an [OptionSet] and
keyed by a short type tag ("int", "bool", "str", "pos", "cmd", "main",
"any", ...). [NewOptionSet] registers the built-in Ctors; call
[*OptionSet.AddOption] with a [Config] to materialize and insert an
[*Option], or use one of the typed helpers such as [*OptionSet.Bool],
[*OptionSet.String], or [*OptionSet.Int64].

# Parsing

[NewParser] configures GNU-style defaults: the prefixes `--/`, `--`,
`-/`, and `-`, and [ForwardPolicy] as the default driver. Prefixes are
not bound to styles: every option-shaped token is attempted under every
style in the attempt order. The literal `--` token is recognized
generically by the argument classifier (it carries no name once its
prefix is stripped), so every policy treats it as the conventional
options/arguments separator without any option needing to declare it;
Cmd/Pos/Main options never see it. [StopParser] remains available as a
building block for a valued option that takes `--` as its argument. Call [*Parser.Parse] with
`os.Args[1:]`, or [*Parser.ParseLine] with a single shell-quoted string
when the arguments come from a caller-supplied line rather than a
pre-split slice.

# Policies

Three policies share a skeleton (reset, pre-check, walk, opt/pos/cmd
check) and differ in when handler side effects run:

 1. [ForwardPolicy] invokes handlers as soon as a token matches; this is
    the default and matches conventional getopt-like behavior.

 2. [PrePolicy] promotes every failure to "ignore" so a recoverable
    failure never aborts parsing (fatal errors still do); it returns the unmatched non-option arguments (the "NOA
    remainder") for a second pass, typically a [ForwardPolicy] parsing a
    subcommand's own flags. [*Parser.ParseChained] wires this two-phase
    flow for callers.

 3. [DelayPolicy] captures matched contexts during the walk and replays
    them, invoking option handlers, only after all Cmd/Pos/Main side
    effects have completed. Useful for handlers that need the full parsed
    state before running (cross-option validation).

# Looking up results

After a successful parse, [*OptionSet.FindUid], [*OptionSet.FindOpt], and
the free functions [Val], [Vals], [TakeVal], and [TakeVals] expose the
matched state by name or uid.

# Non-goals

No I/O beyond reading argv-like sequences, no environment-variable or
config-file ingestion, no interactive prompting, no help-text rendering,
no shell-completion generation, and no persistence of option definitions.
*/
package optparse
