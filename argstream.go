//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/parser.go
// (construction of flagscanner.Scanner from the resolved prefix set) and
// https://github.com/bassosimone/flagparser/blob/main/doparse.go (the
// `strings.Index(cur.Name, "=")` inline-value split).
//
// flagscanner already does the longest-first prefix stripping (emitting
// flagscanner.OptionToken vs flagscanner.PositionalArgumentToken)
// exactly the way flagparser uses it. This file layers negation
// detection, name=value split, and UTF-8/empty validation on top, since
// those are new semantics flagscanner's own token shape does not carry.
//

package optparse

import (
	"strings"
	"unicode/utf8"

	"github.com/bassosimone/flagscanner"
)

// TokenKind discriminates a [ClassifiedToken].
type TokenKind int

// These constants define the allowed [TokenKind] values.
const (
	// TokenNonOption is a candidate for Cmd/Pos/Main matching.
	TokenNonOption TokenKind = iota

	// TokenOption classified successfully as PREFIX NAME [=VALUE].
	TokenOption
)

// ClassifiedToken is the tuple a classified argument decomposes into:
// (prefix?, name, inline-value?, negated?), plus enough of the original
// token to recover its raw text and stream position.
type ClassifiedToken struct {
	Kind        TokenKind
	Prefix      string
	Name        string
	InlineValue *string
	Negated     bool
	Raw         string
	Idx         int
}

// ArgStream is an input token stream with one-step lookahead, built on
// top of [flagscanner.Scanner].
type ArgStream struct {
	tokens []flagscanner.Token
	pos    int
}

// NewArgStream tokenizes args using the given prefix list (already
// sorted longest-first by [*OptionSet.SetPrefixes]).
func NewArgStream(args []string, prefixes []string) *ArgStream {
	sx := &flagscanner.Scanner{
		// The options/arguments separator is handled at the policy
		// level via the literal "--" non-option token (see
		// policy.go), not by flagscanner's own separator feature, so
		// that the built-in Stop raw parser can also observe it when
		// attached to a user-declared option.
		Separator: "",
		Prefixes:  append([]string(nil), prefixes...),
	}
	return &ArgStream{tokens: sx.Scan(args)}
}

// Empty reports whether the stream is exhausted.
func (as *ArgStream) Empty() bool { return as.pos >= len(as.tokens) }

// Current returns the classified token at the cursor.
func (as *ArgStream) Current() (ClassifiedToken, bool) {
	if as.Empty() {
		return ClassifiedToken{}, false
	}
	return classify(as.tokens[as.pos]), true
}

// Peek returns the classified token one position past the cursor,
// without advancing.
func (as *ArgStream) Peek() (ClassifiedToken, bool) {
	if as.pos+1 >= len(as.tokens) {
		return ClassifiedToken{}, false
	}
	return classify(as.tokens[as.pos+1]), true
}

// Advance moves the cursor one token forward.
func (as *ArgStream) Advance() {
	if !as.Empty() {
		as.pos++
	}
}

// ConsumeNext advances the cursor and returns the raw text of the token
// it consumed, for styles that take the following token as their value
// (e.g. `--output FILE`).
func (as *ArgStream) ConsumeNext() (string, bool) {
	if as.Empty() {
		return "", false
	}
	raw := rawTextOf(as.tokens[as.pos])
	as.pos++
	return raw, true
}

func rawTextOf(tok flagscanner.Token) string {
	switch t := tok.(type) {
	case flagscanner.OptionToken:
		return t.String()
	case flagscanner.PositionalArgumentToken:
		return t.Value
	default:
		return ""
	}
}

// classify layers negation detection, name=value split, and the
// empty/non-UTF-8 name failure mode on top of flagscanner's token; the
// failure mode (being non-fatal) reclassifies the token as TokenNonOption
// rather than raising an error.
func classify(tok flagscanner.Token) ClassifiedToken {
	opt, ok := tok.(flagscanner.OptionToken)
	if !ok {
		if pos, ok := tok.(flagscanner.PositionalArgumentToken); ok {
			return ClassifiedToken{Kind: TokenNonOption, Raw: pos.Value, Idx: pos.Index()}
		}
		return ClassifiedToken{Kind: TokenNonOption, Raw: rawTextOf(tok), Idx: tok.Index()}
	}

	prefix := opt.Prefix
	name := opt.Name
	negated := false
	if len(prefix) > 1 && strings.HasSuffix(prefix, "/") {
		// a "--/" or "-/" prefix: report the bare dash prefix, negated
		negated = true
		prefix = prefix[:len(prefix)-1]
	} else if strings.HasPrefix(name, "/") {
		negated = true
		name = name[1:]
	}

	var inline *string
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		v := name[eq+1:]
		name = name[:eq]
		inline = &v
	}

	if name == "" || !utf8.ValidString(name) {
		return ClassifiedToken{Kind: TokenNonOption, Raw: opt.String(), Idx: opt.Index()}
	}

	return ClassifiedToken{
		Kind: TokenOption, Prefix: prefix, Name: name,
		InlineValue: inline, Negated: negated, Raw: opt.String(), Idx: opt.Index(),
	}
}
