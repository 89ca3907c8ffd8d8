package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustBool(t *testing.T, os *OptionSet, cfg Config) *Option {
	t.Helper()
	opt, err := os.Bool(cfg)
	assert.NoError(t, err)
	return opt
}

func TestOptionMatchesIdentityAndPosition(t *testing.T) {
	os := NewOptionSet()
	opt := mustBool(t, os, Config{Name: "v"})

	assert.True(t, opt.matches("-", "v", 1, 1))
	assert.False(t, opt.matches("-", "q", 1, 1))
}

func TestOptionMatchesHonoredIgnoreFlags(t *testing.T) {
	os := NewOptionSet()
	pos, err := os.Pos(Config{Name: "p", Index: indexPtr(ForwardIndex(1))})
	assert.NoError(t, err)

	// Pos ignores name/alias entirely; only position matters.
	assert.True(t, pos.matches("-", "anything", 1, 1))
	assert.False(t, pos.matches("-", "anything", 2, 2))
}

func TestOptionAliasMatches(t *testing.T) {
	os := NewOptionSet()
	opt := mustBool(t, os, Config{Name: "verbose", Aliases: []Alias{{Prefix: "-", Name: "v"}}})
	assert.True(t, opt.matches("-", "v", 1, 1))
	assert.True(t, opt.matches("--", "verbose", 1, 1))
}

func TestOptionResetClearsMatchedAndValues(t *testing.T) {
	os := NewOptionSet()
	opt := mustBool(t, os, Config{Name: "v"})
	opt.matched = true
	AnyValuePush(opt.Accessor().values, true)

	opt.reset()
	assert.False(t, opt.Matched())
	assert.Empty(t, AnyValueAll[bool](opt.Accessor().values))
}

func TestOptionRequiresForceCheck(t *testing.T) {
	os := NewOptionSet()
	boolOpt := mustBool(t, os, Config{Name: "v"})
	assert.True(t, boolOpt.requiresForceCheck())

	mainOpt, err := os.Main(Config{Name: "m"})
	assert.NoError(t, err)
	assert.False(t, mainOpt.requiresForceCheck())
}

func indexPtr(ix Index) *Index { return &ix }
