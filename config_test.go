package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOptionRejectsEmptyName(t *testing.T) {
	os := NewOptionSet()
	_, err := os.String(Config{Name: ""})
	assert.Error(t, err)
	var e ErrCreateOption
	assert.ErrorAs(t, err, &e)
}

func TestBuildOptionRejectsEmptyStyles(t *testing.T) {
	os := NewOptionSet()
	zero := Style(0)
	_, err := os.String(Config{Name: "x", Styles: &zero})
	assert.Error(t, err)
}

func TestBuildOptionRejectsMultiByteCombinedName(t *testing.T) {
	os := NewOptionSet()
	_, err := os.Bool(Config{Name: "ab"})
	assert.Error(t, err)
}

func TestBuildOptionRejectsDuplicateAlias(t *testing.T) {
	os := NewOptionSet()
	_, err := os.String(Config{
		Name:    "out",
		Aliases: []Alias{{Prefix: "-", Name: "o"}, {Prefix: "-", Name: "o"}},
	})
	assert.Error(t, err)
	var e ErrDuplicateName
	assert.ErrorAs(t, err, &e)
}

func TestBuildOptionAllowsDistinctAliases(t *testing.T) {
	os := NewOptionSet()
	_, err := os.String(Config{
		Name:    "out",
		Aliases: []Alias{{Prefix: "-", Name: "o"}, {Prefix: "--", Name: "output"}},
	})
	assert.NoError(t, err)
}

func TestBuildOptionRejectsInvalidIndex(t *testing.T) {
	os := NewOptionSet()
	bad := ForwardIndex(0)
	_, err := os.Pos(Config{Name: "p", Index: &bad})
	assert.Error(t, err)
}

func TestCtorCmdDefaultsForceIndex1(t *testing.T) {
	os := NewOptionSet()
	opt, err := os.Cmd(Config{Name: "serve"})
	assert.NoError(t, err)
	assert.True(t, opt.Force)
	assert.Equal(t, IndexForward, opt.Index.Kind)
	assert.Equal(t, 1, opt.Index.N)
}

func TestCtorAnyUsesStyleAll(t *testing.T) {
	os := NewOptionSet()
	opt, err := os.Any(Config{Name: "a"})
	assert.NoError(t, err)
	assert.Equal(t, StyleAll, opt.Styles)
}

func TestUnknownCtorIDFails(t *testing.T) {
	os := NewOptionSet()
	_, err := os.AddOption(Config{Name: "x", CtorID: "nope"})
	assert.Error(t, err)
}
