package optparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestOptionSetAddOptionAssignsUidsInOrder(t *testing.T) {
	os := NewOptionSet()
	a, err := os.Bool(Config{Name: "a"})
	assert.NoError(t, err)
	b, err := os.Bool(Config{Name: "b"})
	assert.NoError(t, err)
	assert.NotEqual(t, a.Uid(), b.Uid())
	assert.Len(t, os.Options(), 2)
}

func TestOptionSetFindOptByNameThenAlias(t *testing.T) {
	os := NewOptionSet()
	first, _ := os.Bool(Config{Name: "v", Aliases: []Alias{{Prefix: "-", Name: "x"}}})
	_, _ = os.Bool(Config{Name: "w"})

	found, ok := os.FindOpt("v")
	assert.True(t, ok)
	assert.Equal(t, first.Uid(), found.Uid())

	foundAlias, ok := os.FindOpt("x")
	assert.True(t, ok)
	assert.Equal(t, first.Uid(), foundAlias.Uid())
}

func TestOptionSetFindOptFirstMatchWinsOnAmbiguousNames(t *testing.T) {
	os := NewOptionSet()
	first, _ := os.Bool(Config{Name: "v"})
	_, _ = os.Bool(Config{Name: "v"})

	found, ok := os.FindOpt("v")
	assert.True(t, ok)
	assert.Equal(t, first.Uid(), found.Uid())
}

func TestOptionSetFindOptMissing(t *testing.T) {
	os := NewOptionSet()
	_, ok := os.FindOpt("nope")
	assert.False(t, ok)
}

func TestOptionSetGetByUid(t *testing.T) {
	os := NewOptionSet()
	opt, _ := os.Bool(Config{Name: "v"})
	found, ok := os.Get(opt.Uid())
	assert.True(t, ok)
	assert.Same(t, opt, found)

	_, ok = os.Get(Uid(99999))
	assert.False(t, ok)
}

func TestOptionSetResetAllClearsMatchState(t *testing.T) {
	os := NewOptionSet()
	opt, _ := os.Bool(Config{Name: "v"})
	opt.matched = true
	os.resetAll()
	assert.False(t, opt.Matched())
}

func TestOptionSetSetPrefixesSortsLongestFirst(t *testing.T) {
	os := NewOptionSet()
	err := os.SetPrefixes([]string{"-", "--", "-/"})
	assert.NoError(t, err)
	want := []string{"--", "-/", "-"}
	if diff := cmp.Diff(want, os.Prefixes()); diff != "" {
		t.Errorf("Prefixes() mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionSetSetPrefixesRejectsDuplicates(t *testing.T) {
	os := NewOptionSet()
	err := os.SetPrefixes([]string{"-", "-"})
	assert.Error(t, err)
}

func TestOptionSetCmdOptions(t *testing.T) {
	os := NewOptionSet()
	_, _ = os.Bool(Config{Name: "v"})
	cmd, _ := os.Cmd(Config{Name: "serve"})
	cmds := os.cmdOptions()
	assert.Len(t, cmds, 1)
	assert.Equal(t, cmd.Uid(), cmds[0].Uid())
}

func TestOptionSetRegisterCtorOverridesBuiltin(t *testing.T) {
	os := NewOptionSet()
	called := false
	os.RegisterCtor("str", func(cfg Config) (*Option, error) {
		called = true
		return ctorString(cfg)
	})
	_, err := os.String(Config{Name: "x"})
	assert.NoError(t, err)
	assert.True(t, called)
}
