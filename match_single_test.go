package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleOptMatchesByNameAndStoresValue(t *testing.T) {
	os := NewOptionSet()
	opt, _ := os.Bool(Config{Name: "v"})

	sm := NewSingleOpt("-", "v", StyleBoolean, nil, 0, 0, false)
	matched, err := sm.match(os, false, func(o *Option, raw *string) error {
		return o.pipeline.store(ActionSet, raw, &Ctx{NameMatched: o.Name})
	})
	assert.NoError(t, err)
	assert.True(t, matched)
	assert.True(t, opt.Matched())

	v, ok := Val[bool](opt.Accessor())
	assert.True(t, ok)
	assert.True(t, v)
}

func TestSingleOptMissingValueForConsumingStyle(t *testing.T) {
	os := NewOptionSet()
	os.Int64(Config{Name: "n"})

	sm := NewSingleOpt("-", "n", StyleArgument, nil, 0, 0, false)
	_, err := sm.match(os, false, func(o *Option, raw *string) error { return nil })
	assert.Error(t, err)
	var e ErrMissingValue
	assert.ErrorAs(t, err, &e)
}

func TestSingleOptUndoRevertsMatchedFlag(t *testing.T) {
	os := NewOptionSet()
	opt, _ := os.Bool(Config{Name: "v"})
	sm := NewSingleOpt("-", "v", StyleBoolean, nil, 0, 0, false)
	_, err := sm.match(os, false, func(o *Option, raw *string) error { return nil })
	assert.NoError(t, err)
	assert.True(t, opt.Matched())

	sm.undo(os)
	assert.False(t, opt.Matched())
}

func TestSingleOptConsumeFailureRollsBackAndContinuesOnFailer(t *testing.T) {
	os := NewOptionSet()
	a, _ := os.Bool(Config{Name: "a"})
	_, _ = os.Bool(Config{Name: "a2"})

	calls := 0
	sm := NewSingleOpt("-", "a", StyleBoolean, nil, 0, 0, false)
	_, err := sm.match(os, false, func(o *Option, raw *string) error {
		calls++
		return ErrValidate{Name: o.Name}
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, a.Matched())
}

func TestSingleOptNoCandidateMatches(t *testing.T) {
	os := NewOptionSet()
	os.Bool(Config{Name: "v"})
	sm := NewSingleOpt("-", "other", StyleBoolean, nil, 0, 0, false)
	matched, err := sm.match(os, false, func(o *Option, raw *string) error { return nil })
	assert.NoError(t, err)
	assert.False(t, matched)
}
