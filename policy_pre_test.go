package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrePolicyToleratesUnknownOptionAndReturnsRemainder(t *testing.T) {
	p := NewParser()
	p.OptionSet.Int64(Config{Name: "x"})
	p.Policy = &PrePolicy{}

	rc, remainder, err := p.Parse([]string{"-x", "1", "--unknown", "leftover"})
	assert.NoError(t, err)
	assert.NotEmpty(t, rc.Failures)

	xv, ok := FindVal[int64](p.OptionSet, "x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), xv)

	assert.Contains(t, remainder, "--unknown")
	assert.Contains(t, remainder, "leftover")
}

func TestPrePolicyFatalErrorStillAborts(t *testing.T) {
	p := NewParser()
	p.OptionSet.Int64(Config{Name: "x"})
	// Restrict to a plain "-" prefix so a leading "/" left in the name
	// after stripping is unambiguously classify()'s own negation fallback
	// (see argstream_test.go's TestArgStreamNegationFlag), independent of
	// how a richer prefix set including "-/" itself would be matched.
	assert.NoError(t, p.OptionSet.SetPrefixes([]string{"-"}))
	p.Policy = &PrePolicy{}

	_, _, err := p.Parse([]string{"-/x=1"})
	assert.Error(t, err)
	var e ErrArgMalformed
	assert.ErrorAs(t, err, &e)
}
