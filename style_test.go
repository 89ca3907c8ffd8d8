package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleHas(t *testing.T) {
	s := StyleCombined | StyleBoolean
	assert.True(t, s.Has(StyleCombined))
	assert.True(t, s.Has(StyleBoolean))
	assert.False(t, s.Has(StyleArgument))
}

func TestStyleConsumesArgument(t *testing.T) {
	assert.True(t, StyleArgument.consumesArgument())
	assert.True(t, StyleEmbeddedValue.consumesArgument())
	assert.True(t, StyleEmbeddedValuePlus.consumesArgument())
	assert.False(t, StyleBoolean.consumesArgument())
	assert.False(t, StyleFlag.consumesArgument())
	assert.False(t, StyleCombined.consumesArgument())
}

func TestStyleAttemptOrderMatchesDocumentedSequence(t *testing.T) {
	want := []Style{
		StyleArgument, StyleEmbeddedValue, StyleEmbeddedValuePlus,
		StyleCombined, StyleBoolean, StyleFlag,
	}
	assert.Equal(t, want, styleAttemptOrder)
}

func TestStyleAllIncludesEveryConstant(t *testing.T) {
	for _, s := range []Style{
		StyleArgument, StyleBoolean, StyleCombined, StyleEmbeddedValue,
		StyleEmbeddedValuePlus, StyleFlag, StyleCmd, StylePos, StyleMain,
	} {
		assert.True(t, StyleAll.Has(s))
	}
}
