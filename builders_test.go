package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildersProduceOptionsWithExpectedStyles(t *testing.T) {
	os := NewOptionSet()

	b, err := os.Bool(Config{Name: "a"})
	assert.NoError(t, err)
	assert.True(t, b.Styles.Has(StyleBoolean))

	i, err := os.Int64(Config{Name: "n"})
	assert.NoError(t, err)
	assert.True(t, i.Styles.Has(StyleArgument))

	u, err := os.Uint64(Config{Name: "u"})
	assert.NoError(t, err)
	assert.True(t, u.Styles.Has(StyleArgument))

	f, err := os.Float64(Config{Name: "f"})
	assert.NoError(t, err)
	assert.True(t, f.Styles.Has(StyleArgument))

	s, err := os.String(Config{Name: "s"})
	assert.NoError(t, err)
	assert.True(t, s.Styles.Has(StyleArgument))

	p, err := os.Path(Config{Name: "p"})
	assert.NoError(t, err)
	assert.True(t, p.Styles.Has(StyleArgument))

	c, err := os.Cmd(Config{Name: "serve"})
	assert.NoError(t, err)
	assert.True(t, c.Styles.Has(StyleCmd))

	pos, err := os.Pos(Config{Name: "file", Index: indexPtr(ForwardIndex(1))})
	assert.NoError(t, err)
	assert.True(t, pos.Styles.Has(StylePos))

	m, err := os.Main(Config{Name: "main"})
	assert.NoError(t, err)
	assert.True(t, m.Styles.Has(StyleMain))

	any_, err := os.Any(Config{Name: "y"})
	assert.NoError(t, err)
	assert.Equal(t, StyleAll, any_.Styles)
}
