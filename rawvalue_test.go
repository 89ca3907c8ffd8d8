package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawValueStorePushAndAll(t *testing.T) {
	rs := NewRawValueStore()
	rs.Push("a")
	rs.Push("b")
	assert.Equal(t, []string{"a", "b"}, rs.All())
}

func TestRawValueStoreLast(t *testing.T) {
	rs := NewRawValueStore()
	_, ok := rs.Last()
	assert.False(t, ok)

	rs.Push("a")
	rs.Push("b")
	last, ok := rs.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last)
}

func TestRawValueStoreClear(t *testing.T) {
	rs := NewRawValueStore()
	rs.Push("a")
	rs.Clear()
	assert.Empty(t, rs.All())
}
