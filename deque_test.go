package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequeFIFOOrder(t *testing.T) {
	var d deque[int]
	assert.True(t, d.Empty())

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	assert.False(t, d.Empty())

	v, ok := d.Front()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	d.PopFront()
	v, _ = d.Front()
	assert.Equal(t, 2, v)

	d.PopFront()
	d.PopFront()
	assert.True(t, d.Empty())
}

func TestDequeFrontOnEmpty(t *testing.T) {
	var d deque[string]
	_, ok := d.Front()
	assert.False(t, ok)
}

func TestDequePopFrontOnEmptyIsNoOp(t *testing.T) {
	var d deque[int]
	d.PopFront()
	assert.True(t, d.Empty())
}
