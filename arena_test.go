package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaAllocResolve(t *testing.T) {
	a := NewArena(0)
	assert.Equal(t, 0, a.Len())

	h := a.Alloc(Node{Kind: KindText, Data: BorrowedBytes([]byte("hi"))})
	assert.Equal(t, 1, a.Len())

	n := a.Resolve(h)
	assert.Equal(t, "hi", n.Text())

	_, ok := a.TryResolve(NoHandle)
	assert.False(t, ok)

	_, ok = a.TryResolve(Handle(99))
	assert.False(t, ok)
}

func TestArenaResolvePanicsOnBadHandle(t *testing.T) {
	a := NewArena(0)
	assert.Panics(t, func() {
		a.Resolve(Handle(42))
	})
}

func TestArenaRoots(t *testing.T) {
	a := NewArena(0)
	h1 := a.Alloc(Node{Kind: KindText})
	h2 := a.Alloc(Node{Kind: KindText})
	a.addRoot(h1)
	a.addRoot(h2)
	assert.Equal(t, []Handle{h1, h2}, a.Roots())
}
