package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributesInlineAndPromoted(t *testing.T) {
	var a Attributes
	a.Insert([]byte("id"), []byte("main"), true)
	a.Insert([]byte("class"), []byte("foo bar"), true)
	a.Insert([]byte("disabled"), nil, false)

	v, ok := a.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "main", v.String())

	assert.True(t, a.Contains("disabled"))
	_, hasVal := a.Get("disabled")
	assert.True(t, hasVal) // present, just with empty value

	assert.True(t, a.IsClassMember("foo"))
	assert.True(t, a.IsClassMember("bar"))
	assert.False(t, a.IsClassMember("baz"))

	// Push past the inline threshold to force promotion.
	a.Insert([]byte("data-a"), []byte("1"), true)
	a.Insert([]byte("data-b"), []byte("2"), true)
	assert.Equal(t, 5, a.Len())

	v2, ok2 := a.Get("data-b")
	assert.True(t, ok2)
	assert.Equal(t, "2", v2.String())

	// Case-insensitive key matching.
	v3, ok3 := a.Get("ID")
	assert.True(t, ok3)
	assert.Equal(t, "main", v3.String())
}

func TestAttributesRemove(t *testing.T) {
	var a Attributes
	a.Insert([]byte("id"), []byte("x"), true)
	a.Insert([]byte("class"), []byte("a b c"), true)

	assert.True(t, a.Remove("id"))
	_, ok := a.ID()
	assert.False(t, ok)
	assert.False(t, a.Remove("id"))

	assert.True(t, a.RemoveValue("class"))
	v, present := a.Get("class")
	// Get reports presence, not whether a value was set — RemoveValue
	// leaves "class" present as a boolean attribute, same as the
	// "disabled" case above.
	assert.True(t, present)
	assert.Equal(t, "", v.String())
	assert.True(t, a.Contains("class"))
}

func TestSplitClassTokens(t *testing.T) {
	toks := splitClassTokens([]byte("  foo   bar\tbaz "))
	assert.Len(t, toks, 3)
	assert.Equal(t, "foo", toks[0].String())
	assert.Equal(t, "baz", toks[2].String())
}
