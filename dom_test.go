package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetElementByID(t *testing.T) {
	dom, err := Parse([]byte(`<div><p id="target">hi</p></div>`))
	require.NoError(t, err)
	h, ok := dom.GetElementByID("target")
	require.True(t, ok)
	assert.Equal(t, "p", dom.Resolve(h).TagName())

	_, ok = dom.GetElementByID("missing")
	assert.False(t, ok)
}

func TestGetElementsByClassNameFallbackScan(t *testing.T) {
	dom, err := Parse([]byte(`<div class="a b"><span class="b"></span></div>`))
	require.NoError(t, err)
	got := dom.GetElementsByClassName("b")
	require.Len(t, got, 2)
}

func TestGetElementsByClassNameTracked(t *testing.T) {
	dom, err := Parse([]byte(`<div class="a"><span class="a"></span></div>`), WithTrackClasses(true))
	require.NoError(t, err)
	got := dom.GetElementsByClassName("a")
	require.Len(t, got, 2)
}

func TestFindPredicate(t *testing.T) {
	dom, err := Parse([]byte(`<div><p>x</p><span data-x="1">y</span></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]
	h, ok := dom.Find(root, func(_ Handle, n *Node) bool {
		return n.Kind == KindElement && n.Attrs.Contains("data-x")
	})
	require.True(t, ok)
	assert.Equal(t, "span", dom.Resolve(h).TagName())
}

func TestQueryDelegatesToSelectorPackage(t *testing.T) {
	dom, err := Parse([]byte(`<div><p class="x">a</p><p>b</p></div>`))
	require.NoError(t, err)
	matches, err := dom.Query("p.x")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a", dom.Resolve(dom.Resolve(matches[0]).Children.At(0)).Text())
}

func TestQuerySubtreeExcludesRoot(t *testing.T) {
	dom, err := Parse([]byte(`<div><p>a</p></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]
	matches, err := dom.QuerySubtree(root, "div")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSetAndRemoveAttributeUpdatesIndex(t *testing.T) {
	dom, err := Parse([]byte(`<div id="old"></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]

	require.NoError(t, dom.SetAttribute(root, "id", "new"))
	_, ok := dom.GetElementByID("old")
	assert.False(t, ok)
	h, ok := dom.GetElementByID("new")
	assert.True(t, ok)
	assert.Equal(t, root, h)

	require.NoError(t, dom.RemoveAttribute(root, "id"))
	_, ok = dom.GetElementByID("new")
	assert.False(t, ok)
}

func TestRemoveAttributeKeepsIDIndexed(t *testing.T) {
	dom, err := Parse([]byte(`<div id="x" data-foo="bar"></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]

	require.NoError(t, dom.RemoveAttribute(root, "data-foo"))
	h, ok := dom.GetElementByID("x")
	assert.True(t, ok)
	assert.Equal(t, root, h)
}

func TestChildrenTopAndAll(t *testing.T) {
	dom, err := Parse([]byte(`<div><p>a</p><span><b>c</b></span></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]

	var top []string
	for _, h := range dom.Children(root).Top() {
		top = append(top, dom.Resolve(h).TagName())
	}
	if diff := cmp.Diff([]string{"p", "span"}, top); diff != "" {
		t.Errorf("Top() mismatch (-want +got):\n%s", diff)
	}

	// All() includes text nodes, whose TagName() is "".
	var all []string
	for _, h := range dom.Children(root).All() {
		all = append(all, dom.Resolve(h).TagName())
	}
	if diff := cmp.Diff([]string{"p", "", "span", "b", ""}, all); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendAndRemoveChild(t *testing.T) {
	dom, err := Parse([]byte(`<div></div><span></span>`))
	require.NoError(t, err)
	roots := dom.Roots()
	div, span := roots[0], roots[1]

	dom.AppendChild(div, span)
	assert.Equal(t, 1, dom.Resolve(div).Children.Len())
	assert.Equal(t, div, dom.Resolve(span).Parent)

	assert.True(t, dom.RemoveChild(div, span))
	assert.Equal(t, 0, dom.Resolve(div).Children.Len())
}

func TestDoctypeAbsent(t *testing.T) {
	dom, err := Parse([]byte(`<p>x</p>`))
	require.NoError(t, err)
	_, ok := dom.DoctypeVersion()
	assert.False(t, ok)
}
