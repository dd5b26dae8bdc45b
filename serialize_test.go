package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterHTMLRoundTripsSimpleTree(t *testing.T) {
	dom, err := Parse([]byte(`<div id="x"><p>hi &amp; bye</p></div>`))
	require.NoError(t, err)
	root := dom.Roots()[0]
	out := dom.OuterHTML(root)
	assert.Contains(t, out, `<div id="x">`)
	assert.Contains(t, out, `<p>hi &amp; bye</p>`)
	assert.Contains(t, out, `</div>`)
}

func TestOuterHTMLVoidElement(t *testing.T) {
	dom, err := Parse([]byte(`<img src="a.png">`))
	require.NoError(t, err)
	out := dom.OuterHTML(dom.Roots()[0])
	assert.Equal(t, `<img src="a.png">`, out)
}

func TestOuterHTMLReconstructsAfterMutation(t *testing.T) {
	dom, err := Parse([]byte(`<img src="a.png">`))
	require.NoError(t, err)
	root := dom.Roots()[0]
	require.NoError(t, dom.SetAttribute(root, "src", "b.png"))
	out := dom.OuterHTML(root)
	assert.Equal(t, `<img src="b.png" />`, out)
}

func TestOuterHTMLInvalidatesAncestorBoundary(t *testing.T) {
	dom, err := Parse([]byte(`<div><p>hi</p></div>`))
	require.NoError(t, err)
	div := dom.Roots()[0]
	p := dom.Resolve(div).Children.At(0)
	require.NoError(t, dom.SetAttribute(p, "class", "x"))
	out := dom.OuterHTML(div)
	assert.Contains(t, out, `<p class="x">hi</p>`)
}

func TestInnerHTMLExcludesOwnTag(t *testing.T) {
	dom, err := Parse([]byte(`<div><p>a</p><p>b</p></div>`))
	require.NoError(t, err)
	inner := dom.InnerHTML(dom.Roots()[0])
	assert.Equal(t, `<p>a</p><p>b</p>`, inner)
}

func TestTextEscaping(t *testing.T) {
	dom, err := Parse([]byte(`<p>a < b & c > d</p>`))
	require.NoError(t, err)
	root := dom.Roots()[0]
	// InnerHTML always reconstructs from the arena rather than slicing
	// the input, so it exercises escapeText regardless of boundary
	// validity (unlike OuterHTML, which would hand back the raw,
	// unescaped slice here since nothing has mutated root).
	out := dom.InnerHTML(root)
	assert.Contains(t, out, "&lt;")
	assert.Contains(t, out, "&amp;")
	assert.Contains(t, out, "&gt;")
}

func TestRawTextElementSerializesVerbatim(t *testing.T) {
	dom, err := Parse([]byte(`<script>if (a < b) {}</script>`))
	require.NoError(t, err)
	out := dom.OuterHTML(dom.Roots()[0])
	assert.Equal(t, `<script>if (a < b) {}</script>`, out)
}
