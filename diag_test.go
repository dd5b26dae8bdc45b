package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRendersElementAndText(t *testing.T) {
	dom, err := Parse([]byte(`<div id="a"><p>hi</p></div>`))
	require.NoError(t, err)
	out := dom.Dump(dom.Roots()[0])
	assert.Contains(t, out, `<div id="a">`)
	assert.Contains(t, out, `<p>`)
	assert.Contains(t, out, `#text: hi`)
}

func TestDumpRendersComment(t *testing.T) {
	dom, err := Parse([]byte(`<div><!-- note --></div>`))
	require.NoError(t, err)
	out := dom.Dump(dom.Roots()[0])
	assert.Contains(t, out, "#comment:")
	assert.Contains(t, out, "note")
}

func TestDumpAllSeparatesRoots(t *testing.T) {
	dom, err := Parse([]byte(`<p>a</p><p>b</p>`))
	require.NoError(t, err)
	out := dom.DumpAll()
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "#text: a\n\n<p>")
}
