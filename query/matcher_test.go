package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDoc is a minimal in-memory Document used to test the matcher
// without depending on the vdom package (which itself depends on query).
type fakeDoc struct {
	tag      map[uint32]string
	attrs    map[uint32]map[string]string
	classes  map[uint32][]string
	parent   map[uint32]uint32
	hasPar   map[uint32]bool
	children map[uint32][]uint32
	roots    []uint32
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{
		tag:      map[uint32]string{},
		attrs:    map[uint32]map[string]string{},
		classes:  map[uint32][]string{},
		parent:   map[uint32]uint32{},
		hasPar:   map[uint32]bool{},
		children: map[uint32][]uint32{},
	}
}

func (f *fakeDoc) add(id uint32, parent uint32, hasParent bool, tag string) {
	f.tag[id] = tag
	f.attrs[id] = map[string]string{}
	if hasParent {
		f.parent[id] = parent
		f.hasPar[id] = true
		f.children[parent] = append(f.children[parent], id)
	} else {
		f.roots = append(f.roots, id)
	}
}

func (f *fakeDoc) QueryRoots() []uint32          { return f.roots }
func (f *fakeDoc) QueryIsElement(h uint32) bool  { _, ok := f.tag[h]; return ok }
func (f *fakeDoc) QueryTagName(h uint32) string  { return f.tag[h] }
func (f *fakeDoc) QueryHasAttr(h uint32, k string) bool {
	_, ok := f.attrs[h][k]
	return ok
}
func (f *fakeDoc) QueryAttr(h uint32, k string) (string, bool) {
	v, ok := f.attrs[h][k]
	return v, ok
}
func (f *fakeDoc) QueryClassTokens(h uint32) []string { return f.classes[h] }
func (f *fakeDoc) QueryParent(h uint32) (uint32, bool) {
	p, ok := f.hasPar[h]
	if !ok || !p {
		return 0, false
	}
	return f.parent[h], true
}
func (f *fakeDoc) QueryChildren(h uint32) []uint32 { return f.children[h] }

// Builds:
// 1 html
//   2 body
//     3 div#main.wrap
//       4 span.item [data-n=1]
//       5 span.item [data-n=2]
//     6 p
func buildFakeTree() *fakeDoc {
	f := newFakeDoc()
	f.add(1, 0, false, "html")
	f.add(2, 1, true, "body")
	f.add(3, 2, true, "div")
	f.attrs[3]["id"] = "main"
	f.classes[3] = []string{"wrap"}
	f.add(4, 3, true, "span")
	f.classes[4] = []string{"item"}
	f.attrs[4]["data-n"] = "1"
	f.add(5, 3, true, "span")
	f.classes[5] = []string{"item"}
	f.attrs[5]["data-n"] = "2"
	f.add(6, 2, true, "p")
	return f
}

func TestMatchAllByTag(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile("span")
	require.NoError(t, err)
	got := MatchAll(doc, sel)
	assert.Equal(t, []uint32{4, 5}, got)
}

func TestMatchByIDAndClass(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile("#main")
	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, MatchAll(doc, sel))

	sel2, err := Compile(".item")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5}, MatchAll(doc, sel2))
}

func TestMatchDescendantCombinator(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile("body span")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5}, MatchAll(doc, sel))
}

func TestMatchChildCombinator(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile("div > span")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5}, MatchAll(doc, sel))

	// body > span should match nothing: span's parent is div, not body.
	sel2, err := Compile("body > span")
	require.NoError(t, err)
	assert.Empty(t, MatchAll(doc, sel2))
}

func TestMatchAttrPredicate(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile(`span[data-n="2"]`)
	require.NoError(t, err)
	assert.Equal(t, []uint32{5}, MatchAll(doc, sel))
}

func TestMatchSubtreeExcludesRoot(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile("div")
	require.NoError(t, err)
	assert.Empty(t, MatchSubtree(doc, 3, sel))

	sel2, err := Compile("span")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5}, MatchSubtree(doc, 3, sel2))
}

func TestMatchExprPredicate(t *testing.T) {
	doc := buildFakeTree()
	sel, err := Compile(`span:expr(attr("data-n") == "2")`)
	require.NoError(t, err)
	assert.Equal(t, []uint32{5}, MatchAll(doc, sel))
}
