package vdom

import "github.com/dpotapov/vdom/query"

// DOM is the parsed document: an Arena plus the indexes and bookkeeping
// built up during Parse. It is the facade most callers interact with,
// mirroring vdom.rs's VDom in the original crate and adapted to the
// teacher's AppendChild/InsertBefore/RemoveChild mutation style
// (chtml/node.go) for the handle-indexed arena here.
type DOM struct {
	input []byte
	arena *Arena
	opts  ParseOptions

	idIndex    map[string]Handle
	classIndex map[string][]Handle

	doctype    string
	hasDoctype bool
}

// Nodes returns the backing Arena for direct traversal.
func (d *DOM) Nodes() *Arena {
	return d.arena
}

// Resolve is a convenience forward to the arena.
func (d *DOM) Resolve(h Handle) *Node {
	return d.arena.Resolve(h)
}

// Roots returns the document's top-level node handles, in order.
func (d *DOM) Roots() []Handle {
	return d.arena.Roots()
}

// DoctypeVersion returns the declared DOCTYPE's first token (e.g. "html"
// for "<!DOCTYPE html>"), and whether a DOCTYPE declaration was seen at
// all. This is informational only: parsing behavior never branches on
// it, since quirks-mode handling is out of scope.
func (d *DOM) DoctypeVersion() (string, bool) {
	return d.doctype, d.hasDoctype
}

// GetElementByID returns the element whose id attribute equals id, if
// the document was parsed with id tracking enabled (the default) and
// such an element exists.
func (d *DOM) GetElementByID(id string) (Handle, bool) {
	if d.idIndex == nil {
		return NoHandle, false
	}
	h, ok := d.idIndex[id]
	return h, ok
}

// GetElementsByClassName returns every element carrying name as one of
// its class tokens, in document order. If the document was parsed with
// WithTrackClasses(true), this is an index lookup; otherwise it falls
// back to a full arena scan, which is still correct, just not O(1).
func (d *DOM) GetElementsByClassName(name string) []Handle {
	if d.classIndex != nil {
		return append([]Handle(nil), d.classIndex[name]...)
	}
	var out []Handle
	for i := 1; i <= d.arena.Len(); i++ {
		h := Handle(i)
		n := &d.arena.nodes[h]
		if n.IsElement() && n.Attrs.IsClassMember(name) {
			out = append(out, h)
		}
	}
	return out
}

// ChildrenView exposes h's direct children and its full descendant set,
// following spec.md §4.4/§6's Element.children() -> {top(), all()}.
type ChildrenView struct {
	dom *DOM
	h   Handle
}

// Children returns a view over h's children.
func (d *DOM) Children(h Handle) ChildrenView {
	return ChildrenView{dom: d, h: h}
}

// Top returns h's direct children, in document order.
func (c ChildrenView) Top() []Handle {
	return c.dom.arena.Resolve(c.h).Children.All()
}

// All returns every transitive descendant of h, in pre-order: a node
// always precedes its own children in the result.
func (c ChildrenView) All() []Handle {
	var out []Handle
	var walk func(Handle)
	walk = func(h Handle) {
		n := c.dom.arena.Resolve(h)
		for i := 0; i < n.Children.Len(); i++ {
			child := n.Children.At(i)
			out = append(out, child)
			walk(child)
		}
	}
	walk(c.h)
	return out
}

// Find performs a depth-first, document-order, short-circuiting search
// starting at root (root itself is visited first), returning the first
// handle for which pred returns true. This supplements the selector
// matcher for one-off predicate lookups, following
// original_source/src/parser/tag.rs's HTMLTag::find_node.
func (d *DOM) Find(root Handle, pred func(Handle, *Node) bool) (Handle, bool) {
	var walk func(h Handle) (Handle, bool)
	walk = func(h Handle) (Handle, bool) {
		n := d.arena.Resolve(h)
		if pred(h, n) {
			return h, true
		}
		for i := 0; i < n.Children.Len(); i++ {
			if found, ok := walk(n.Children.At(i)); ok {
				return found, true
			}
		}
		return NoHandle, false
	}
	return walk(root)
}

// Query compiles sel and matches it against the whole document,
// returning matching handles in document order.
func (d *DOM) Query(sel string) ([]Handle, error) {
	compiled, err := query.Compile(sel)
	if err != nil {
		return nil, err
	}
	matches := query.MatchAll(d, compiled)
	handles := make([]Handle, len(matches))
	for i, m := range matches {
		handles[i] = Handle(m)
	}
	return handles, nil
}

// QuerySubtree compiles sel and matches it within root's subtree, never
// including root itself.
func (d *DOM) QuerySubtree(root Handle, sel string) ([]Handle, error) {
	compiled, err := query.Compile(sel)
	if err != nil {
		return nil, err
	}
	matches := query.MatchSubtree(d, uint32(root), compiled)
	handles := make([]Handle, len(matches))
	for i, m := range matches {
		handles[i] = Handle(m)
	}
	return handles, nil
}

// SetAttribute sets an attribute on an element node, replacing any
// existing value, and keeps the id/class indexes consistent.
func (d *DOM) SetAttribute(h Handle, key, value string) error {
	n := d.arena.Resolve(h)
	if n.Kind != KindElement {
		return &TypeMismatchError{Handle: h, Expected: KindElement, Actual: n.Kind}
	}
	d.unindex(h, n)
	n.Attrs.Insert([]byte(key), []byte(value), true)
	d.reindex(h, n)
	d.invalidateBoundary(h)
	return nil
}

// RemoveAttribute deletes an attribute entirely.
func (d *DOM) RemoveAttribute(h Handle, key string) error {
	n := d.arena.Resolve(h)
	if n.Kind != KindElement {
		return &TypeMismatchError{Handle: h, Expected: KindElement, Actual: n.Kind}
	}
	d.unindex(h, n)
	n.Attrs.Remove(key)
	d.reindex(h, n)
	d.invalidateBoundary(h)
	return nil
}

// invalidateBoundary marks h and every ancestor up to the root as no
// longer backed by a valid raw-input slice, per spec.md's lifecycle
// rule that mutating an element invalidates its boundary and those of
// its ancestors transitively. The walk does not stop at a node that is
// already invalid: an element truncated by MaxDepth starts out invalid
// while its ancestors are still valid.
func (d *DOM) invalidateBoundary(h Handle) {
	for h != NoHandle {
		n, ok := d.arena.TryResolve(h)
		if !ok {
			return
		}
		n.BoundaryValid = false
		h = n.Parent
	}
}

func (d *DOM) unindex(h Handle, n *Node) {
	if d.idIndex != nil {
		if v, ok := n.Attrs.Get("id"); ok {
			if cur, ok2 := d.idIndex[v.String()]; ok2 && cur == h {
				delete(d.idIndex, v.String())
			}
		}
	}
	if d.classIndex != nil {
		for _, c := range n.Attrs.ClassTokens() {
			k := c.String()
			list := d.classIndex[k]
			for i, hh := range list {
				if hh == h {
					d.classIndex[k] = append(list[:i], list[i+1:]...)
					break
				}
			}
		}
	}
}

func (d *DOM) reindex(h Handle, n *Node) {
	if d.idIndex != nil {
		if v, ok := n.Attrs.Get("id"); ok && v.Len() > 0 {
			d.idIndex[v.String()] = h
		}
	}
	if d.classIndex != nil {
		for _, c := range n.Attrs.ClassTokens() {
			k := c.String()
			d.classIndex[k] = append(d.classIndex[k], h)
		}
	}
}

// AppendChild appends h as the last child of parent, fixing up h's
// Parent link. Both handles must already belong to this DOM's arena.
func (d *DOM) AppendChild(parent, h Handle) {
	d.arena.Resolve(h).Parent = parent
	d.arena.Resolve(parent).Children.Append(h)
	d.invalidateBoundary(parent)
}

// RemoveChild unlinks h from parent's children without removing h from
// the arena: h remains resolvable, just detached, following the arena's
// append-only, no-removal invariant.
func (d *DOM) RemoveChild(parent, h Handle) bool {
	removed := d.arena.Resolve(parent).Children.Remove(h)
	if removed {
		d.invalidateBoundary(parent)
	}
	return removed
}

// --- query.Document implementation ---
//
// vdom/query depends only on this interface (and primitive types), never
// on this package, so there is no import cycle between vdom and
// vdom/query.

func (d *DOM) QueryRoots() []uint32 {
	roots := d.arena.Roots()
	out := make([]uint32, len(roots))
	for i, h := range roots {
		out[i] = uint32(h)
	}
	return out
}

func (d *DOM) QueryIsElement(h uint32) bool {
	n, ok := d.arena.TryResolve(Handle(h))
	return ok && n.IsElement()
}

func (d *DOM) QueryTagName(h uint32) string {
	return d.arena.Resolve(Handle(h)).TagName()
}

func (d *DOM) QueryAttr(h uint32, key string) (string, bool) {
	n := d.arena.Resolve(Handle(h))
	v, ok := n.Attrs.Get(key)
	return v.String(), ok
}

func (d *DOM) QueryHasAttr(h uint32, key string) bool {
	return d.arena.Resolve(Handle(h)).Attrs.Contains(key)
}

func (d *DOM) QueryClassTokens(h uint32) []string {
	n := d.arena.Resolve(Handle(h))
	toks := n.Attrs.ClassTokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}

func (d *DOM) QueryParent(h uint32) (uint32, bool) {
	n := d.arena.Resolve(Handle(h))
	if n.Parent == NoHandle {
		return 0, false
	}
	return uint32(n.Parent), true
}

func (d *DOM) QueryChildren(h uint32) []uint32 {
	n := d.arena.Resolve(Handle(h))
	all := n.Children.All()
	out := make([]uint32, len(all))
	for i, c := range all {
		out[i] = uint32(c)
	}
	return out
}
