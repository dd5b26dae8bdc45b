// Package query implements the CSS-like selector compiler and matcher.
// It depends only on primitive types and the Document interface below,
// never on the root vdom package, so there is no import cycle: vdom
// imports query to implement DOM.Query, and query never imports vdom.
package query

// Document is the read-only view of a parsed tree that the matcher
// needs. *vdom.DOM implements this directly.
type Document interface {
	// QueryRoots returns the top-level node handles, in document order.
	QueryRoots() []uint32

	// QueryIsElement reports whether h is an element node; non-element
	// nodes never match any compound selector.
	QueryIsElement(h uint32) bool

	// QueryTagName returns the lowercased tag name of an element node.
	QueryTagName(h uint32) string

	// QueryAttr returns an attribute's value and whether it is present.
	QueryAttr(h uint32, key string) (string, bool)

	// QueryHasAttr reports whether an attribute is present at all.
	QueryHasAttr(h uint32, key string) bool

	// QueryClassTokens returns the element's class attribute tokens.
	QueryClassTokens(h uint32) []string

	// QueryParent returns h's parent handle, or ok=false at a root.
	QueryParent(h uint32) (uint32, bool)

	// QueryChildren returns h's direct children, in document order.
	QueryChildren(h uint32) []uint32
}
