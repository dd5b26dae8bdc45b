package vdom

// NodeKind distinguishes the handful of node shapes the arena stores.
// Following the teacher's chtml/node.go, a single tagged-variant struct
// represents all kinds rather than one Go type per kind.
type NodeKind uint8

const (
	// KindElement is a tag node: <name attr...>children</name>.
	KindElement NodeKind = iota
	// KindText is a run of character data between tags.
	KindText
	// KindComment is a <!-- ... --> node. Its Bytes holds the interior,
	// excluding the delimiters.
	KindComment
	// KindRaw is a markup declaration this core does not interpret
	// further: <!DOCTYPE ...>, <![CDATA[...]]>, or a generic <! / <?
	// construct. Its Bytes holds the full construct including delimiters.
	KindRaw
)

// Node is one entry in the arena. Parent and child links are Handles
// into the same arena; NoHandle marks an absent link.
type Node struct {
	Kind NodeKind

	// Name holds the lowercased tag name for KindElement nodes only.
	Name Bytes

	// Data holds the text content of KindText nodes, the interior of
	// KindComment nodes, or the full source of KindRaw nodes.
	Data Bytes

	// Attrs holds the attribute store for KindElement nodes only; it is
	// the zero value for all other kinds.
	Attrs Attributes

	Parent   Handle
	Children ChildList

	// BoundaryStart/BoundaryEnd mark an element's [start, end) byte range
	// in the original parse input, letting OuterHTML slice the input
	// directly instead of re-serializing. BoundaryValid is false for
	// every non-element node, and for any element after a mutation
	// touched it or a descendant — see DOM.invalidateBoundary.
	BoundaryStart int
	BoundaryEnd   int
	BoundaryValid bool
}

// IsElement reports whether the node is a tag node.
func (n *Node) IsElement() bool {
	return n.Kind == KindElement
}

// TagName returns the lowercased tag name for an element node, or an
// empty string for any other kind.
func (n *Node) TagName() string {
	if n.Kind != KindElement {
		return ""
	}
	return n.Name.String()
}

// Text returns the node's character data: the text run for KindText,
// the comment interior for KindComment, the full construct for KindRaw,
// and an empty string for KindElement.
func (n *Node) Text() string {
	return n.Data.String()
}
