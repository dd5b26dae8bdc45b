package vdom

import "strings"

// Raw returns the node's source text: for text/comment/raw nodes, the
// bytes captured during parsing; for an element, its outer HTML (a raw
// slice of the input when its boundary is still valid, reconstructed
// otherwise — see OuterHTML).
func (d *DOM) Raw(h Handle) string {
	n := d.arena.Resolve(h)
	switch n.Kind {
	case KindElement:
		return d.OuterHTML(h)
	case KindComment:
		return "<!--" + n.Data.String() + "-->"
	default:
		return n.Data.String()
	}
}

// OuterHTML serializes h and its subtree, including h's own tag. When
// h's boundary offsets are still valid — no mutation has touched h or
// any descendant since parsing — this is a direct slice of the original
// input (spec.md's invariant that outer_html equals input[start:end)
// whenever the boundary holds); otherwise it falls back to
// reconstructing the markup from the arena.
func (d *DOM) OuterHTML(h Handle) string {
	n := d.arena.Resolve(h)
	if n.Kind == KindElement && n.BoundaryValid {
		return string(d.input[n.BoundaryStart:n.BoundaryEnd])
	}
	var sb strings.Builder
	d.serializeNode(&sb, h)
	return sb.String()
}

// InnerHTML serializes h's children only, excluding h's own tag. For a
// non-element node it returns the same thing Raw would for its content.
func (d *DOM) InnerHTML(h Handle) string {
	n := d.arena.Resolve(h)
	if n.Kind != KindElement {
		return d.Raw(h)
	}
	var sb strings.Builder
	for i := 0; i < n.Children.Len(); i++ {
		d.serializeNode(&sb, n.Children.At(i))
	}
	return sb.String()
}

func (d *DOM) serializeNode(sb *strings.Builder, h Handle) {
	n := d.arena.Resolve(h)
	switch n.Kind {
	case KindText:
		sb.WriteString(escapeText(n.Data.Slice()))
	case KindComment:
		sb.WriteString("<!--")
		sb.WriteString(n.Data.String())
		sb.WriteString("-->")
	case KindRaw:
		sb.WriteString(n.Data.String())
	case KindElement:
		d.serializeElement(sb, h, n)
	}
}

func (d *DOM) serializeElement(sb *strings.Builder, h Handle, n *Node) {
	name := n.Name.String()
	sb.WriteByte('<')
	sb.WriteString(name)
	n.Attrs.Each(func(key string, value Bytes, hasValue bool) {
		sb.WriteByte(' ')
		sb.WriteString(key)
		if hasValue {
			sb.WriteString(`="`)
			sb.WriteString(escapeAttrValue(value.Slice()))
			sb.WriteByte('"')
		}
	})
	if isVoidTag(n.Name.Slice()) {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')
	if isRawTextTag(n.Name.Slice()) {
		for i := 0; i < n.Children.Len(); i++ {
			child := d.arena.Resolve(n.Children.At(i))
			sb.WriteString(child.Data.String())
		}
	} else {
		for i := 0; i < n.Children.Len(); i++ {
			d.serializeNode(sb, n.Children.At(i))
		}
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

func escapeText(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func escapeAttrValue(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
