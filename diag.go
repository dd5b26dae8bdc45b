package vdom

import (
	"strings"

	"github.com/beevik/etree"
)

// Dump renders h's subtree as an indented pseudo-HTML tree, for tests
// and ad-hoc debugging. It is diagnostic only — never on the parse path
// and never fed back into the arena — following the teacher's own use
// of etree purely for illustrative error-context rendering
// (chtml/err.go's buildErrorContext/renderErrorContext): an *etree.Element
// tree is built up with AddChild/etree.NewText, then walked by hand to
// produce the final text, the same two-step shape err.go uses.
func (d *DOM) Dump(h Handle) string {
	root := d.buildDiagElement(h)
	var sb strings.Builder
	renderDiagElement(&sb, root, 0)
	return sb.String()
}

// DumpAll renders every root node in document order, separated by blank
// lines.
func (d *DOM) DumpAll() string {
	var sb strings.Builder
	for i, h := range d.arena.Roots() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.Dump(h))
	}
	return sb.String()
}

// buildDiagElement turns h's subtree into an *etree.Element tree.
// Non-element nodes become etree.CharData, prefixed so Dump's output
// distinguishes text from comments and raw markup.
func (d *DOM) buildDiagElement(h Handle) *etree.Element {
	n := d.arena.Resolve(h)
	if n.Kind != KindElement {
		el := &etree.Element{Tag: diagKindLabel(n.Kind)}
		el.AddChild(etree.NewText(n.Data.String()))
		return el
	}

	el := &etree.Element{Tag: n.Name.String()}
	n.Attrs.Each(func(key string, value Bytes, hasValue bool) {
		v := ""
		if hasValue {
			v = value.String()
		}
		el.Attr = append(el.Attr, etree.Attr{Key: key, Value: v})
	})
	for i := 0; i < n.Children.Len(); i++ {
		el.AddChild(d.buildDiagElement(n.Children.At(i)))
	}
	return el
}

func diagKindLabel(k NodeKind) string {
	switch k {
	case KindText:
		return "#text"
	case KindComment:
		return "#comment"
	default:
		return "#raw"
	}
}

// renderDiagElement walks the etree.Element tree built by
// buildDiagElement, following renderErrorContext's own traversal shape,
// and writes an indented pseudo-HTML rendering to sb.
func renderDiagElement(sb *strings.Builder, el *etree.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	if strings.HasPrefix(el.Tag, "#") {
		for _, c := range el.Child {
			if cd, ok := c.(*etree.CharData); ok {
				sb.WriteString(indent)
				sb.WriteString(el.Tag)
				sb.WriteString(": ")
				sb.WriteString(cd.Data)
				sb.WriteByte('\n')
			}
		}
		return
	}

	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	for _, a := range el.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteString(">\n")
	for _, c := range el.Child {
		if childEl, ok := c.(*etree.Element); ok {
			renderDiagElement(sb, childEl, depth+1)
		}
	}
}
