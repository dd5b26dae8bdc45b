package vdom

import "golang.org/x/net/html/atom"

// Tag classification mirrors the teacher's use of golang.org/x/net/html/atom
// for canonicalization (chtml/node.go's DataAtom field), reused here only
// as a lookup table for void/raw-text status — not for the tree-builder
// that package also implements.

var voidTags = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
	atom.Keygen: true,
}

var rawTextTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Title:    true,
}

// tagAtom looks up the atom for a (usually already lowercased) tag name,
// returning atom.Atom(0) if the tag is not a well-known one — unknown tags
// are never void or raw-text.
func tagAtom(name []byte) atom.Atom {
	return atom.Lookup(name)
}

// isVoidTag reports whether a lowercase tag name is one of the fixed set
// of HTML void elements, which never receive a close tag or children.
func isVoidTag(name []byte) bool {
	a := tagAtom(name)
	if a == 0 {
		return false
	}
	return voidTags[a]
}

// isRawTextTag reports whether a lowercase tag name's content should be
// consumed verbatim up to its matching end tag, rather than tokenized.
func isRawTextTag(name []byte) bool {
	a := tagAtom(name)
	if a == 0 {
		return false
	}
	return rawTextTags[a]
}
