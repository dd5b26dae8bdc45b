package vdom

// Parse is the entry point: it tokenizes input and builds the arena in a
// single pass, following the teacher's chtmlParser receiver-based layout
// (chtml/parse.go) for Go style, and original_source/src/parser/base.rs's
// parse_tag/parse_attributes/parse_single control flow for the algorithm.
func Parse(input []byte, opts ...Option) (*DOM, error) {
	if uint64(len(input)) > 0xFFFFFFFF {
		return nil, &ParseError{Offset: 0, Err: ErrInputTooLong}
	}
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{input: input, arena: NewArena(len(input) / 8), opts: o}
	if o.TrackIDs {
		p.idIndex = make(map[string]Handle)
	}
	if o.TrackClasses {
		p.classIndex = make(map[string][]Handle)
	}

	p.parseChildren(NoHandle, "", 0)

	return &DOM{
		input:      input,
		arena:      p.arena,
		opts:       o,
		idIndex:    p.idIndex,
		classIndex: p.classIndex,
		doctype:    p.doctype,
		hasDoctype: p.hasDoctype,
	}, nil
}

// parser holds the mutable state of one parse pass. It is discarded once
// Parse returns; long-lived state lives in the DOM and Arena it produces.
type parser struct {
	input []byte
	pos   int

	arena *Arena
	opts  ParseOptions

	idIndex    map[string]Handle
	classIndex map[string][]Handle

	doctype    string
	hasDoctype bool

	// openNames is the stack of currently open element tag names,
	// outermost first. It backs the lenient end-tag matching rule: an
	// end tag that doesn't name the innermost open element may still
	// close it (and any elements between it and the matching ancestor)
	// if its name appears anywhere on this stack.
	openNames []string
}

func isTagNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lowercaseCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = lowerASCIIByte(c)
	}
	return out
}

func hasPrefixAt(b []byte, pos int, prefix string) bool {
	if pos < 0 || pos+len(prefix) > len(b) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if b[pos+i] != prefix[i] {
			return false
		}
	}
	return true
}

// indexOfString returns the index of the first occurrence of sub in b at
// or after from, or -1. Used for the small set of fixed closing markers
// (-->, ]]>) rather than arbitrary substring search.
func indexOfString(b []byte, from int, sub string) int {
	if len(sub) == 0 {
		return from
	}
	limit := len(b) - len(sub)
	for i := from; i <= limit; i++ {
		if hasPrefixAt(b, i, sub) {
			return i
		}
	}
	return -1
}

func (p *parser) attachChild(parent Handle, h Handle) {
	if parent == NoHandle {
		p.arena.addRoot(h)
		return
	}
	p.arena.Resolve(parent).Children.Append(h)
}

func (p *parser) emitText(parent Handle, start, end int) {
	if start >= end {
		return
	}
	h := p.arena.Alloc(Node{Kind: KindText, Data: BorrowedBytes(p.input[start:end]), Parent: parent})
	p.attachChild(parent, h)
}

func (p *parser) matchesAncestor(name string) bool {
	for _, n := range p.openNames {
		if n == name {
			return true
		}
	}
	return false
}

// parseChildren consumes nodes belonging to parent (NoHandle for the
// document root) until it sees an end tag that can't be this level's own
// closing tag, or runs out of input. ownName is the tag name parent was
// opened with (empty at the root, which never matches an end tag).
//
// Return value: when a mismatched end tag forces this level to close
// early, closedBy names the end tag that caused it and hasClosedBy is
// true, so the caller (one level up) can decide whether that end tag is
// theirs to consume.
func (p *parser) parseChildren(parent Handle, ownName string, depth uint32) (closedBy string, hasClosedBy bool) {
	for p.pos < len(p.input) {
		start := p.pos
		lt := findByte4(p.input, p.pos, '<')
		if lt < 0 {
			p.emitText(parent, start, len(p.input))
			p.pos = len(p.input)
			return "", false
		}
		p.emitText(parent, start, lt)
		p.pos = lt

		var next byte
		if p.pos+1 < len(p.input) {
			next = p.input[p.pos+1]
		}

		switch {
		case next == '/':
			name, ok := p.scanEndTagName()
			if !ok {
				continue
			}
			if !p.matchesAncestor(name) {
				continue // stray end tag with no open match: ignore it
			}
			if name == ownName {
				return "", false
			}
			return name, true
		case next == '!':
			p.parseBang(parent)
		case next == '?':
			p.parsePI(parent)
		case isTagNameStart(next):
			childClosedBy, childHas := p.parseElement(parent, depth)
			if childHas {
				if childClosedBy == ownName {
					return "", false
				}
				return childClosedBy, true
			}
		default:
			// A lone '<' that doesn't start any recognized construct is
			// literal content.
			p.emitText(parent, p.pos, p.pos+1)
			p.pos++
		}
	}
	return "", false
}

// scanEndTagName parses "</name" possibly-followed-by-attributes-like
// junk up through '>' (or EOF), starting with p.pos at the '<' of "</".
// It always advances p.pos, so malformed input can never stall the loop.
func (p *parser) scanEndTagName() (string, bool) {
	p.pos += 2 // "</"
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	raw := p.input[start:p.pos]
	gt := findByte4(p.input, p.pos, '>')
	if gt < 0 {
		p.pos = len(p.input)
	} else {
		p.pos = gt + 1
	}
	if len(raw) == 0 {
		return "", false
	}
	return string(lowercaseCopy(raw)), true
}

// parseElement parses one start tag, its attributes, and — unless it is
// void, self-closing, raw-text, or past the depth ceiling — recurses into
// its children. The return value propagates a mismatched-end-tag close
// exactly like parseChildren's.
func (p *parser) parseElement(parent Handle, depth uint32) (closedBy string, hasClosedBy bool) {
	tagStart := p.pos
	p.pos++ // '<'
	nameStart := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	lname := lowercaseCopy(p.input[nameStart:p.pos])

	h := p.arena.Alloc(Node{Kind: KindElement, Name: OwnedBytes(lname), Parent: parent})
	p.attachChild(parent, h)

	p.parseAttributes(h)

	selfClosing := false
	p.pos = skipWhitespaceASCII(p.input, p.pos)
	if p.pos < len(p.input) && p.input[p.pos] == '/' {
		selfClosing = true
		p.pos++
	}
	if p.pos < len(p.input) && p.input[p.pos] == '>' {
		p.pos++
	}

	p.indexNode(h)

	if isVoidTag(lname) || selfClosing {
		p.setBoundary(h, tagStart, p.pos)
		return "", false
	}
	if isRawTextTag(lname) {
		p.scanRawUntilClose(h, lname)
		p.setBoundary(h, tagStart, p.pos)
		return "", false
	}
	if p.opts.MaxDepth != 0 && depth+1 > p.opts.MaxDepth {
		// Nesting ceiling reached: stop descending. The element stands
		// with no children; whatever follows in the input is parsed as
		// if at this same level, which truncates the subtree without
		// leaving the arena or the cursor in an inconsistent state. Its
		// boundary is left invalid, per spec.md's invariant that a
		// truncated element's boundary is marked invalid.
		return "", false
	}

	name := string(lname)
	p.openNames = append(p.openNames, name)
	closedBy, hasClosedBy = p.parseChildren(h, name, depth+1)
	p.openNames = p.openNames[:len(p.openNames)-1]
	p.setBoundary(h, tagStart, p.pos)
	return closedBy, hasClosedBy
}

// setBoundary records h's [start, end) source range, valid for OuterHTML
// to slice directly. Mutating h or a descendant later invalidates this
// via DOM.invalidateBoundary.
func (p *parser) setBoundary(h Handle, start, end int) {
	n := p.arena.Resolve(h)
	n.BoundaryStart = start
	n.BoundaryEnd = end
	n.BoundaryValid = true
}

// parseAttributes consumes name[=value] pairs up to the tag's closing
// '>' or '/>', following chtml/attr_scanner.go's scan-forward style.
func (p *parser) parseAttributes(h Handle) {
	node := p.arena.Resolve(h)
	for {
		p.pos = skipWhitespaceASCII(p.input, p.pos)
		if p.pos >= len(p.input) {
			return
		}
		c := p.input[p.pos]
		if c == '>' || c == '/' {
			return
		}
		nameStart := p.pos
		for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == nameStart {
			// Not a valid name byte and not '>' or '/': skip it so we
			// always make forward progress.
			p.pos++
			continue
		}
		name := p.input[nameStart:p.pos]

		save := p.pos
		p.pos = skipWhitespaceASCII(p.input, p.pos)
		if p.pos < len(p.input) && p.input[p.pos] == '=' {
			p.pos++
			p.pos = skipWhitespaceASCII(p.input, p.pos)
			var value []byte
			if p.pos < len(p.input) && (p.input[p.pos] == '"' || p.input[p.pos] == '\'') {
				quote := p.input[p.pos]
				p.pos++
				vstart := p.pos
				for p.pos < len(p.input) && p.input[p.pos] != quote {
					p.pos++
				}
				value = p.input[vstart:p.pos]
				if p.pos < len(p.input) {
					p.pos++
				}
			} else {
				vstart := p.pos
				end := findAny(p.input, p.pos, ' ', '\t', '\n', '\f', '\r', '>')
				if end < 0 {
					end = len(p.input)
				}
				p.pos = end
				value = p.input[vstart:p.pos]
			}
			node.Attrs.Insert(name, value, true)
		} else {
			p.pos = save
			node.Attrs.Insert(name, nil, false)
		}
	}
}

func (p *parser) indexNode(h Handle) {
	node := p.arena.Resolve(h)
	if p.idIndex != nil {
		if v, ok := node.Attrs.Get("id"); ok && v.Len() > 0 {
			p.idIndex[v.String()] = h
		}
	}
	if p.classIndex != nil {
		for _, c := range node.Attrs.ClassTokens() {
			k := c.String()
			p.classIndex[k] = append(p.classIndex[k], h)
		}
	}
}

// parseBang handles every "<!" construct: comments, CDATA sections,
// DOCTYPE declarations, and the generic "<!...>" fallback — including
// the edge case of "<!" landing right at EOF, which must terminate
// rather than loop.
func (p *parser) parseBang(parent Handle) {
	start := p.pos

	if hasPrefixAt(p.input, p.pos, "<!--") {
		p.pos += 4
		contentStart := p.pos
		end := indexOfString(p.input, p.pos, "-->")
		var contentEnd, after int
		if end < 0 {
			contentEnd, after = len(p.input), len(p.input)
		} else {
			contentEnd, after = end, end+3
		}
		h := p.arena.Alloc(Node{Kind: KindComment, Data: BorrowedBytes(p.input[contentStart:contentEnd]), Parent: parent})
		p.attachChild(parent, h)
		p.pos = after
		return
	}

	if hasPrefixAt(p.input, p.pos, "<![CDATA[") {
		p.pos += len("<![CDATA[")
		end := indexOfString(p.input, p.pos, "]]>")
		var after int
		if end < 0 {
			after = len(p.input)
		} else {
			after = end + 3
		}
		h := p.arena.Alloc(Node{Kind: KindRaw, Data: BorrowedBytes(p.input[start:after]), Parent: parent})
		p.attachChild(parent, h)
		p.pos = after
		return
	}

	if equalFoldASCII(p.input, p.pos+2, "doctype") {
		gt := findByte4(p.input, p.pos, '>')
		after := len(p.input)
		if gt >= 0 {
			after = gt + 1
		}
		full := p.input[start:after]
		p.recordDoctype(full)
		h := p.arena.Alloc(Node{Kind: KindRaw, Data: BorrowedBytes(full), Parent: parent})
		p.attachChild(parent, h)
		p.pos = after
		return
	}

	if p.pos+2 >= len(p.input) {
		// "<!" with nothing meaningful following, right at EOF.
		full := p.input[start:]
		p.pos = len(p.input)
		if len(full) > 0 {
			h := p.arena.Alloc(Node{Kind: KindRaw, Data: BorrowedBytes(full), Parent: parent})
			p.attachChild(parent, h)
		}
		return
	}

	gt := findByte4(p.input, p.pos, '>')
	after := len(p.input)
	if gt >= 0 {
		after = gt + 1
	}
	h := p.arena.Alloc(Node{Kind: KindRaw, Data: BorrowedBytes(p.input[start:after]), Parent: parent})
	p.attachChild(parent, h)
	p.pos = after
}

// parsePI handles a generic "<?...>" construct, consumed verbatim.
func (p *parser) parsePI(parent Handle) {
	start := p.pos
	gt := findByte4(p.input, p.pos, '>')
	after := len(p.input)
	if gt >= 0 {
		after = gt + 1
	}
	h := p.arena.Alloc(Node{Kind: KindRaw, Data: BorrowedBytes(p.input[start:after]), Parent: parent})
	p.attachChild(parent, h)
	p.pos = after
}

func (p *parser) recordDoctype(full []byte) {
	p.hasDoctype = true
	i := len("<!DOCTYPE")
	if i > len(full) {
		i = len(full)
	}
	i = skipWhitespaceASCII(full, i)
	start := i
	for i < len(full) && !isASCIISpace(full[i]) && full[i] != '>' {
		i++
	}
	if i > start {
		p.doctype = string(lowercaseCopy(full[start:i]))
	}
}

// scanRawUntilClose consumes the verbatim content of a raw-text element
// (script/style/textarea/title) up to its matching end tag, which is
// recognized case-insensitively and must be followed by whitespace, '/',
// '>', or EOF — so "</scriptx" inside a <script> body doesn't falsely
// close it.
func (p *parser) scanRawUntilClose(parent Handle, lname []byte) {
	start := p.pos
	closeTag := "</" + string(lname)

	for p.pos < len(p.input) {
		idx := findByte4(p.input, p.pos, '<')
		if idx < 0 {
			break
		}
		if equalFoldASCII(p.input, idx, closeTag) {
			after := idx + len(closeTag)
			if after >= len(p.input) || isASCIISpace(p.input[after]) || p.input[after] == '>' || p.input[after] == '/' {
				p.emitText(parent, start, idx)
				p.pos = idx
				gt := findByte4(p.input, p.pos, '>')
				if gt < 0 {
					p.pos = len(p.input)
				} else {
					p.pos = gt + 1
				}
				return
			}
		}
		p.pos = idx + 1
	}

	p.emitText(parent, start, len(p.input))
	p.pos = len(p.input)
}
