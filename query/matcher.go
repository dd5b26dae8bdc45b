package query

import "strings"

// MatchAll returns every handle in doc that matches sel, in document
// order, walking the whole tree depth-first from the roots.
func MatchAll(doc Document, sel *Selector) []uint32 {
	var out []uint32
	var walk func(h uint32)
	walk = func(h uint32) {
		if doc.QueryIsElement(h) && matches(doc, h, sel) {
			out = append(out, h)
		}
		for _, c := range doc.QueryChildren(h) {
			walk(c)
		}
	}
	for _, r := range doc.QueryRoots() {
		walk(r)
	}
	return out
}

// MatchSubtree is MatchAll scoped to root's subtree, excluding root
// itself.
func MatchSubtree(doc Document, root uint32, sel *Selector) []uint32 {
	var out []uint32
	var walk func(h uint32)
	walk = func(h uint32) {
		if doc.QueryIsElement(h) && matches(doc, h, sel) {
			out = append(out, h)
		}
		for _, c := range doc.QueryChildren(h) {
			walk(c)
		}
	}
	for _, c := range doc.QueryChildren(root) {
		walk(c)
	}
	return out
}

// matches anchors sel's last compound selector on h, then walks the
// ancestor chain backward through the remaining steps.
func matches(doc Document, h uint32, sel *Selector) bool {
	if len(sel.steps) == 0 {
		return false
	}
	last := len(sel.steps) - 1
	if !compoundMatches(doc, h, sel.steps[last].Compound) {
		return false
	}
	return ancestorsSatisfy(doc, h, sel.steps, last)
}

// ancestorsSatisfy checks steps[0..i) against h's ancestors, given that
// steps[i] already matched h itself.
func ancestorsSatisfy(doc Document, h uint32, steps []step, i int) bool {
	if i == 0 {
		return true
	}
	comb := steps[i].Combinator
	switch comb {
	case Child:
		parent, ok := doc.QueryParent(h)
		if !ok {
			return false
		}
		if !compoundMatches(doc, parent, steps[i-1].Compound) {
			return false
		}
		return ancestorsSatisfy(doc, parent, steps, i-1)
	default: // Descendant
		cur := h
		for {
			parent, ok := doc.QueryParent(cur)
			if !ok {
				return false
			}
			if compoundMatches(doc, parent, steps[i-1].Compound) {
				if ancestorsSatisfy(doc, parent, steps, i-1) {
					return true
				}
				// This ancestor matched the compound but not the rest of
				// the chain; keep climbing in case a further ancestor
				// also matches and satisfies the remaining steps.
			}
			cur = parent
		}
	}
}

func compoundMatches(doc Document, h uint32, c CompoundSelector) bool {
	if !doc.QueryIsElement(h) {
		return false
	}
	if c.Tag != "" && !strings.EqualFold(doc.QueryTagName(h), c.Tag) {
		return false
	}
	if c.ID != "" {
		v, ok := doc.QueryAttr(h, "id")
		if !ok || v != c.ID {
			return false
		}
	}
	for _, class := range c.Classes {
		if !hasClass(doc.QueryClassTokens(h), class) {
			return false
		}
	}
	for _, pred := range c.Attrs {
		if !matchAttrPredicate(doc, h, pred) {
			return false
		}
	}
	if c.exprProg != nil {
		if !evalExprPredicate(doc, h, c) {
			return false
		}
	}
	return true
}

func hasClass(tokens []string, name string) bool {
	for _, t := range tokens {
		if t == name {
			return true
		}
	}
	return false
}

func matchAttrPredicate(doc Document, h uint32, pred AttrPredicate) bool {
	switch pred.Op {
	case AttrExists:
		return doc.QueryHasAttr(h, pred.Key)
	case AttrEquals:
		v, ok := doc.QueryAttr(h, pred.Key)
		return ok && v == pred.Value
	case AttrIncludes:
		v, ok := doc.QueryAttr(h, pred.Key)
		if !ok {
			return false
		}
		for _, tok := range strings.Fields(v) {
			if tok == pred.Value {
				return true
			}
		}
		return false
	case AttrDashMatch:
		v, ok := doc.QueryAttr(h, pred.Key)
		if !ok {
			return false
		}
		return v == pred.Value || strings.HasPrefix(v, pred.Value+"-")
	case AttrPrefix:
		v, ok := doc.QueryAttr(h, pred.Key)
		return ok && pred.Value != "" && strings.HasPrefix(v, pred.Value)
	case AttrSuffix:
		v, ok := doc.QueryAttr(h, pred.Key)
		return ok && pred.Value != "" && strings.HasSuffix(v, pred.Value)
	case AttrSubstring:
		v, ok := doc.QueryAttr(h, pred.Key)
		return ok && pred.Value != "" && strings.Contains(v, pred.Value)
	default:
		return false
	}
}

// evalExprPredicate evaluates a compiled :expr(...) program against an
// environment describing h: its tag, id, class tokens, and an attr()
// function for attribute lookups. Additive only — ordinary selectors
// never reach this path.
func evalExprPredicate(doc Document, h uint32, c CompoundSelector) bool {
	id, _ := doc.QueryAttr(h, "id")
	env := map[string]any{
		"tag":  doc.QueryTagName(h),
		"id":   id,
		"class": doc.QueryClassTokens(h),
		"attr": func(key string) string {
			v, _ := doc.QueryAttr(h, key)
			return v
		},
		"hasAttr": func(key string) bool {
			return doc.QueryHasAttr(h, key)
		},
	}
	result, err := runExprProgram(c, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}
