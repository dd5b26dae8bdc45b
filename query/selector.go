package query

import "github.com/expr-lang/expr/vm"

// runExprProgram evaluates c's compiled :expr(...) program against env.
func runExprProgram(c CompoundSelector, env map[string]any) (any, error) {
	return vm.Run(c.exprProg, env)
}

// AttrOp is one of the CSS3 attribute-predicate operators (spec.md
// §4.5), cross-checked against the canonical operator table in the
// pack's CSS3-selector reference material.
type AttrOp uint8

const (
	AttrExists    AttrOp = iota // [attr]
	AttrEquals                  // [attr=value]
	AttrIncludes                 // [attr~=value] — value is one of a whitespace-separated list
	AttrDashMatch                // [attr|=value] — value, or value followed by '-'
	AttrPrefix                   // [attr^=value]
	AttrSuffix                   // [attr$=value]
	AttrSubstring                // [attr*=value]
)

// AttrPredicate is one [attr op value] clause in a compound selector.
type AttrPredicate struct {
	Key   string
	Op    AttrOp
	Value string
}

// CompoundSelector is the set of predicates joined by implicit AND that
// must all hold for one node: a tag name, an id, zero or more class
// names, zero or more attribute predicates, and an optional :expr()
// predicate. A zero-value Tag ("") means "any tag".
type CompoundSelector struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   []AttrPredicate

	// ExprSource is the raw text inside :expr(...), or "" if absent.
	ExprSource string
	exprProg   *vm.Program
}

// Combinator connects one compound selector to the next one to its
// right in a Selector's chain.
type Combinator uint8

const (
	// None marks the first step, which has no combinator to its left.
	None Combinator = iota
	// Descendant is plain whitespace: "a b" matches any b inside a,
	// at any depth.
	Descendant
	// Child is '>': "a > b" matches a b that is a's direct child.
	Child
)

// step is one compound selector plus the combinator linking it to the
// previous step (ignored for the first step).
type step struct {
	Combinator Combinator
	Compound   CompoundSelector
}

// Selector is a compiled selector: a left-to-right chain of compound
// selectors joined by combinators. Matching always anchors on the last
// step and walks backward up the ancestor chain.
type Selector struct {
	steps []step
}
