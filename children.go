package vdom

// ChildList holds the ordered handles of a node's direct children. Up to
// inlineChildren handles live in the fixed-size array with no heap
// allocation; beyond that the list spills into a backing slice. This
// mirrors original_source/src/inline/vec.rs's small-inline-then-heap
// container, applied here to child lists rather than attribute pairs.
const inlineChildren = 4

// ChildList is a value type; its zero value is an empty list.
type ChildList struct {
	inline [inlineChildren]Handle
	n      int
	spill  []Handle
}

// Len returns the number of children.
func (c *ChildList) Len() int {
	if c.spill != nil {
		return len(c.spill)
	}
	return c.n
}

// At returns the i'th child handle. It panics if i is out of range,
// matching slice indexing semantics.
func (c *ChildList) At(i int) Handle {
	if c.spill != nil {
		return c.spill[i]
	}
	if i < 0 || i >= c.n {
		panic("vdom: ChildList index out of range")
	}
	return c.inline[i]
}

// All returns the children as a slice. For inline lists this allocates a
// fresh slice; callers on a hot path should prefer At/Len.
func (c *ChildList) All() []Handle {
	if c.spill != nil {
		return c.spill
	}
	out := make([]Handle, c.n)
	copy(out, c.inline[:c.n])
	return out
}

// Append adds h as the last child.
func (c *ChildList) Append(h Handle) {
	if c.spill != nil {
		c.spill = append(c.spill, h)
		return
	}
	if c.n < inlineChildren {
		c.inline[c.n] = h
		c.n++
		return
	}
	c.spill = make([]Handle, c.n, c.n*2+1)
	copy(c.spill, c.inline[:c.n])
	c.spill = append(c.spill, h)
}

// Remove deletes the first occurrence of h, shifting later children down.
// Reports whether h was found.
func (c *ChildList) Remove(h Handle) bool {
	if c.spill != nil {
		for i, v := range c.spill {
			if v == h {
				c.spill = append(c.spill[:i], c.spill[i+1:]...)
				return true
			}
		}
		return false
	}
	for i := 0; i < c.n; i++ {
		if c.inline[i] == h {
			copy(c.inline[i:c.n-1], c.inline[i+1:c.n])
			c.n--
			return true
		}
	}
	return false
}
