package vdom

// inlineAttrs is the number of key/value pairs an Attributes store holds
// without allocating a lookup index, following
// original_source/src/inline/hashmap.rs's inline-then-promote shape.
const inlineAttrs = 4

// attrPair is one key/value entry. HasValue distinguishes a boolean
// attribute (present, no value, e.g. <input disabled>) from an
// attribute explicitly set to an empty string.
type attrPair struct {
	Key      Bytes
	Value    Bytes
	HasValue bool
}

// Attributes is an ordered key/value store for one element. Lookups
// scan the pairs slice linearly up to inlineAttrs entries; beyond that
// an index map from lowercased key to pair position is built and kept
// in sync, following original_source/src/parser/tag.rs's Attributes
// struct (separate id/class fields alongside a raw map).
type Attributes struct {
	pairs []attrPair
	index map[string]int // key (lowercased) -> index into pairs, once promoted

	id    Bytes
	hasID bool

	classes []Bytes // cached split of the class attribute, lowercased is not assumed
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.pairs)
}

// keyString lowercases an attribute key the way HTML attribute names are
// matched: ASCII case-insensitively.
func keyString(key []byte) string {
	buf := make([]byte, len(key))
	for i, c := range key {
		buf[i] = lowerASCIIByte(c)
	}
	return string(buf)
}

// find returns the pair index for key, or -1.
func (a *Attributes) find(key string) int {
	if a.index != nil {
		if i, ok := a.index[key]; ok {
			return i
		}
		return -1
	}
	for i := range a.pairs {
		if keyString(a.pairs[i].Key.Slice()) == key {
			return i
		}
	}
	return -1
}

// promoteIfNeeded builds the index map once pairs grows past
// inlineAttrs, so lookups on large attribute sets stay O(1) rather than
// O(n).
func (a *Attributes) promoteIfNeeded() {
	if a.index != nil || len(a.pairs) <= inlineAttrs {
		return
	}
	a.index = make(map[string]int, len(a.pairs))
	for i := range a.pairs {
		a.index[keyString(a.pairs[i].Key.Slice())] = i
	}
}

// Insert sets key to value, overwriting any existing attribute with the
// same name (case-insensitively). hasValue is false for boolean
// attributes. Insert also maintains the id and class caches.
func (a *Attributes) Insert(key, value []byte, hasValue bool) {
	k := keyString(key)
	if i := a.find(k); i >= 0 {
		a.pairs[i].Value = BorrowedBytes(value)
		a.pairs[i].HasValue = hasValue
	} else {
		a.pairs = append(a.pairs, attrPair{
			Key:      BorrowedBytes(key),
			Value:    BorrowedBytes(value),
			HasValue: hasValue,
		})
		if a.index != nil {
			a.index[k] = len(a.pairs) - 1
		}
		a.promoteIfNeeded()
	}
	switch k {
	case "id":
		a.id = BorrowedBytes(value)
		a.hasID = hasValue
	case "class":
		a.classes = splitClassTokens(value)
	}
}

// Get returns the value for key and whether it was present at all
// (including boolean attributes, whose value is empty and hasValue is
// false).
func (a *Attributes) Get(key string) (Bytes, bool) {
	i := a.find(keyString([]byte(key)))
	if i < 0 {
		return Bytes{}, false
	}
	return a.pairs[i].Value, true
}

// Contains reports whether key is present, regardless of value.
func (a *Attributes) Contains(key string) bool {
	return a.find(keyString([]byte(key))) >= 0
}

// Remove deletes key if present, reporting whether it was found.
func (a *Attributes) Remove(key string) bool {
	k := keyString([]byte(key))
	i := a.find(k)
	if i < 0 {
		return false
	}
	a.pairs = append(a.pairs[:i], a.pairs[i+1:]...)
	a.index = nil // indices shifted; rebuilt below if still over inlineAttrs
	a.promoteIfNeeded()
	switch k {
	case "id":
		a.id, a.hasID = Bytes{}, false
	case "class":
		a.classes = nil
	}
	return true
}

// RemoveValue clears key's value while leaving the attribute present as
// a boolean attribute. Reports whether key was found.
func (a *Attributes) RemoveValue(key string) bool {
	i := a.find(keyString([]byte(key)))
	if i < 0 {
		return false
	}
	a.pairs[i].Value = Bytes{}
	a.pairs[i].HasValue = false
	switch keyString([]byte(key)) {
	case "id":
		a.id, a.hasID = Bytes{}, false
	case "class":
		a.classes = nil
	}
	return true
}

// ID returns the element's id attribute value, if set.
func (a *Attributes) ID() (Bytes, bool) {
	return a.id, a.hasID
}

// Class returns the raw class attribute value, if set.
func (a *Attributes) Class() (Bytes, bool) {
	return a.Get("class")
}

// IsClassMember reports whether name is one of the whitespace-separated
// tokens in the class attribute.
func (a *Attributes) IsClassMember(name string) bool {
	for _, c := range a.classes {
		if c.String() == name {
			return true
		}
	}
	return false
}

// ClassTokens returns the whitespace-separated tokens of the class
// attribute, in document order, or nil if class is unset.
func (a *Attributes) ClassTokens() []Bytes {
	return a.classes
}

// Each calls fn for every attribute pair in document order.
func (a *Attributes) Each(fn func(key string, value Bytes, hasValue bool)) {
	for _, p := range a.pairs {
		fn(keyString(p.Key.Slice()), p.Value, p.HasValue)
	}
}

func splitClassTokens(value []byte) []Bytes {
	var out []Bytes
	i := 0
	for i < len(value) {
		for i < len(value) && isASCIISpace(value[i]) {
			i++
		}
		start := i
		for i < len(value) && !isASCIISpace(value[i]) {
			i++
		}
		if i > start {
			out = append(out, BorrowedBytes(value[start:i]))
		}
	}
	return out
}
