package vdom

// Bytes is a view over a run of bytes: either a borrowed slice of the
// original parse input, or an owned buffer that replaced a borrowed slice
// after a mutation. Both forms present the same read API.
//
// The zero value is an empty borrowed view.
type Bytes struct {
	raw   []byte
	owned bool
}

// BorrowedBytes wraps a slice of the original input. The caller must not
// mutate b afterwards; Bytes never copies on construction.
func BorrowedBytes(b []byte) Bytes {
	return Bytes{raw: b}
}

// OwnedBytes wraps a buffer that this Bytes value exclusively owns, e.g.
// the result of an attribute mutation.
func OwnedBytes(b []byte) Bytes {
	return Bytes{raw: b, owned: true}
}

// Slice returns the underlying bytes. The caller must not mutate the
// result of a borrowed Bytes, since it aliases the parser's input.
func (b Bytes) Slice() []byte {
	return b.raw
}

// String copies the view into a new string.
func (b Bytes) String() string {
	return string(b.raw)
}

// Len returns the number of bytes in the view.
func (b Bytes) Len() int {
	return len(b.raw)
}

// IsOwned reports whether this view holds an owned buffer rather than a
// borrowed slice of the original input.
func (b Bytes) IsOwned() bool {
	return b.owned
}

// Equal reports whether two views hold byte-identical content, regardless
// of whether either is borrowed or owned.
func (b Bytes) Equal(other Bytes) bool {
	return bytesEqual(b.raw, other.raw)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
