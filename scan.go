package vdom

// Byte-scan primitives used by the tokenizer. These are deliberately
// portable: a scalar loop plus a manually unrolled 16-byte-block variant,
// both producing byte-identical results for any input. No SIMD; spec.md's
// own allowance is that SIMD is an implementation choice, not a separate
// contract, so only the fallback path exists here.

// findByte returns the index of the first occurrence of c in b at or
// after from, or -1 if not found.
func findByte(b []byte, from int, c byte) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// findAny returns the index of the first occurrence of any byte in set
// at or after from, or -1 if none is found.
func findAny(b []byte, from int, set ...byte) int {
	for i := from; i < len(b); i++ {
		for _, c := range set {
			if b[i] == c {
				return i
			}
		}
	}
	return -1
}

// findByte4 is the unrolled variant of findByte, processing 16-byte
// blocks before falling back to a scalar tail. It must return exactly
// what findByte would return for the same input.
func findByte4(b []byte, from int, c byte) int {
	i := from
	n := len(b)
	for ; i+16 <= n; i += 16 {
		block := b[i : i+16]
		for j := 0; j < 16; j++ {
			if block[j] == c {
				return i + j
			}
		}
	}
	for ; i < n; i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// isASCIISpace reports whether c is HTML whitespace: space, tab, LF, FF, CR.
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// skipWhitespaceASCII advances from past any run of HTML whitespace bytes.
func skipWhitespaceASCII(b []byte, from int) int {
	i := from
	for i < len(b) && isASCIISpace(b[i]) {
		i++
	}
	return i
}

// equalFoldASCII reports whether b, starting at from, begins with the
// keyword kw under ASCII case-insensitive comparison. kw must already be
// lowercase. Returns false if b is shorter than kw.
func equalFoldASCII(b []byte, from int, kw string) bool {
	if from < 0 || from+len(kw) > len(b) {
		return false
	}
	for i := 0; i < len(kw); i++ {
		c := b[from+i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != kw[i] {
			return false
		}
	}
	return true
}

// lowerASCIIByte folds a single ASCII byte to lowercase.
func lowerASCIIByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// appendLowerASCII appends the ASCII-lowercased form of b onto dst.
func appendLowerASCII(dst, b []byte) []byte {
	for _, c := range b {
		dst = append(dst, lowerASCIIByte(c))
	}
	return dst
}

// isNameByte reports whether c may appear in an HTML tag or attribute
// name: anything but whitespace, '/', '>', and '='.
func isNameByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r', '/', '>', '=':
		return false
	default:
		return true
	}
}
