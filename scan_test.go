package vdom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindByte4MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("ab>c \t")
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(64)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		for _, c := range []byte{'a', 'b', '>', 'z'} {
			from := 0
			if n > 0 {
				from = rng.Intn(n)
			}
			assert.Equal(t, findByte(buf, from, c), findByte4(buf, from, c))
		}
	}
}

func TestSkipWhitespaceASCII(t *testing.T) {
	assert.Equal(t, 0, skipWhitespaceASCII([]byte("abc"), 0))
	assert.Equal(t, 3, skipWhitespaceASCII([]byte("   abc"), 0))
	assert.Equal(t, 5, skipWhitespaceASCII([]byte("  \t\n\r"), 0))
}

func TestEqualFoldASCII(t *testing.T) {
	assert.True(t, equalFoldASCII([]byte("DOCTYPE html>"), 0, "doctype"))
	assert.True(t, equalFoldASCII([]byte("Script"), 0, "script"))
	assert.False(t, equalFoldASCII([]byte("Scrip"), 0, "script"))
	assert.False(t, equalFoldASCII([]byte("styLe"), 1, "style"))
}

func TestFindAny(t *testing.T) {
	assert.Equal(t, 3, findAny([]byte("abc>d"), 0, '>', '/'))
	assert.Equal(t, -1, findAny([]byte("abcd"), 0, '>', '/'))
}
