// Package traits holds the character policies a view is parameterised by.
package traits

import (
	"bytes"
	"cmp"
	"slices"
)

// Traits supplies the character-level primitives a view relies on.
// Implementations are zero-size types picked through a type parameter.
type Traits[C any] interface {
	// Length reports the number of characters before the first zero
	// character, or len(s) if there is none.
	Length(s []C) int

	// Compare orders the first n characters of a and b.
	Compare(a, b []C, n int) int

	// Copy copies n characters of src into dst and returns the count copied.
	Copy(dst, src []C, n int) int

	Eq(a, b C) bool
}

// Bytes is the policy for plain byte strings.
type Bytes struct{}

func (Bytes) Length(s []byte) int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

func (Bytes) Compare(a, b []byte, n int) int {
	return bytes.Compare(a[:n], b[:n])
}

func (Bytes) Copy(dst, src []byte, n int) int {
	return copy(dst, src[:n])
}

func (Bytes) Eq(a, b byte) bool {
	return a == b
}

// Ordered is the policy for any ordered character type, e.g. uint16 code
// units or runes.
type Ordered[C cmp.Ordered] struct{}

func (Ordered[C]) Length(s []C) int {
	var zero C
	if i := slices.Index(s, zero); i >= 0 {
		return i
	}
	return len(s)
}

func (Ordered[C]) Compare(a, b []C, n int) int {
	return slices.Compare(a[:n], b[:n])
}

func (Ordered[C]) Copy(dst, src []C, n int) int {
	return copy(dst, src[:n])
}

func (Ordered[C]) Eq(a, b C) bool {
	return a == b
}

// Runes is the policy for decoded code points.
type Runes = Ordered[rune]

// FoldBytes compares ASCII letters without regard to case. Bytes outside
// A-Z/a-z compare as themselves.
type FoldBytes struct{}

func (FoldBytes) Length(s []byte) int {
	return Bytes{}.Length(s)
}

func (FoldBytes) Compare(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		if c := cmp.Compare(lower(a[i]), lower(b[i])); c != 0 {
			return c
		}
	}
	return 0
}

func (FoldBytes) Copy(dst, src []byte, n int) int {
	return copy(dst, src[:n])
}

func (FoldBytes) Eq(a, b byte) bool {
	return lower(a) == lower(b)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
