package String_View

import (
	"unsafe"

	"String_View/traits"
)

// String is a view over bytes.
type String = View[byte, traits.Bytes]

// Runes is a view over decoded code points.
type Runes = View[rune, traits.Runes]

// FoldString is a byte view whose comparisons and searches ignore ASCII
// case.
type FoldString = View[byte, traits.FoldBytes]

// FromString views the bytes of s without copying them.
func FromString(s string) String {
	return String{data: stringBytes(s)}
}

func FromBytes(b []byte) String {
	return Of[byte, traits.Bytes](b)
}

// FromCString views b up to its first NUL byte.
func FromCString(b []byte) String {
	return OfTerminated[byte, traits.Bytes](b)
}

func FromRunes(r []rune) Runes {
	return Of[rune, traits.Runes](r)
}

func FoldFromString(s string) FoldString {
	return FoldString{data: stringBytes(s)}
}

// stringBytes aliases the memory of s. The result must never be written.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
