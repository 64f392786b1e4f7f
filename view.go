package String_View

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"String_View/traits"

	"github.com/sirupsen/logrus"
)

// Npos is returned by every search when nothing matches, and means
// "to the end" when passed as a position or count.
const Npos = math.MaxInt

// ErrOutOfRange is returned by At and Copy for a position past the view.
var ErrOutOfRange = errors.New("position out of range")

// View is a read-only window onto characters owned by someone else.
// The zero value is an empty view. A View never copies, retains or writes
// its characters; the caller keeps the backing storage alive and
// unchanged for as long as the view is used.
type View[C comparable, T traits.Traits[C]] struct {
	data []C
}

// Of returns a view over data.
func Of[C comparable, T traits.Traits[C]](data []C) View[C, T] {
	return View[C, T]{data: data[:len(data):len(data)]}
}

// OfCount returns a view over the first count characters of data.
func OfCount[C comparable, T traits.Traits[C]](data []C, count int) View[C, T] {
	return View[C, T]{data: data[:count:count]}
}

// OfTerminated returns a view over s up to, not including, its first
// zero character.
func OfTerminated[C comparable, T traits.Traits[C]](s []C) View[C, T] {
	var tr T
	n := tr.Length(s)
	return View[C, T]{data: s[:n:n]}
}

// Data returns the viewed characters. The slice aliases the caller's
// storage, which may be read-only string memory: never write or append
// to it.
func (v View[C, T]) Data() []C {
	return v.data
}

func (v View[C, T]) Size() int {
	return len(v.data)
}

// Len is the same as Size.
func (v View[C, T]) Len() int {
	return len(v.data)
}

func (v View[C, T]) Empty() bool {
	return len(v.data) == 0
}

// MaxSize is the largest size a view of C could describe. It is not
// enforced anywhere.
func (v View[C, T]) MaxSize() int {
	var c C
	if sz := int(unsafe.Sizeof(c)); sz > 0 {
		return math.MaxInt / sz
	}
	return math.MaxInt
}

// Index returns the character at pos. pos must be in [0, Size()).
func (v View[C, T]) Index(pos int) C {
	if assertions.Load() && (pos < 0 || pos >= len(v.data)) {
		assertFailed("Index", logrus.Fields{"pos": pos, "size": len(v.data)})
	}
	return v.data[pos]
}

// At is Index with a range check.
func (v View[C, T]) At(pos int) (C, error) {
	if pos < 0 || pos >= len(v.data) {
		var zero C
		return zero, v.rangeError("At", pos)
	}
	return v.data[pos], nil
}

// Front returns the first character. The view must not be empty.
func (v View[C, T]) Front() C {
	if assertions.Load() && len(v.data) == 0 {
		assertFailed("Front", logrus.Fields{"size": 0})
	}
	return v.data[0]
}

// Back returns the last character. The view must not be empty.
func (v View[C, T]) Back() C {
	if assertions.Load() && len(v.data) == 0 {
		assertFailed("Back", logrus.Fields{"size": 0})
	}
	return v.data[len(v.data)-1]
}

// RemovePrefix drops the first n characters, 0 <= n <= Size().
func (v *View[C, T]) RemovePrefix(n int) {
	if assertions.Load() && (n < 0 || n > len(v.data)) {
		assertFailed("RemovePrefix", logrus.Fields{"n": n, "size": len(v.data)})
	}
	v.data = v.data[n:]
}

// RemoveSuffix drops the last n characters, 0 <= n <= Size().
func (v *View[C, T]) RemoveSuffix(n int) {
	if assertions.Load() && (n < 0 || n > len(v.data)) {
		assertFailed("RemoveSuffix", logrus.Fields{"n": n, "size": len(v.data)})
	}
	n = len(v.data) - n
	v.data = v.data[:n:n]
}

// Swap exchanges the ranges described by v and other.
func (v *View[C, T]) Swap(other *View[C, T]) {
	v.data, other.data = other.data, v.data
}

// Copy copies up to count characters starting at pos into dest and
// returns how many were copied.
func (v View[C, T]) Copy(dest []C, count, pos int) (int, error) {
	if pos < 0 || pos > len(v.data) {
		return 0, v.rangeError("Copy", pos)
	}
	n := v.clamp(pos, count)
	if assertions.Load() && len(dest) < n {
		assertFailed("Copy", logrus.Fields{"count": n, "dest": len(dest)})
	}
	var tr T
	return tr.Copy(dest, v.data[pos:], n), nil
}

// Substr returns the view of at most count characters starting at pos.
// pos must be in [0, Size()]; Npos as count means "to the end".
func (v View[C, T]) Substr(pos, count int) View[C, T] {
	if assertions.Load() && (pos < 0 || pos > len(v.data) || count < 0) {
		assertFailed("Substr", logrus.Fields{"pos": pos, "count": count, "size": len(v.data)})
	}
	n := v.clamp(pos, count)
	return View[C, T]{data: v.data[pos : pos+n : pos+n]}
}

// clamp limits count to the characters remaining after pos.
func (v View[C, T]) clamp(pos, count int) int {
	return max(0, min(count, len(v.data)-pos))
}

func (v View[C, T]) rangeError(op string, pos int) error {
	logrus.WithFields(logrus.Fields{
		"op":   op,
		"pos":  pos,
		"size": len(v.data),
	}).Debug("string view position out of range")
	return fmt.Errorf("%w: %s pos %d, size %d", ErrOutOfRange, op, pos, len(v.data))
}
