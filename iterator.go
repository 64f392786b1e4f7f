package String_View

import (
	"cmp"
	"iter"
	"unsafe"

	"String_View/algorithm"

	"github.com/sirupsen/logrus"
)

// Iterator is a random-access position in the sequence of the view it
// came from. Positions in [0, len) can be dereferenced; len is the end.
type Iterator[C any] struct {
	seq []C
	pos int
}

// ReverseIterator walks a view back to front.
type ReverseIterator[C any] = algorithm.Reverse[C, Iterator[C]]

func (v View[C, T]) Begin() Iterator[C] {
	return Iterator[C]{seq: v.data}
}

func (v View[C, T]) End() Iterator[C] {
	return Iterator[C]{seq: v.data, pos: len(v.data)}
}

func (v View[C, T]) RBegin() ReverseIterator[C] {
	return algorithm.MakeReverse[C](v.End())
}

func (v View[C, T]) REnd() ReverseIterator[C] {
	return algorithm.MakeReverse[C](v.Begin())
}

// All yields every offset and character front to back.
func (v View[C, T]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward yields every offset and character back to front.
func (v View[C, T]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Pos returns the offset from the start of the sequence.
func (it Iterator[C]) Pos() int {
	return it.pos
}

func (it Iterator[C]) Value() C {
	if assertions.Load() && (it.pos < 0 || it.pos >= len(it.seq)) {
		assertFailed("Iterator.Value", logrus.Fields{"pos": it.pos, "size": len(it.seq)})
	}
	return it.seq[it.pos]
}

// At returns the character n positions away.
func (it Iterator[C]) At(n int) C {
	return it.Add(n).Value()
}

func (it *Iterator[C]) Inc() {
	it.pos++
}

func (it *Iterator[C]) Dec() {
	it.pos--
}

// PostInc advances the iterator and returns its previous position.
func (it *Iterator[C]) PostInc() Iterator[C] {
	old := *it
	it.pos++
	return old
}

// PostDec steps the iterator back and returns its previous position.
func (it *Iterator[C]) PostDec() Iterator[C] {
	old := *it
	it.pos--
	return old
}

// Advance moves the iterator by n, which may be negative.
func (it *Iterator[C]) Advance(n int) {
	it.pos += n
}

func (it Iterator[C]) Add(n int) Iterator[C] {
	return Iterator[C]{seq: it.seq, pos: it.pos + n}
}

func (it Iterator[C]) Sub(n int) Iterator[C] {
	return Iterator[C]{seq: it.seq, pos: it.pos - n}
}

// Diff returns it - other. Both must come from the same view.
func (it Iterator[C]) Diff(other Iterator[C]) int {
	if assertions.Load() && !sameSeq(it.seq, other.seq) {
		assertFailed("Iterator.Diff", logrus.Fields{"pos": it.pos, "other": other.pos})
	}
	return it.pos - other.pos
}

func (it Iterator[C]) Compare(other Iterator[C]) int {
	return cmp.Compare(it.Diff(other), 0)
}

func (it Iterator[C]) Equal(other Iterator[C]) bool {
	return it.Diff(other) == 0
}

func (it Iterator[C]) Less(other Iterator[C]) bool {
	return it.Diff(other) < 0
}

func sameSeq[C any](a, b []C) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}
