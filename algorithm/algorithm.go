// Package algorithm provides linear-scan search primitives over
// random-access iterator ranges.
//
// A range is a pair of iterators [first, last). Every function returns an
// iterator into the searched range; last signals "no match".
package algorithm

// Iterator is the random-access contract the primitives need. I is the
// concrete iterator type itself.
type Iterator[E any, I any] interface {
	// Value dereferences the iterator.
	Value() E
	// Add returns the iterator moved by n positions.
	Add(n int) I
	// Diff returns the signed distance from other to the receiver.
	Diff(other I) int
}

// Reverse walks a range backwards. A Reverse built from base refers to
// the element just before base, so Reverse(last)..Reverse(first) covers
// [first, last) back to front.
type Reverse[E any, I Iterator[E, I]] struct {
	base I
}

// MakeReverse wraps base in a reverse adaptor.
func MakeReverse[E any, I Iterator[E, I]](base I) Reverse[E, I] {
	return Reverse[E, I]{base: base}
}

// Base returns the underlying forward iterator.
func (r Reverse[E, I]) Base() I {
	return r.base
}

func (r Reverse[E, I]) Value() E {
	return r.base.Add(-1).Value()
}

// At returns the element n steps further along the reversed direction.
func (r Reverse[E, I]) At(n int) E {
	return r.Add(n).Value()
}

func (r Reverse[E, I]) Add(n int) Reverse[E, I] {
	return Reverse[E, I]{base: r.base.Add(-n)}
}

func (r Reverse[E, I]) Sub(n int) Reverse[E, I] {
	return r.Add(-n)
}

func (r Reverse[E, I]) Diff(other Reverse[E, I]) int {
	return other.base.Diff(r.base)
}

func (r Reverse[E, I]) Equal(other Reverse[E, I]) bool {
	return r.Diff(other) == 0
}

func (r Reverse[E, I]) Less(other Reverse[E, I]) bool {
	return r.Diff(other) < 0
}

// Inc steps the adaptor one element towards the front of the sequence.
func (r *Reverse[E, I]) Inc() {
	r.base = r.base.Add(-1)
}

func (r *Reverse[E, I]) Dec() {
	r.base = r.base.Add(1)
}

// Advance moves the adaptor n steps in the reversed direction.
func (r *Reverse[E, I]) Advance(n int) {
	r.base = r.base.Add(-n)
}

func equal[E comparable](a, b E) bool {
	return a == b
}

// Search returns the start of the first occurrence of [sFirst, sLast) in
// [first, last). An empty needle matches at first.
func Search[E comparable, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J) I {
	return SearchFunc[E, I, J](first, last, sFirst, sLast, equal[E])
}

// SearchFunc is Search with a caller supplied equality predicate.
func SearchFunc[E any, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J, eq func(a, b E) bool) I {
	size := last.Diff(first)
	n := sLast.Diff(sFirst)
	for i := 0; i+n <= size; i++ {
		it := first.Add(i)
		j := 0
		for ; j < n; j++ {
			if !eq(it.Add(j).Value(), sFirst.Add(j).Value()) {
				break
			}
		}
		if j == n {
			return it
		}
	}
	return last
}

// SearchLast returns the start of the last occurrence of [sFirst, sLast)
// in [first, last). It returns last when there is none or the needle is
// empty.
func SearchLast[E comparable, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J) I {
	return SearchLastFunc[E, I, J](first, last, sFirst, sLast, equal[E])
}

// SearchLastFunc is SearchLast with a caller supplied equality predicate.
func SearchLastFunc[E any, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J, eq func(a, b E) bool) I {
	n := sLast.Diff(sFirst)
	if n == 0 {
		return last
	}
	rfirst, rlast := MakeReverse[E](last), MakeReverse[E](first)
	it := SearchFunc[E](rfirst, rlast, MakeReverse[E](sLast), MakeReverse[E](sFirst), eq)
	if it.Equal(rlast) {
		return last
	}
	// it points at the last character of the match in reversed order.
	size := last.Diff(first)
	return first.Add(size - it.Diff(rfirst) - n)
}

// FindFirstOf returns the first element of [first, last) equal to any
// element of [sFirst, sLast).
func FindFirstOf[E comparable, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J) I {
	return FindFirstOfFunc[E, I, J](first, last, sFirst, sLast, equal[E])
}

// FindFirstOfFunc is FindFirstOf with a caller supplied equality predicate.
func FindFirstOfFunc[E any, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J, eq func(a, b E) bool) I {
	size := last.Diff(first)
	n := sLast.Diff(sFirst)
	for i := 0; i < size; i++ {
		it := first.Add(i)
		v := it.Value()
		for j := 0; j < n; j++ {
			if eq(v, sFirst.Add(j).Value()) {
				return it
			}
		}
	}
	return last
}

// FindLastOf returns the last element of [first, last) equal to any
// element of [sFirst, sLast).
func FindLastOf[E comparable, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J) I {
	return FindLastOfFunc[E, I, J](first, last, sFirst, sLast, equal[E])
}

// FindLastOfFunc is FindLastOf with a caller supplied equality predicate.
func FindLastOfFunc[E any, I Iterator[E, I], J Iterator[E, J]](first, last I, sFirst, sLast J, eq func(a, b E) bool) I {
	rfirst, rlast := MakeReverse[E](last), MakeReverse[E](first)
	it := FindFirstOfFunc[E](rfirst, rlast, MakeReverse[E](sLast), MakeReverse[E](sFirst), eq)
	return fromReverse(first, last, rfirst, it)
}

// FindIf returns the first element of [first, last) satisfying pred.
func FindIf[E any, I Iterator[E, I]](first, last I, pred func(E) bool) I {
	size := last.Diff(first)
	for i := 0; i < size; i++ {
		if it := first.Add(i); pred(it.Value()) {
			return it
		}
	}
	return last
}

// FindLastIf returns the last element of [first, last) satisfying pred.
func FindLastIf[E any, I Iterator[E, I]](first, last I, pred func(E) bool) I {
	rfirst, rlast := MakeReverse[E](last), MakeReverse[E](first)
	it := FindIf[E](rfirst, rlast, pred)
	return fromReverse(first, last, rfirst, it)
}

// fromReverse maps a single-element hit found on the reversed range back
// to a forward iterator. A miss (it at the reversed end) maps to last.
func fromReverse[E any, I Iterator[E, I]](first, last I, rfirst, it Reverse[E, I]) I {
	size := last.Diff(first)
	dist := it.Diff(rfirst)
	if dist == size {
		return last
	}
	return first.Add(size - 1 - dist)
}
