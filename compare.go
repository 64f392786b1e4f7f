package String_View

import "String_View/traits"

// Compare orders v and other character by character through the traits
// policy, then by length. The result is -1, 0 or +1.
func (v View[C, T]) Compare(other View[C, T]) int {
	var tr T
	c := tr.Compare(v.data, other.data, min(len(v.data), len(other.data)))
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	case len(v.data) < len(other.data):
		return -1
	case len(v.data) > len(other.data):
		return 1
	}
	return 0
}

// CompareAt compares v.Substr(pos1, count1) with other.
func (v View[C, T]) CompareAt(pos1, count1 int, other View[C, T]) int {
	return v.Substr(pos1, count1).Compare(other)
}

// CompareRange compares v.Substr(pos1, count1) with other.Substr(pos2, count2).
func (v View[C, T]) CompareRange(pos1, count1 int, other View[C, T], pos2, count2 int) int {
	return v.Substr(pos1, count1).Compare(other.Substr(pos2, count2))
}

// CompareCStr compares v with the zero-terminated s.
func (v View[C, T]) CompareCStr(s []C) int {
	return v.Compare(OfTerminated[C, T](s))
}

func (v View[C, T]) CompareAtCStr(pos1, count1 int, s []C) int {
	return v.Substr(pos1, count1).Compare(OfTerminated[C, T](s))
}

// CompareAtN compares v.Substr(pos1, count1) with the first count2
// characters of s.
func (v View[C, T]) CompareAtN(pos1, count1 int, s []C, count2 int) int {
	return v.Substr(pos1, count1).Compare(OfCount[C, T](s, count2))
}

func (v View[C, T]) StartsWith(prefix View[C, T]) bool {
	return v.Substr(0, len(prefix.data)).Compare(prefix) == 0
}

func (v View[C, T]) StartsWithChar(c C) bool {
	var tr T
	return len(v.data) > 0 && tr.Eq(v.Front(), c)
}

func (v View[C, T]) StartsWithCStr(s []C) bool {
	return v.StartsWith(OfTerminated[C, T](s))
}

func (v View[C, T]) EndsWith(suffix View[C, T]) bool {
	n := len(suffix.data)
	return len(v.data) >= n && v.CompareAt(len(v.data)-n, Npos, suffix) == 0
}

func (v View[C, T]) EndsWithChar(c C) bool {
	var tr T
	return len(v.data) > 0 && tr.Eq(v.Back(), c)
}

func (v View[C, T]) EndsWithCStr(s []C) bool {
	return v.EndsWith(OfTerminated[C, T](s))
}

func (v View[C, T]) Equal(other View[C, T]) bool {
	return v.Compare(other) == 0
}

func (v View[C, T]) NotEqual(other View[C, T]) bool {
	return v.Compare(other) != 0
}

func (v View[C, T]) Less(other View[C, T]) bool {
	return v.Compare(other) < 0
}

func (v View[C, T]) LessOrEqual(other View[C, T]) bool {
	return v.Compare(other) <= 0
}

func (v View[C, T]) Greater(other View[C, T]) bool {
	return v.Compare(other) > 0
}

func (v View[C, T]) GreaterOrEqual(other View[C, T]) bool {
	return v.Compare(other) >= 0
}

// Compare is the method form usable with slices.SortFunc.
func Compare[C comparable, T traits.Traits[C]](a, b View[C, T]) int {
	return a.Compare(b)
}
