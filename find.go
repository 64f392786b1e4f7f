package String_View

import "String_View/algorithm"

// Find returns the offset of the first occurrence of p starting at or
// after pos, or Npos.
func (v View[C, T]) Find(p View[C, T], pos int) int {
	n := len(p.data)
	if pos < 0 || pos > len(v.data) || len(v.data)-pos < n {
		return Npos
	}
	if n == 0 {
		return pos
	}
	var tr T
	b, e := v.Begin(), v.End()
	it := algorithm.SearchFunc[C](b.Add(pos), e, p.Begin(), p.End(), tr.Eq)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

func (v View[C, T]) FindChar(c C, pos int) int {
	if pos < 0 || pos >= len(v.data) {
		return Npos
	}
	var tr T
	b, e := v.Begin(), v.End()
	it := algorithm.FindIf[C](b.Add(pos), e, func(x C) bool { return tr.Eq(x, c) })
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

// FindN searches for the first count characters of s.
func (v View[C, T]) FindN(s []C, pos, count int) int {
	return v.Find(OfCount[C, T](s, count), pos)
}

// FindCStr searches for the zero-terminated s.
func (v View[C, T]) FindCStr(s []C, pos int) int {
	return v.Find(OfTerminated[C, T](s), pos)
}

// RFind returns the offset of the last occurrence of p that starts at or
// before pos, or Npos. Pass Npos to search the whole view.
func (v View[C, T]) RFind(p View[C, T], pos int) int {
	n := len(p.data)
	if pos < 0 || n > len(v.data) {
		return Npos
	}
	start := min(pos, len(v.data)-n)
	if n == 0 {
		return start
	}
	var tr T
	b := v.Begin()
	e := b.Add(start + n)
	it := algorithm.SearchLastFunc[C](b, e, p.Begin(), p.End(), tr.Eq)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

func (v View[C, T]) RFindChar(c C, pos int) int {
	var tr T
	return v.findLastIf(pos, func(x C) bool { return tr.Eq(x, c) })
}

func (v View[C, T]) RFindN(s []C, pos, count int) int {
	return v.RFind(OfCount[C, T](s, count), pos)
}

func (v View[C, T]) RFindCStr(s []C, pos int) int {
	return v.RFind(OfTerminated[C, T](s), pos)
}

// FindFirstOf returns the offset of the first character at or after pos
// that is one of set, or Npos.
func (v View[C, T]) FindFirstOf(set View[C, T], pos int) int {
	if pos < 0 || pos >= len(v.data) {
		return Npos
	}
	var tr T
	b, e := v.Begin(), v.End()
	it := algorithm.FindFirstOfFunc[C](b.Add(pos), e, set.Begin(), set.End(), tr.Eq)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

func (v View[C, T]) FindFirstOfChar(c C, pos int) int {
	return v.FindChar(c, pos)
}

func (v View[C, T]) FindFirstOfN(s []C, pos, count int) int {
	return v.FindFirstOf(OfCount[C, T](s, count), pos)
}

func (v View[C, T]) FindFirstOfCStr(s []C, pos int) int {
	return v.FindFirstOf(OfTerminated[C, T](s), pos)
}

// FindLastOf returns the offset of the last character at or before pos
// that is one of set, or Npos.
func (v View[C, T]) FindLastOf(set View[C, T], pos int) int {
	if pos < 0 || len(v.data) == 0 {
		return Npos
	}
	var tr T
	b := v.Begin()
	e := b.Add(min(pos, len(v.data)-1) + 1)
	it := algorithm.FindLastOfFunc[C](b, e, set.Begin(), set.End(), tr.Eq)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

func (v View[C, T]) FindLastOfChar(c C, pos int) int {
	return v.RFindChar(c, pos)
}

func (v View[C, T]) FindLastOfN(s []C, pos, count int) int {
	return v.FindLastOf(OfCount[C, T](s, count), pos)
}

func (v View[C, T]) FindLastOfCStr(s []C, pos int) int {
	return v.FindLastOf(OfTerminated[C, T](s), pos)
}

// FindFirstNotOf returns the offset of the first character at or after
// pos that is not in set, or Npos.
func (v View[C, T]) FindFirstNotOf(set View[C, T], pos int) int {
	return v.findFirstIf(pos, func(x C) bool { return !set.has(x) })
}

func (v View[C, T]) FindFirstNotOfChar(c C, pos int) int {
	var tr T
	return v.findFirstIf(pos, func(x C) bool { return !tr.Eq(x, c) })
}

func (v View[C, T]) FindFirstNotOfN(s []C, pos, count int) int {
	return v.FindFirstNotOf(OfCount[C, T](s, count), pos)
}

func (v View[C, T]) FindFirstNotOfCStr(s []C, pos int) int {
	return v.FindFirstNotOf(OfTerminated[C, T](s), pos)
}

// FindLastNotOf returns the offset of the last character at or before
// pos that is not in set, or Npos.
func (v View[C, T]) FindLastNotOf(set View[C, T], pos int) int {
	return v.findLastIf(pos, func(x C) bool { return !set.has(x) })
}

func (v View[C, T]) FindLastNotOfChar(c C, pos int) int {
	var tr T
	return v.findLastIf(pos, func(x C) bool { return !tr.Eq(x, c) })
}

func (v View[C, T]) FindLastNotOfN(s []C, pos, count int) int {
	return v.FindLastNotOf(OfCount[C, T](s, count), pos)
}

func (v View[C, T]) FindLastNotOfCStr(s []C, pos int) int {
	return v.FindLastNotOf(OfTerminated[C, T](s), pos)
}

func (v View[C, T]) Contains(p View[C, T]) bool {
	return v.Find(p, 0) != Npos
}

func (v View[C, T]) ContainsChar(c C) bool {
	return v.FindChar(c, 0) != Npos
}

func (v View[C, T]) ContainsCStr(s []C) bool {
	return v.FindCStr(s, 0) != Npos
}

// has reports whether c is one of the characters of v.
func (v View[C, T]) has(c C) bool {
	var tr T
	for _, x := range v.data {
		if tr.Eq(x, c) {
			return true
		}
	}
	return false
}

func (v View[C, T]) findFirstIf(pos int, pred func(C) bool) int {
	if pos < 0 || pos >= len(v.data) {
		return Npos
	}
	b, e := v.Begin(), v.End()
	it := algorithm.FindIf[C](b.Add(pos), e, pred)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}

// findLastIf scans [0, min(pos, Size()-1)] backwards.
func (v View[C, T]) findLastIf(pos int, pred func(C) bool) int {
	if pos < 0 || len(v.data) == 0 {
		return Npos
	}
	b := v.Begin()
	e := b.Add(min(pos, len(v.data)-1) + 1)
	it := algorithm.FindLastIf[C](b, e, pred)
	if it.Equal(e) {
		return Npos
	}
	return it.Diff(b)
}
