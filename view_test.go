package String_View

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"String_View/traits"
)

func TestZeroView(t *testing.T) {
	var sv String
	if sv.Data() != nil {
		t.Fatalf("zero view data = %v, want nil", sv.Data())
	}
	if sv.Size() != 0 || !sv.Empty() {
		t.Fatalf("zero view size = %d, empty = %t", sv.Size(), sv.Empty())
	}
	if Npos != math.MaxInt {
		t.Fatalf("Npos = %d, want %d", Npos, math.MaxInt)
	}
}

func TestViewSharesData(t *testing.T) {
	buf := []byte("12345")
	sv := OfCount[byte, traits.Bytes](buf, 3)
	if sv.Size() != 3 || sv.Len() != 3 {
		t.Fatalf("size = %d, want 3", sv.Size())
	}
	if unsafe.SliceData(sv.Data()) != &buf[0] {
		t.Fatal("view must point at the caller's buffer")
	}
	cp := sv
	if unsafe.SliceData(cp.Data()) != unsafe.SliceData(sv.Data()) || cp.Size() != sv.Size() {
		t.Fatal("copy must share pointer and length")
	}
	if !cp.Equal(sv) {
		t.Fatal("copy must compare equal")
	}
}

func TestFromString(t *testing.T) {
	s := "123"
	sv := FromString(s)
	if sv.String() != "123" {
		t.Fatalf("String() = %q, want %q", sv.String(), "123")
	}
	if unsafe.SliceData(sv.Data()) != unsafe.StringData(s) {
		t.Fatal("FromString must not copy")
	}
}

func TestFromCString(t *testing.T) {
	sv := FromCString([]byte("123\x00456"))
	if sv.String() != "123" {
		t.Fatalf("FromCString = %q, want %q", sv.String(), "123")
	}
	if sv := FromCString([]byte("abc")); sv.Size() != 3 {
		t.Fatalf("unterminated size = %d, want 3", sv.Size())
	}
}

func TestElementAccess(t *testing.T) {
	sv := FromString("123")
	if c := sv.Index(1); c != '2' {
		t.Fatalf("Index(1) = %c, want 2", c)
	}
	if c := sv.Front(); c != '1' {
		t.Fatalf("Front = %c, want 1", c)
	}
	if c := sv.Back(); c != '3' {
		t.Fatalf("Back = %c, want 3", c)
	}
	if c, err := sv.At(2); err != nil || c != '3' {
		t.Fatalf("At(2) = %c, %v", c, err)
	}
	for _, pos := range []int{3, 10, -1} {
		if _, err := sv.At(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestMaxSize(t *testing.T) {
	if n := FromString("").MaxSize(); n != math.MaxInt {
		t.Fatalf("byte MaxSize = %d", n)
	}
	if n := FromRunes(nil).MaxSize(); n != math.MaxInt/4 {
		t.Fatalf("rune MaxSize = %d", n)
	}
}

func TestRemovePrefixSuffix(t *testing.T) {
	sv := FromString("12345")
	sv.RemovePrefix(2)
	if sv.String() != "345" {
		t.Fatalf("after RemovePrefix = %q", sv.String())
	}

	sv = FromString("12345")
	sv.RemoveSuffix(2)
	if sv.String() != "123" {
		t.Fatalf("after RemoveSuffix = %q", sv.String())
	}

	buf := []byte("hello!")
	bv := FromBytes(buf)
	bv.RemoveSuffix(1)
	if cap(bv.Data()) != bv.Size() {
		t.Fatalf("cap after RemoveSuffix = %d, want %d", cap(bv.Data()), bv.Size())
	}
	_ = append(bv.Data(), '?')
	if string(buf) != "hello!" {
		t.Fatalf("append through the view changed its source: %q", buf)
	}

	orig := FromString("abcdefgh")
	for n := 0; n <= orig.Size(); n++ {
		for m := 0; n+m <= orig.Size(); m++ {
			sv := orig
			sv.RemovePrefix(n)
			sv.RemoveSuffix(m)
			want := orig.Substr(n, orig.Size()-n-m)
			if !sv.Equal(want) {
				t.Errorf("RemovePrefix(%d)+RemoveSuffix(%d) = %q, want %q", n, m, sv, want)
			}
		}
	}
}

func TestSwap(t *testing.T) {
	a, b := FromString("123"), FromString("4567")
	a.Swap(&b)
	if a.String() != "4567" || b.String() != "123" {
		t.Fatalf("after swap a=%q b=%q", a, b)
	}
	a.Swap(&b)
	if a.String() != "123" || b.String() != "4567" {
		t.Fatalf("after second swap a=%q b=%q", a, b)
	}
}

func TestCopy(t *testing.T) {
	sv := FromString("123")
	v := make([]byte, 10)
	v2 := make([]byte, 10)

	if n, err := sv.Copy(v, sv.Size(), 0); err != nil || n != 3 {
		t.Fatalf("Copy = %d, %v", n, err)
	}
	if n, err := sv.Copy(v2, sv.Size(), 1); err != nil || n != 2 {
		t.Fatalf("Copy at 1 = %d, %v", n, err)
	}
	if string(v[:3]) != "123" || string(v2[:2]) != "23" {
		t.Fatalf("copied %q and %q", v[:3], v2[:2])
	}
	if n, err := sv.Copy(v, 5, 3); err != nil || n != 0 {
		t.Fatalf("Copy at end = %d, %v", n, err)
	}
	if _, err := sv.Copy(v, 1, 4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Copy past end error = %v, want ErrOutOfRange", err)
	}
}

func TestSubstr(t *testing.T) {
	sv := FromString("12345")
	tests := []struct {
		pos, count int
		want       string
	}{
		{0, Npos, "12345"},
		{2, 2, "34"},
		{3, 10, "45"},
		{5, Npos, ""},
		{0, 0, ""},
	}
	for _, tt := range tests {
		if got := sv.Substr(tt.pos, tt.count); got.String() != tt.want {
			t.Errorf("Substr(%d, %d) = %q, want %q", tt.pos, tt.count, got, tt.want)
		}
	}

	s := "abcdef"
	for pos := 0; pos <= len(s); pos++ {
		for count := 0; count <= len(s)+1; count++ {
			end := min(len(s), pos+count)
			if c := FromString(s).Substr(pos, count).Compare(FromString(s[pos:end])); c != 0 {
				t.Errorf("Substr(%d, %d) compare = %d", pos, count, c)
			}
		}
	}
}

func TestClone(t *testing.T) {
	buf := []byte("hello")
	sv := FromBytes(buf)
	c := sv.Clone()
	buf[0] = 'X'
	if string(c) != "hello" {
		t.Fatalf("clone changed with source: %q", c)
	}
	if sv.String() != "Xello" {
		t.Fatalf("view must follow its source: %q", sv.String())
	}
}

func TestStringOtherTypes(t *testing.T) {
	if s := FromRunes([]rune("héllo")).String(); s != "héllo" {
		t.Fatalf("rune String() = %q", s)
	}
	u := Of[uint16, traits.Ordered[uint16]]([]uint16{1, 2})
	if s := u.String(); s != "[1 2]" {
		t.Fatalf("uint16 String() = %q", s)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestAssertions(t *testing.T) {
	prev := AssertionsEnabled()
	defer assertions.Store(prev)
	Configure(Options{Assertions: true, LogLevel: DefaultOptions().LogLevel})

	var empty String
	sv := FromString("123")
	expectPanic(t, "Front", func() { empty.Front() })
	expectPanic(t, "Back", func() { empty.Back() })
	expectPanic(t, "Index", func() { sv.Index(3) })
	expectPanic(t, "RemovePrefix", func() { sv.RemovePrefix(4) })
	expectPanic(t, "RemoveSuffix", func() { sv.RemoveSuffix(-1) })
	expectPanic(t, "Substr", func() { sv.Substr(4, 1) })
	expectPanic(t, "Iterator.Value", func() { sv.End().Value() })
	expectPanic(t, "Iterator.Diff", func() { sv.Begin().Diff(FromString("456").Begin()) })

	if sv.String() != "123" {
		t.Fatalf("failed preconditions must not modify the view: %q", sv.String())
	}
}
