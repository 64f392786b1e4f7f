package String_View

import "fmt"

// String returns the characters as a Go string. Byte and rune views are
// converted directly; other character types are formatted.
func (v View[C, T]) String() string {
	switch d := any(v.data).(type) {
	case []byte:
		return string(d)
	case []rune:
		return string(d)
	}
	return fmt.Sprint(v.data)
}

// Clone returns a copy of the characters that outlives the backing buffer.
func (v View[C, T]) Clone() []C {
	return cloneChars(v.data)
}

func cloneChars[C any](b []C) []C {
	c := make([]C, len(b))
	copy(c, b)
	return c
}
