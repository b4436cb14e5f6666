package textutil

// Escape returns a copy of stream with every element that has an entry
// in subst replaced by its substitution. Order and non-matching
// elements are preserved.
func Escape[T comparable](stream []T, subst map[T]T) []T {
	out := make([]T, len(stream))
	for i, unit := range stream {
		if repl, ok := subst[unit]; ok {
			out[i] = repl
		} else {
			out[i] = unit
		}
	}
	return out
}

// EscapeString is Escape over the runes of a string.
func EscapeString(s string, subst map[rune]rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if repl, ok := subst[r]; ok {
			out = append(out, repl)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
