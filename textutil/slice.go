package textutil

// SliceBytes returns the substring of s between byte offsets lo and
// hi. Offsets are clamped to the string's bounds, so host-reported
// columns such as v:maxcol are safe to pass. A negative hi means the
// end of the string.
func SliceBytes(s string, lo, hi int) string {
	if hi < 0 || hi > len(s) {
		hi = len(s)
	}
	if lo < 0 {
		lo = 0
	}
	if lo > len(s) {
		lo = len(s)
	}
	if lo > hi {
		lo = hi
	}
	return s[lo:hi]
}
