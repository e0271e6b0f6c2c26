package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Pop removes the last element of the slice and returns it with true,
// or the zero value and false if the slice is empty.
func Pop[S ~[]E, E any](s *S) (E, bool) {
	if len(*s) == 0 {
		var zero E
		return zero, false
	}

	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]

	return last, true
}
