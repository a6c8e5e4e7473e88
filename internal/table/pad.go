package table

// Pad appends fill to s until its length reaches width and returns the
// extended slice. Like append, it may reuse the input's backing array, so
// callers must use the returned slice. A slice already at or beyond width
// is returned unchanged.
func Pad[T any](s []T, width int, fill T) []T {
	for len(s) < width {
		s = append(s, fill)
	}
	return s
}

// Padded returns s extended to at least width without ever modifying the
// input: a nil slice is treated as empty, and a short slice is copied
// before extending. A slice already at or beyond width is returned as-is.
func Padded[T any](s []T, width int, fill T) []T {
	if len(s) >= width {
		return s
	}
	out := make([]T, len(s), width)
	copy(out, s)
	return Pad(out, width, fill)
}
