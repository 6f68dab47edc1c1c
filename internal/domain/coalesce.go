package domain

// Coalesce returns the first non-zero value from vals. It resolves the
// lead, list-default and built-in layers of a defaults cascade.
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
