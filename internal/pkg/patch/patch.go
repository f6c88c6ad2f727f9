package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceZero is Coalesce that also treats a pointed-to zero value as unspecified.
func CoalesceZero[T comparable](ptr *T, fallback T) T {
	var zero T
	if ptr != nil && *ptr != zero {
		return *ptr
	}
	return fallback
}

// Of returns a pointer to v, handy for building partial updates.
func Of[T any](v T) *T {
	return &v
}
