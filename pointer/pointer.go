package pointer

func FromAny[T any](v T) *T {
	return &v
}

// Default dereferences p, falling back to def when p is nil
func Default[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
