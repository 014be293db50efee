package nanofmt

// verify reports whether reference is self-consistent (no gaps in its
// own positional space) and, when format is non-empty, whether format
// stays within that already-bound space without disagreeing on any
// slot's type. An empty format means "check reference alone."
func verify(reference, format string, cfg Config) bool {
	tv, usedMax, err := inferReference(reference, format, cfg)
	if err != nil {
		return false
	}
	for order := 1; order <= usedMax; order++ {
		if tv.get(order).unbound() {
			return false
		}
	}
	return true
}
