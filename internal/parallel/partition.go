package parallel

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Partition splits [0, n) into at most parts contiguous spans.
//
// Spans are ordered, non-empty, disjoint and together cover [0, n).
// Their lengths differ by at most one; the first n%parts spans get the
// extra index. Partition returns nil if n <= 0, and treats parts <= 0 as 1.
func Partition(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	size, extra := n/parts, n%parts
	spans := make([]Span, parts)
	lo := 0
	for i := range spans {
		hi := lo + size
		if i < extra {
			hi++
		}
		spans[i] = Span{Lo: lo, Hi: hi}
		lo = hi
	}
	return spans
}
