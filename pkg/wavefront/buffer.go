package wavefront

// initialCap is the starting capacity for growable buffers and vertex maps.
const initialCap = 32

// buffer is an amortized-doubling array. The size/capacity split is kept
// explicit so parsers can reserve room before a burst of writes: after
// reserve(n), n pushes cannot reallocate.
type buffer[T any] struct {
	elems []T
}

// reserve grows capacity until n more elements fit.
func (b *buffer[T]) reserve(n int) {
	need := len(b.elems) + n
	if need <= cap(b.elems) {
		return
	}
	newCap := cap(b.elems)
	if newCap < initialCap {
		newCap = initialCap
	}
	for newCap < need {
		newCap *= 2
	}
	elems := make([]T, len(b.elems), newCap)
	copy(elems, b.elems)
	b.elems = elems
}

// push appends vals, growing geometrically if needed.
func (b *buffer[T]) push(vals ...T) {
	b.reserve(len(vals))
	b.elems = append(b.elems, vals...)
}

func (b *buffer[T]) len() int {
	return len(b.elems)
}
