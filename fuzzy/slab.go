package fuzzy

// defaultSlabSize matches the scorer's working set: one bonus slot per
// candidate byte, so the default comfortably covers line-oriented input.
const defaultSlabSize = 100 * 1024

// Slab is reusable scratch for Score. A slab belongs to exactly one caller
// at a time and must never be shared between goroutines; a pool worker
// acquires one on entry and passes it into every Score call it makes.
type Slab struct {
	i16 []int16
}

// NewSlab returns a slab with the given buffer capacity.
func NewSlab(size int) *Slab {
	return &Slab{i16: make([]int16, size)}
}

// NewDefaultSlab returns a slab sized for typical line-length candidates.
func NewDefaultSlab() *Slab {
	return NewSlab(defaultSlabSize)
}

// alloc16 returns a length-n int16 buffer backed by the slab when it fits,
// falling back to the heap for oversized requests.
func (s *Slab) alloc16(n int) []int16 {
	if s != nil && n <= cap(s.i16) {
		return s.i16[:n]
	}
	return make([]int16, n)
}
