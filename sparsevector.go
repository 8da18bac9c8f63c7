// A SparseVector stores a numeric vector as a single flat slice alternating
// index, value, index, value, ... sorted by index ascending. Most field
// vectors in a realistic corpus only have a handful of nonzero coordinates
// out of many thousands of possible termIndex values, so this representation
// costs O(nonzero) rather than O(vocabulary) per document-field.

package arclight

import "math"

// SparseVector is a sorted (index, value) sequence. The zero value is an
// empty vector, ready to use.
type SparseVector struct {
	elements []float64 // elements[2i] = index, elements[2i+1] = value

	magnitudeCached bool
	magnitude       float64
}

// Len returns the number of stored (index, value) entries, including any
// whose value is zero.
func (v *SparseVector) Len() int {
	return len(v.elements) / 2
}

// Elements returns the raw flat (index, value, index, value, ...) slice.
// Callers must not mutate it.
func (v *SparseVector) Elements() []float64 {
	return v.elements
}

// positionForIndex returns (slot, found) where slot is the logical position
// (0-based entry count, not raw slice offset) at which index i already lives
// (found=true) or would need to be inserted to keep the sequence sorted
// (found=false). Binary search over the logical length.
func (v *SparseVector) positionForIndex(i int) (int, bool) {
	n := v.Len()
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		idx := int(v.elements[mid*2])
		switch {
		case idx == i:
			return mid, true
		case idx < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// Insert adds (i, value) and panics if i is already present — a duplicate
// insert is a programming error, not a recoverable runtime condition (the
// builder is expected to call Insert only on first sight of a term within a
// field vector, and Upsert thereafter).
func (v *SparseVector) Insert(i int, value float64) {
	pos, found := v.positionForIndex(i)
	if found {
		panic("arclight: sparse vector insert on duplicate index")
	}
	v.insertAt(pos, i, value)
	v.invalidate()
}

func (v *SparseVector) insertAt(pos, i int, value float64) {
	v.elements = append(v.elements, 0, 0)
	copy(v.elements[(pos+1)*2:], v.elements[pos*2:len(v.elements)-2])
	v.elements[pos*2] = float64(i)
	v.elements[pos*2+1] = value
}

// Upsert inserts (i, value) if absent, or replaces the existing value with
// merge(existing, value) if present. Invalidates the cached magnitude
// either way.
func (v *SparseVector) Upsert(i int, value float64, merge func(existing, incoming float64) float64) {
	pos, found := v.positionForIndex(i)
	if found {
		v.elements[pos*2+1] = merge(v.elements[pos*2+1], value)
	} else {
		v.insertAt(pos, i, value)
	}
	v.invalidate()
}

func (v *SparseVector) invalidate() {
	v.magnitudeCached = false
}

// Magnitude returns sqrt(Σ value^2), cached after first computation. The
// cache is invalidated by Insert/Upsert. The first call after a change
// writes the cache, so concurrent calls on a vector are race-free only once
// Magnitude has been called after its last Insert/Upsert.
func (v *SparseVector) Magnitude() float64 {
	if v.magnitudeCached {
		return v.magnitude
	}
	var sumSquares float64
	for i := 1; i < len(v.elements); i += 2 {
		sumSquares += v.elements[i] * v.elements[i]
	}
	v.magnitude = math.Sqrt(sumSquares)
	v.magnitudeCached = true
	return v.magnitude
}

// Dot computes the dot product via a linear merge of the two sorted
// streams, summing products at matching indices.
func (v *SparseVector) Dot(other *SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	an, bn := v.Len(), other.Len()
	for i < an && j < bn {
		ai := int(v.elements[i*2])
		bi := int(other.elements[j*2])
		switch {
		case ai == bi:
			sum += v.elements[i*2+1] * other.elements[j*2+1]
			i++
			j++
		case ai < bi:
			i++
		default:
			j++
		}
	}
	return sum
}

// Similarity is dot(other) / magnitude(); 0 when this vector's magnitude is
// zero (an empty or all-zero vector can never be "similar" to anything, by
// convention rather than by producing NaN).
func (v *SparseVector) Similarity(other *SparseVector) float64 {
	mag := v.Magnitude()
	if mag == 0 {
		return 0
	}
	return v.Dot(other) / mag
}
