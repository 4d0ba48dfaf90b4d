package graph

import (
	"math"

	"github.com/etzhaim/netivot/pkg/lexicon"
)

// ActivityVector holds one scalar activity per sefira, aligned with the
// canonical lexicon order.
type ActivityVector [lexicon.NumSefirot]float64

// Add accumulates other into v.
func (v *ActivityVector) Add(other ActivityVector) {
	for i := range v {
		v[i] += other[i]
	}
}

// Scale multiplies every component by f.
func (v *ActivityVector) Scale(f float64) {
	for i := range v {
		v[i] *= f
	}
}

// NonZero returns the number of sefirot with activity above zero.
func (v ActivityVector) NonZero() int {
	n := 0
	for _, a := range v {
		if a > 0 {
			n++
		}
	}
	return n
}

// Norm returns the Euclidean length of the vector.
func (v ActivityVector) Norm() float64 {
	var sum float64
	for _, a := range v {
		sum += a * a
	}
	return math.Sqrt(sum)
}

// Distance returns the Euclidean distance between v and other.
func (v ActivityVector) Distance(other ActivityVector) float64 {
	var sum float64
	for i, a := range v {
		d := a - other[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
