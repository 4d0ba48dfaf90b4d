package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/etzhaim/netivot/pkg/graph"
)

// spectralLabels assigns each vector to one of k groups using spectral
// clustering on an RBF affinity matrix. Callers guarantee 2 <= k <= len(vecs).
func spectralLabels(vecs []graph.ActivityVector, k int, sigma float64) []int {
	n := len(vecs)

	dists := pairwiseDistances(vecs)
	if sigma <= 0 {
		sigma = medianDistance(dists)
	}
	if sigma <= 0 {
		// All segments are identical; a single group is the only sensible
		// answer.
		return make([]int, n)
	}

	affinity := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := dists[i][j]
			affinity.SetSym(i, j, math.Exp(-(d*d)/(2*sigma*sigma)))
		}
	}

	laplacian := normalizedLaplacian(affinity)

	var eig mat.EigenSym
	if ok := eig.Factorize(laplacian, true); !ok {
		// Factorization failing on a 10-dimensional feature space over a
		// handful of segments means degenerate input; fall back to one group.
		return make([]int, n)
	}
	var eigvecs mat.Dense
	eig.VectorsTo(&eigvecs)

	// Eigenvalues come back in ascending order, so the embedding is the
	// first k columns, row-normalized.
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		var norm float64
		for j := 0; j < k; j++ {
			row[j] = eigvecs.At(i, j)
			norm += row[j] * row[j]
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for j := range row {
				row[j] /= norm
			}
		}
		points[i] = row
	}

	return kmeans(points, k)
}

// normalizedLaplacian computes I - D^{-1/2} W D^{-1/2}.
func normalizedLaplacian(affinity *mat.SymDense) *mat.SymDense {
	n := affinity.SymmetricDim()

	invSqrtDegree := make([]float64, n)
	for i := 0; i < n; i++ {
		var degree float64
		for j := 0; j < n; j++ {
			degree += affinity.At(i, j)
		}
		if degree > 0 {
			invSqrtDegree[i] = 1 / math.Sqrt(degree)
		}
	}

	laplacian := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -affinity.At(i, j) * invSqrtDegree[i] * invSqrtDegree[j]
			if i == j {
				v += 1
			}
			laplacian.SetSym(i, j, v)
		}
	}
	return laplacian
}

func pairwiseDistances(vecs []graph.ActivityVector) [][]float64 {
	n := len(vecs)
	dists := make([][]float64, n)
	for i := range dists {
		dists[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := vecs[i].Distance(vecs[j])
			dists[i][j] = d
			dists[j][i] = d
		}
	}
	return dists
}

// medianDistance returns the median of the strictly positive pairwise
// distances, or zero when there is none.
func medianDistance(dists [][]float64) float64 {
	var positive []float64
	for i := range dists {
		for j := i + 1; j < len(dists); j++ {
			if dists[i][j] > 0 {
				positive = append(positive, dists[i][j])
			}
		}
	}
	if len(positive) == 0 {
		return 0
	}
	sort.Float64s(positive)
	return positive[len(positive)/2]
}
