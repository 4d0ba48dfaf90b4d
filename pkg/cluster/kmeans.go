package cluster

import "math"

const maxKMeansIterations = 100

// kmeans runs Lloyd's algorithm with farthest-first initialization. The
// seeding and all tie-breaks are index-ordered, so the result is
// deterministic for a given input.
func kmeans(points [][]float64, k int) []int {
	n := len(points)
	if k >= n {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i
		}
		return labels
	}

	centers := initialCenters(points, k)
	labels := make([]int, n)

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCenter(p, centers)
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Recompute centers; an emptied cluster takes over the point
		// farthest from its current center.
		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, len(points[0]))
		}
		for i, p := range points {
			counts[labels[i]]++
			for j, v := range p {
				next[labels[i]][j] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				next[c] = points[farthestPoint(points, labels, centers)]
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
		}
		centers = next
	}

	return labels
}

// initialCenters seeds with the first point, then repeatedly adds the point
// farthest from its nearest chosen center.
func initialCenters(points [][]float64, k int) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, points[0])
	for len(centers) < k {
		bestIdx := 0
		bestDist := -1.0
		for i, p := range points {
			d := distanceToNearest(p, centers)
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centers = append(centers, points[bestIdx])
	}
	return centers
}

func nearestCenter(p []float64, centers [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, center := range centers {
		d := squaredDistance(p, center)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func distanceToNearest(p []float64, centers [][]float64) float64 {
	best := math.Inf(1)
	for _, center := range centers {
		if d := squaredDistance(p, center); d < best {
			best = d
		}
	}
	return best
}

func farthestPoint(points [][]float64, labels []int, centers [][]float64) int {
	bestIdx := 0
	bestDist := -1.0
	for i, p := range points {
		d := squaredDistance(p, centers[labels[i]])
		if d > bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestIdx
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
