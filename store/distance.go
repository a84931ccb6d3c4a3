package store

import "math"

// L2Distance returns the Euclidean distance between two vectors. Vectors of
// different widths are incomparable and yield +Inf, which sorts them after
// every finite distance.
func L2Distance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
