package detection

import (
	"math"
)

// zScoreSentinel stands in for an unbounded deviation when the baseline has
// zero variance. Without it a previously error-free service could never
// trigger its first anomaly, since the score would divide by zero.
const zScoreSentinel = 999

func meanAndStdDev(counts []int64) (float64, float64) {
	if len(counts) == 0 {
		return 0, 0
	}

	var sum float64
	for _, c := range counts {
		sum += float64(c)
	}
	mean := sum / float64(len(counts))

	var sqDiff float64
	for _, c := range counts {
		d := float64(c) - mean
		sqDiff += d * d
	}

	// population standard deviation
	return mean, math.Sqrt(sqDiff / float64(len(counts)))
}

func zScore(current, mean, stddev float64) float64 {
	if stddev > 0 {
		return (current - mean) / stddev
	}

	if current > mean {
		return zScoreSentinel
	}

	return 0
}
