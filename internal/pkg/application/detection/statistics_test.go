package detection

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestMeanAndStdDev(t *testing.T) {
	is := is.New(t)

	mean, stddev := meanAndStdDev([]int64{2, 3, 2, 4, 3})

	is.True(math.Abs(mean-2.8) < 1e-9)
	is.True(math.Abs(stddev-0.7483314774) < 1e-6)
}

func TestMeanAndStdDevOfEmptyInput(t *testing.T) {
	is := is.New(t)

	mean, stddev := meanAndStdDev(nil)

	is.Equal(0.0, mean)
	is.Equal(0.0, stddev)
}

func TestZScore(t *testing.T) {
	is := is.New(t)

	z := zScore(10, 2.8, 0.7483314774)
	is.True(math.Abs(z-9.6214) < 1e-3)
}

func TestZScoreSentinelOnZeroVariance(t *testing.T) {
	is := is.New(t)

	is.Equal(float64(zScoreSentinel), zScore(6, 0, 0))
	is.Equal(0.0, zScore(0, 0, 0))
}
