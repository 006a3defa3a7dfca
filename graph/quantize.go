package graph

import (
	"fmt"
	"math"
)

// quantizeEpsilon keeps the maximum sample on the top level when (max-min)/margin rounds below an integer
const quantizeEpsilon = 1e-9

// Quantize maps every sample onto a level in [0, paletteLen)
// A flat series maps to the palette midpoint
func Quantize(series []float64, paletteLen int) ([]int, error) {
	if paletteLen < 2 {
		return nil, fmt.Errorf("%w: palette of %d glyphs", ErrInvalidConfiguration, paletteLen)
	}
	min, max, err := bounds(series)
	if err != nil {
		return nil, err
	}

	levels := make([]int, len(series))
	top := paletteLen - 1

	// Handle flat line
	if max == min {
		mid := top / 2
		for i := range levels {
			levels[i] = mid
		}
		return levels, nil
	}

	// Halved operands keep max-min finite for ranges beyond math.MaxFloat64
	margin := (max/2 - min/2) / float64(top)
	for i, v := range series {
		levels[i] = clampLevel(int(math.Floor((v/2-min/2)/margin+quantizeEpsilon)), 0, top)
	}
	return levels, nil
}

// bounds returns series range, rejecting empty input and non-finite samples
func bounds(series []float64) (min, max float64, err error) {
	if len(series) == 0 {
		return 0, 0, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	min, max = series[0], series[0]
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("%w: sample %d is %v", ErrInvalidInput, i, v)
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}

func clampLevel(level, lo, hi int) int {
	if level < lo {
		return lo
	}
	if level > hi {
		return hi
	}
	return level
}
