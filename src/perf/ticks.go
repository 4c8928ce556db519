package perf

import (
	"math"
	"strconv"
)

// FigureSize converts a figure size in inches at the given DPI into pixels.
// Non-positive inputs fall back to the 10x6 inch, 100 DPI default.
func FigureSize(widthIn, heightIn float64, dpi int) (int, int) {
	if widthIn <= 0 || heightIn <= 0 {
		widthIn, heightIn = 10, 6
	}
	if dpi <= 0 {
		dpi = 100
	}
	return int(math.Round(widthIn * float64(dpi))), int(math.Round(heightIn * float64(dpi)))
}

// paddedBounds widens [min,max] by 5% of the span on both sides.
func paddedBounds(min, max float64) (float64, float64) {
	if max <= min {
		max = min + 1
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}

// BuildNumericTicks generates roughly n tick positions spanning [min,max]
// using a 1, 2, 2.5, 5 x 10^k step.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatNumericTick returns a compact tick label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}
