package perf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigureSize(t *testing.T) {
	w, h := FigureSize(10, 6, 100)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 600, h)

	w, h = FigureSize(0, 0, 0)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 600, h)

	w, h = FigureSize(4, 3, 50)
	assert.Equal(t, 200, w)
	assert.Equal(t, 150, h)
}

func TestPaddedBounds(t *testing.T) {
	lo, hi := paddedBounds(100, 200)
	assert.InDelta(t, 95.0, lo, 1e-9)
	assert.InDelta(t, 205.0, hi, 1e-9)

	lo, hi = paddedBounds(5, 5)
	assert.Less(t, lo, 5.0)
	assert.Greater(t, hi, 5.0)
}

func TestBuildNumericTicks(t *testing.T) {
	ticks := BuildNumericTicks(0, 100, 6)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.LessOrEqual(t, ticks[0], 0.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1], 100.0)
	step := ticks[1] - ticks[0]
	for i := 2; i < len(ticks); i++ {
		assert.InDelta(t, step, ticks[i]-ticks[i-1], 1e-9)
	}

	assert.Nil(t, BuildNumericTicks(0, 1, 1))
	assert.Nil(t, BuildNumericTicks(math.NaN(), 1, 5))
}

func TestFormatNumericTick(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		1500:   "1500",
		12.34:  "12.3",
		1.234:  "1.23",
		0.1234: "0.123",
		0.0012: "0.0012",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumericTick(in), "input %v", in)
	}
}
