package sfc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThibHlln/eflowcalc/model"
)

func TestRa1Ra3Ra5(t *testing.T) {
	f := frameOf([]float64{2, 5, 3, 3, 6}, twoSpans(2), nil)
	assert.InDelta(t, 3.0, ra1(f)[0], 1e-12, "mean of the rises 3 and 3")
	assert.InDelta(t, 2.0, ra3(f)[0], 1e-12, "falls are reported positive")
	assert.InDelta(t, 0.4, ra5(f)[0], 1e-12, "two rising days out of five")
}

func TestRa2Ra4(t *testing.T) {
	f := frameOf([]float64{1, 3, 2, 6, 2}, twoSpans(2), nil)
	// rises 2 and 4, falls 1 and 4
	assert.InDelta(t, cvPercent([]float64{2, 4}), ra2(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{1, 4}), ra4(f)[0], 1e-12)
}

// TestRa6Ra7 work on natural-log differences.
func TestRa6Ra7(t *testing.T) {
	f := frameOf([]float64{1, math.E, 1, math.E * math.E, 1}, twoSpans(2), nil)
	// log rises 1 and 2, log falls 1 and 2
	assert.InDelta(t, 1.5, ra6(f)[0], 1e-12)
	assert.InDelta(t, 1.5, ra7(f)[0], 1e-12)
}

// TestRa6ZeroFloor: zeros are raised to 0.01 before the logarithm, so
// a step from 0 to 0.01 is no rise at all.
func TestRa6ZeroFloor(t *testing.T) {
	f := frameOf([]float64{0, 0.01, 1}, []model.Span{{Start: 0, End: 3, Year: 2000}}, nil)
	assert.InDelta(t, math.Log(100), ra6(f)[0], 1e-12)
	assert.Equal(t, 0.0, ra7(f)[0])
}

func TestRa8Ra9(t *testing.T) {
	f := frameOf([]float64{1, 2, 1, 2, 1, 2, 3, 4}, twoSpans(4), nil)
	// two reversals in the first year, none in the second
	assert.InDelta(t, 1.0, ra8(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{2, 0}), ra9(f)[0], 1e-12)
}

// TestRateConstant: a flat record rises, falls and reverses zero
// times.
func TestRateConstant(t *testing.T) {
	f := frameOf(constant(8, 10), twoSpans(4), nil)
	for _, fn := range []Func{ra1, ra2, ra3, ra4, ra5, ra6, ra7, ra8, ra9} {
		assert.Equal(t, 0.0, fn(f)[0])
	}
}
