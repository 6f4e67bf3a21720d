package sfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFl1Fl2(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// below 2.75: one run in the first year, none in the second
	assert.InDelta(t, 0.5, fl1(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{1, 0}), fl2(f)[0], 1e-12)
}

func TestFl3(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// 5 percent of the mean is 0.225, never undercut, and years without
	// a pulse are excluded rather than averaged as zeros
	assert.Equal(t, 0.0, fl3(f)[0])

	g := frameOf([]float64{0, 9, 9, 9, 9, 9, 9, 9}, twoSpans(4), nil)
	// one pulse in the first year, the pulse-free second year drops out
	assert.InDelta(t, 1.0, fl3(g)[0], 1e-12)
}

func TestFh1Fh2(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// above 6.25: no run in the first year, one in the second
	assert.InDelta(t, 0.5, fh1(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{0, 1}), fh2(f)[0], 1e-12)
	assert.Equal(t, fh1(f)[0], fh8(f)[0], "fh8 repeats the fh1 measure")
}

func TestFh3Fh4(t *testing.T) {
	f := frameOf([]float64{1, 1, 20, 1, 1, 20, 20, 1}, twoSpans(4), nil)
	// median 1: three times and seven times both cut at the 20s
	assert.InDelta(t, 1.5, fh3(f)[0], 1e-12)
	assert.InDelta(t, 1.5, fh4(f)[0], 1e-12)
}

func TestFh5(t *testing.T) {
	f := frameOf([]float64{1, 1, 20, 1, 20, 1, 20, 1}, twoSpans(4), nil)
	// above the median 1: one event in year one, two in year two
	assert.InDelta(t, 1.5, fh5(f)[0], 1e-12)
}

func TestFh6Fh7(t *testing.T) {
	f := frameOf([]float64{1, 1, 20, 1, 20, 1, 20, 1}, twoSpans(4), nil)
	assert.InDelta(t, 1.5, fh6(f)[0], 1e-12)
	assert.InDelta(t, 1.5, fh7(f)[0], 1e-12)
}

func TestFh9(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// above 2.75: the tail of year one and all of year two
	assert.InDelta(t, 1.0, fh9(f)[0], 1e-12)
}

// TestFh10 thresholds on the median of the annual minima.
func TestFh10(t *testing.T) {
	f := frameOf([]float64{1, 9, 1, 9, 3, 9, 3, 9}, twoSpans(4), nil)
	// annual minima 1 and 3, median 2: year one has two events above,
	// year two is entirely above so it counts a single run
	assert.InDelta(t, 1.5, fh10(f)[0], 1e-12)
}

// TestFrequencyConstant verifies a flat record produces no pulses at
// all.
func TestFrequencyConstant(t *testing.T) {
	f := frameOf(constant(8, 10), twoSpans(4), nil)
	for _, fn := range []Func{fl1, fl2, fl3, fh1, fh2, fh3, fh4, fh5, fh6, fh7, fh8, fh9, fh10} {
		assert.Equal(t, 0.0, fn(f)[0])
	}
}
