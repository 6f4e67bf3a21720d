package sfc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ThibHlln/eflowcalc/model"
)

func TestDl1Dh1(t *testing.T) {
	f := frameOf([]float64{1, 5, 3, 2, 8, 4}, twoSpans(3), nil)
	assert.InDelta(t, 1.5, dl1(f)[0], 1e-12)
	assert.InDelta(t, 6.5, dh1(f)[0], 1e-12)
}

// TestDl2Dh2 pins the 3-day window split across two 6-day years: the
// first year keeps five windows, the second the remaining five.
func TestDl2Dh2(t *testing.T) {
	x := make([]float64, 12)
	for i := range x {
		x[i] = float64(i + 1)
	}
	f := frameOf(x, twoSpans(6), nil)
	assert.InDelta(t, 4.5, dl2(f)[0], 1e-12, "mean of the annual minima 2 and 7")
	assert.InDelta(t, 8.5, dh2(f)[0], 1e-12, "mean of the annual maxima 6 and 11")
}

func TestDl6Dh6(t *testing.T) {
	f := frameOf([]float64{1, 5, 3, 2, 8, 4}, twoSpans(3), nil)
	assert.InDelta(t, cvPercent([]float64{1, 2}), dl6(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{5, 8}), dh6(f)[0], 1e-12)
}

func TestDl11Dh11(t *testing.T) {
	f := frameOf([]float64{2, 4, 6, 8}, twoSpans(2), nil)
	// annual minima 2 and 6, maxima 4 and 8, record median 5
	assert.InDelta(t, 0.8, dl11(f)[0], 1e-12)
	assert.InDelta(t, 1.2, dh11(f)[0], 1e-12)
}

func TestDl14Dl15(t *testing.T) {
	x := make([]float64, 10)
	for i := range x {
		x[i] = float64(i + 1)
	}
	f := frameOf(x, twoSpans(5), nil)
	assert.InDelta(t, 3.25/5.5, dl14(f)[0], 1e-12)
	assert.InDelta(t, 1.9/5.5, dl15(f)[0], 1e-12)
}

// TestDl16Dl17 averages the per-year mean pulse durations below the
// record's 25th percentile.
func TestDl16Dl17(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// below 2.75: a two-day run in year one, nothing in year two
	assert.InDelta(t, 1.0, dl16(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{2, 0}), dl17(f)[0], 1e-12)
}

func TestDl18Dl19(t *testing.T) {
	f := frameOf([]float64{0, 0, 5, 5, 5, 0, 5, 5}, twoSpans(4), nil)
	assert.InDelta(t, 1.5, dl18(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{2, 1}), dl19(f)[0], 1e-12)
}

func TestDl20(t *testing.T) {
	dates := dayRange(day(2004, time.October, 1), 61) // Oct 31, Nov 30
	x := append(constant(31, 0), constant(30, 3)...)
	f := frameOf(x, []model.Span{{Start: 0, End: 61, Year: 2004}}, dates)
	assert.Equal(t, 1.0, dl20(f)[0])
}

func TestDh14(t *testing.T) {
	dates := dayRange(day(2004, time.October, 1), 123) // Oct, Nov, Dec, Jan
	x := append(constant(31, 1), constant(30, 2)...)
	x = append(x, constant(31, 3)...)
	x = append(x, constant(31, 4)...)
	f := frameOf(x, []model.Span{{Start: 0, End: 123, Year: 2004}}, dates)
	// monthly means 1..4: 95th percentile 3.85 over mean 2.5
	assert.InDelta(t, 3.85/2.5, dh14(f)[0], 1e-12)
}

func TestDh15Dh16(t *testing.T) {
	f := frameOf([]float64{1, 2, 3, 4, 5, 6, 7, 8}, twoSpans(4), nil)
	// above 6.25: no run in year one, a two-day run in year two
	assert.InDelta(t, 1.0, dh15(f)[0], 1e-12)
	assert.InDelta(t, cvPercent([]float64{0, 2}), dh16(f)[0], 1e-12)
}

// TestDh17to21 measures whole-record event durations, not per-year
// ones.
func TestDh17to21(t *testing.T) {
	f := frameOf([]float64{1, 5, 5, 1, 5, 1, 1, 1}, twoSpans(4), nil)
	// median 1: two runs above it lasting 2 and 1 days
	assert.InDelta(t, 1.5, dh17(f)[0], 1e-12)
	assert.InDelta(t, 1.5, dh18(f)[0], 1e-12, "three times the median is still 3")
	assert.Equal(t, 0.0, dh19(f)[0], "nothing exceeds seven times the median")

	// the 75th percentile is 5, so no flow is strictly above it
	assert.Equal(t, 0.0, dh20(f)[0])
	// the 25th percentile is 1: same two runs as the median
	assert.InDelta(t, 1.5, dh21(f)[0], 1e-12)
}

// TestDurationConstant verifies the flat-record degenerate values.
func TestDurationConstant(t *testing.T) {
	f := frameOf(constant(8, 10), twoSpans(4), dayRange(day(2004, time.October, 1), 8))
	assert.Equal(t, 10.0, dl1(f)[0])
	assert.Equal(t, 10.0, dh1(f)[0])
	assert.Equal(t, 0.0, dl6(f)[0])
	assert.Equal(t, 0.0, dh6(f)[0])
	assert.Equal(t, 1.0, dl11(f)[0])
	assert.Equal(t, 1.0, dh11(f)[0])
	assert.Equal(t, 0.0, dl16(f)[0])
	assert.Equal(t, 0.0, dh15(f)[0])
	assert.Equal(t, 0.0, dl18(f)[0])
	assert.Equal(t, 0.0, dh17(f)[0])
	assert.Equal(t, 1.0, dh14(f)[0], "single monthly mean over itself")
}
