package sfc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ThibHlln/eflowcalc/model"
)

func threeWaterYears() ([]time.Time, []model.Span) {
	dates := dayRange(day(2004, time.October, 1), 1095)
	spans := []model.Span{
		{Start: 0, End: 365, Year: 2004},
		{Start: 365, End: 730, Year: 2005},
		{Start: 730, End: 1095, Year: 2006},
	}
	return dates, spans
}

// TestColwellTableLeapDay verifies a 366-day year still fills exactly
// 365 rows, with 29 February dropped.
func TestColwellTableLeapDay(t *testing.T) {
	dates := dayRange(day(2003, time.October, 1), 366)
	years := []model.Span{{Start: 0, End: 366, Year: 2003}}
	table := colwellTable(log10Floor(constant(366, 10)), dates, years, 1)

	var total float64
	for r := 0; r < 365; r++ {
		var row float64
		for c := 0; c < 11; c++ {
			row += table[r][c]
		}
		assert.Equal(t, 1.0, row, "row %d", r)
		total += row
	}
	assert.Equal(t, 365.0, total)
}

// TestTa1Ta2Constant: a flat record is perfectly constant and
// perfectly predictable.
func TestTa1Ta2Constant(t *testing.T) {
	dates := dayRange(day(2004, time.October, 1), 730)
	f := frameOf(constant(730, 10), []model.Span{
		{Start: 0, End: 365, Year: 2004},
		{Start: 365, End: 730, Year: 2005},
	}, dates)
	assert.InDelta(t, 1.0, ta1(f)[0], 1e-9)
	assert.InDelta(t, 100.0, ta2(f)[0], 1e-9)
}

// TestTa1Ta2Seasonal: a pattern repeating identically every year stays
// fully predictable while constancy drops below one.
func TestTa1Ta2Seasonal(t *testing.T) {
	dates := dayRange(day(2004, time.October, 1), 730)
	year := append(constant(100, 1), constant(265, 1000)...)
	f := frameOf(append(append([]float64{}, year...), year...), []model.Span{
		{Start: 0, End: 365, Year: 2004},
		{Start: 365, End: 730, Year: 2005},
	}, dates)

	c := ta1(f)[0]
	assert.Greater(t, c, 0.0)
	assert.Less(t, c, 1.0)
	assert.InDelta(t, 100.0, ta2(f)[0], 1e-9)
}

func TestTimingEmptyYears(t *testing.T) {
	f := frameOf(nil, nil, nil)
	for _, fn := range []Func{ta1, ta2, tl1, tl2, th1, th2} {
		assert.Equal(t, 0.0, fn(f)[0])
	}
}

// TestTh1Th2Spike puts the annual maximum on 5 January every year: the
// mean day is 5 and the spread vanishes.
func TestTh1Th2Spike(t *testing.T) {
	dates, spans := threeWaterYears()
	x := constant(1095, 1)
	for _, i := range []int{96, 365 + 96, 730 + 96} {
		x[i] = 9
		assert.Equal(t, time.January, dates[i].Month())
		assert.Equal(t, 5, dates[i].Day())
	}
	f := frameOf(x, spans, dates)
	assert.Equal(t, 5.0, th1(f)[0])
	assert.InDelta(t, 0.0, th2(f)[0], 1e-6)
}

// TestTl1Tl2Ties: a flat record bottoms out on the first day of every
// year, 1 October, whose Julian day differs by one across leap years.
func TestTl1Tl2Ties(t *testing.T) {
	dates, spans := threeWaterYears()
	f := frameOf(constant(1095, 1), spans, dates)
	assert.Equal(t, 274.0, tl1(f)[0])
	assert.InDelta(t, 0.4715, tl2(f)[0], 1e-2)
}

// TestMeanExtremeDay pins the quadrant corrections one by one.
func TestMeanExtremeDay(t *testing.T) {
	assert.Equal(t, 365.0, meanExtremeDay(1, 0), "day zero wraps to the end of the year")
	assert.Equal(t, 91.0, meanExtremeDay(0, 1))
	assert.Equal(t, 183.0, meanExtremeDay(-1, 0))
	assert.Equal(t, 274.0, meanExtremeDay(0, -1))
	assert.Equal(t, 46.0, meanExtremeDay(1, 1))
	assert.Equal(t, 228.0, meanExtremeDay(-1, -1))
	assert.Equal(t, 320.0, meanExtremeDay(1, -1))
}

func TestSpreadDays(t *testing.T) {
	assert.Equal(t, 0.0, spreadDays(1, 0))
	assert.Equal(t, 0.0, spreadDays(2, 0), "resultants beyond one are clamped")
	assert.InDelta(t, 82.21, spreadDays(0, 0), 1e-2)
}
