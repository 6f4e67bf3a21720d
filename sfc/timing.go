package sfc

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ThibHlln/eflowcalc/model"
)

// colwellBounds are the multiples of the log mean flow separating the
// eleven flow states of Colwell (1974).
var colwellBounds = [10]float64{0.10, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25}

// colwellTable is the 365 by 11 day-of-year frequency table over flow
// states. Rows follow the days of each hydrological year in order;
// 29 February is dropped from leap years so every year lands on 365
// rows. The state conditions are evaluated independently, as the
// published formulation lists them.
func colwellTable(logFlows []float64, dates []time.Time, years []model.Span, logMean float64) [365][11]float64 {
	var table [365][11]float64
	for _, yr := range years {
		row := 0
		for i := yr.Start; i < yr.End; i++ {
			_, m, d := dates[i].Date()
			if m == time.February && d == 29 {
				continue
			}
			lf := logFlows[i]
			if lf < colwellBounds[0]*logMean {
				table[row][0]++
			}
			for c := 0; c < 9; c++ {
				if lf >= colwellBounds[c]*logMean && lf < colwellBounds[c+1]*logMean {
					table[row][c+1]++
				}
			}
			if lf >= colwellBounds[9]*logMean {
				table[row][10]++
			}
			row++
		}
	}
	return table
}

// entropy10 is the base-10 Shannon entropy of the counts, zero cells
// skipped.
func entropy10(counts []float64, total float64) float64 {
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := c / total
		h -= p * math.Log10(p)
	}
	return h
}

func ta1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		logMean := math.Log10(mean(f.Trim[i]))
		table := colwellTable(log10Floor(f.Flows[i]), f.Dates, f.Years, logMean)
		var colSums [11]float64
		var z float64
		for r := 0; r < 365; r++ {
			for c := 0; c < 11; c++ {
				colSums[c] += table[r][c]
				z += table[r][c]
			}
		}
		hy := entropy10(colSums[:], z)
		return 1 - hy/math.Log10(11)
	})
}

func ta2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		logMean := math.Log10(mean(f.Trim[i]))
		table := colwellTable(log10Floor(f.Flows[i]), f.Dates, f.Years, logMean)
		var rowSums [365]float64
		cells := make([]float64, 0, 365*11)
		var z float64
		for r := 0; r < 365; r++ {
			for c := 0; c < 11; c++ {
				rowSums[r] += table[r][c]
				cells = append(cells, table[r][c])
				z += table[r][c]
			}
		}
		hx := entropy10(rowSums[:], z)
		hxy := entropy10(cells, z)
		return 100 * (1 - (hxy-hx)/math.Log10(11))
	})
}

// extremeDayVector averages the unit vectors of the day-of-year each
// hydrological year reaches its extreme flow on, the circular
// treatment of Julian dates. Ties go to the first occurrence.
func extremeDayVector(x []float64, dates []time.Time, years []model.Span, wantMax bool) (float64, float64) {
	var sx, sy float64
	for _, yr := range years {
		seg := x[yr.Start:yr.End]
		idx := floats.MinIdx(seg)
		if wantMax {
			idx = floats.MaxIdx(seg)
		}
		jd := float64(dates[yr.Start+idx].YearDay())
		a := jd * 2 * math.Pi / 365.25
		sx += math.Cos(a)
		sy += math.Sin(a)
	}
	n := float64(len(years))
	return sx / n, sy / n
}

// meanExtremeDay turns the mean unit vector into a Julian day, with
// the quadrant corrections applied in order and the result rounded
// half to even. A vector pointing nowhere lands on day 365.
func meanExtremeDay(xm, ym float64) float64 {
	theta := math.Atan(safeDiv(ym, xm)) * 180 / math.Pi
	if xm < 0 {
		theta += 180
	}
	if xm == 0 && ym > 0 {
		theta = 90
	}
	if xm == 0 && ym < 0 {
		theta = 270
	}
	if theta < 0 {
		theta += 360
	}
	days := theta * 365.25 / 360
	if days == 0 {
		days = 365.25
	}
	return math.RoundToEven(days)
}

// spreadDays is the circular standard deviation of the extreme days,
// expressed in days.
func spreadDays(xm, ym float64) float64 {
	r := math.Sqrt(xm*xm + ym*ym)
	if r > 1 {
		r = 1
	}
	return math.Sqrt(2*(1-r)) * 180 / math.Pi * 365.25 / 360
}

func tl1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		xm, ym := extremeDayVector(f.Flows[i], f.Dates, f.Years, false)
		return meanExtremeDay(xm, ym)
	})
}

func tl2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		xm, ym := extremeDayVector(f.Flows[i], f.Dates, f.Years, false)
		return spreadDays(xm, ym)
	})
}

func th1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		xm, ym := extremeDayVector(f.Flows[i], f.Dates, f.Years, true)
		return meanExtremeDay(xm, ym)
	})
}

func th2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		if len(f.Years) == 0 {
			return 0
		}
		xm, ym := extremeDayVector(f.Flows[i], f.Dates, f.Years, true)
		return spreadDays(xm, ym)
	})
}
