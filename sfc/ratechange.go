package sfc

import (
	"math"

	"github.com/ThibHlln/eflowcalc/model"
)

func dayDiffs(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = x[i+1] - x[i]
	}
	return out
}

func risesOf(x []float64) []float64 {
	rises := []float64{}
	for _, d := range dayDiffs(x) {
		if d > 0 {
			rises = append(rises, d)
		}
	}
	return rises
}

func fallsOf(x []float64) []float64 {
	falls := []float64{}
	for _, d := range dayDiffs(x) {
		if d < 0 {
			falls = append(falls, -d)
		}
	}
	return falls
}

// logDiffs returns the day-to-day differences of the natural
// logarithm of the flows, zeros raised to 0.01 beforehand.
func logDiffs(x []float64) []float64 {
	logs := make([]float64, len(x))
	for i, v := range x {
		if v == 0 {
			v = 0.01
		}
		logs[i] = math.Log(v)
	}
	return dayDiffs(logs)
}

func ra1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(risesOf(f.Flows[i]))
	})
}

func ra2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(risesOf(f.Flows[i]))
	})
}

func ra3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(fallsOf(f.Flows[i]))
	})
}

func ra4(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(fallsOf(f.Flows[i]))
	})
}

func ra5(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(float64(len(risesOf(f.Flows[i]))), float64(len(f.Flows[i])))
	})
}

func ra6(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		rises := []float64{}
		for _, d := range logDiffs(f.Flows[i]) {
			if d > 0 {
				rises = append(rises, d)
			}
		}
		return median(rises)
	})
}

func ra7(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		falls := []float64{}
		for _, d := range logDiffs(f.Flows[i]) {
			if d < 0 {
				falls = append(falls, -d)
			}
		}
		return median(falls)
	})
}

func ra8(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(yearlyReduce(f.Flows[i], f.Years, countReversals))
	})
}

func ra9(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(yearlyReduce(f.Flows[i], f.Years, countReversals))
	})
}
