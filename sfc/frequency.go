package sfc

import (
	"github.com/ThibHlln/eflowcalc/model"
)

// pulseCounts is the number of threshold crossings per hydrological
// year. The threshold always derives from the full trimmed record.
func pulseCounts(f *model.Frame, i int, threshold float64, above bool) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
		return countEvents(y, threshold, above)
	})
}

// positiveOnly drops the years excluded from the averaging, the ones
// with no qualifying event.
func positiveOnly(counts []float64) []float64 {
	kept := []float64{}
	for _, c := range counts {
		if c > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

func fl1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, percentile(f.Trim[i], 25), false))
	})
}

func fl2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(pulseCounts(f, i, percentile(f.Trim[i], 25), false))
	})
}

func fl3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		counts := pulseCounts(f, i, 0.05*mean(f.Trim[i]), false)
		return mean(positiveOnly(counts))
	})
}

func fh1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, percentile(f.Trim[i], 75), true))
	})
}

func fh2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(pulseCounts(f, i, percentile(f.Trim[i], 75), true))
	})
}

func fh3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		threshold := 3 * median(f.Trim[i])
		days := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return countDays(y, threshold, true)
		})
		return mean(days)
	})
}

func fh4(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		threshold := 7 * median(f.Trim[i])
		days := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return countDays(y, threshold, true)
		})
		return mean(days)
	})
}

func fh5(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		counts := pulseCounts(f, i, median(f.Trim[i]), true)
		return mean(positiveOnly(counts))
	})
}

func fh6(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, 3*median(f.Trim[i]), true))
	})
}

func fh7(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, 7*median(f.Trim[i]), true))
	})
}

func fh8(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, percentile(f.Trim[i], 75), true))
	})
}

func fh9(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseCounts(f, i, percentile(f.Trim[i], 25), true))
	})
}

func fh10(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		minima := yearlyReduce(f.Trim[i], f.TrimYears, minVal)
		counts := pulseCounts(f, i, median(minima), true)
		return mean(positiveOnly(counts))
	})
}
