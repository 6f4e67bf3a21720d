package sfc

import (
	"github.com/ThibHlln/eflowcalc/model"
)

func annualLowWindows(f *model.Frame, i, w int) []float64 {
	return annualWindowExtremes(f.Flows[i], f.Years, w, false)
}

func annualHighWindows(f *model.Frame, i, w int) []float64 {
	return annualWindowExtremes(f.Flows[i], f.Years, w, true)
}

func dl1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualLowWindows(f, i, 1)) })
}

func dl2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualLowWindows(f, i, 3)) })
}

func dl3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualLowWindows(f, i, 7)) })
}

func dl4(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualLowWindows(f, i, 30)) })
}

func dl5(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualLowWindows(f, i, 90)) })
}

func dl6(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualLowWindows(f, i, 1)) })
}

func dl7(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualLowWindows(f, i, 3)) })
}

func dl8(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualLowWindows(f, i, 7)) })
}

func dl9(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualLowWindows(f, i, 30)) })
}

func dl10(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualLowWindows(f, i, 90)) })
}

func dl11(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualLowWindows(f, i, 1)), median(f.Trim[i]))
	})
}

func dl12(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualLowWindows(f, i, 7)), median(f.Trim[i]))
	})
}

func dl13(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualLowWindows(f, i, 30)), median(f.Trim[i]))
	})
}

func dl14(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(percentile(f.Flows[i], 25), median(f.Trim[i]))
	})
}

func dl15(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(percentile(f.Flows[i], 10), median(f.Trim[i]))
	})
}

// pulseDurations is the average event length per hydrological year
// beyond a whole-record threshold.
func pulseDurations(f *model.Frame, i int, threshold float64, above bool) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
		return eventsAvgDuration(y, threshold, above)
	})
}

func dl16(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseDurations(f, i, percentile(f.Trim[i], 25), false))
	})
}

func dl17(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(pulseDurations(f, i, percentile(f.Trim[i], 25), false))
	})
}

func zeroDayCounts(f *model.Frame, i int) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
		n := 0
		for _, v := range y {
			if v == 0 {
				n++
			}
		}
		return float64(n)
	})
}

func dl18(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(zeroDayCounts(f, i)) })
}

func dl19(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(zeroDayCounts(f, i)) })
}

func dl20(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		n := 0
		for _, m := range monthlyMeans(f, i) {
			if m == 0 {
				n++
			}
		}
		return float64(n)
	})
}

func dh1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualHighWindows(f, i, 1)) })
}

func dh2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualHighWindows(f, i, 3)) })
}

func dh3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualHighWindows(f, i, 7)) })
}

func dh4(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualHighWindows(f, i, 30)) })
}

func dh5(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return mean(annualHighWindows(f, i, 90)) })
}

func dh6(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualHighWindows(f, i, 1)) })
}

func dh7(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualHighWindows(f, i, 3)) })
}

func dh8(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualHighWindows(f, i, 7)) })
}

func dh9(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualHighWindows(f, i, 30)) })
}

func dh10(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 { return cvPercent(annualHighWindows(f, i, 90)) })
}

func dh11(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualHighWindows(f, i, 1)), median(f.Trim[i]))
	})
}

func dh12(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualHighWindows(f, i, 7)), median(f.Trim[i]))
	})
}

func dh13(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualHighWindows(f, i, 30)), median(f.Trim[i]))
	})
}

func dh14(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		mm := monthlyMeans(f, i)
		return safeDiv(percentile(mm, 95), mean(mm))
	})
}

func dh15(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(pulseDurations(f, i, percentile(f.Trim[i], 75), true))
	})
}

func dh16(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(pulseDurations(f, i, percentile(f.Trim[i], 75), true))
	})
}

func dh17(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return eventsAvgDuration(f.Flows[i], median(f.Trim[i]), true)
	})
}

func dh18(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return eventsAvgDuration(f.Flows[i], 3*median(f.Trim[i]), true)
	})
}

func dh19(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return eventsAvgDuration(f.Flows[i], 7*median(f.Trim[i]), true)
	})
}

func dh20(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return eventsAvgDuration(f.Flows[i], percentile(f.Trim[i], 75), true)
	})
}

func dh21(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return eventsAvgDuration(f.Flows[i], percentile(f.Trim[i], 25), true)
	})
}
