package sfc

import (
	"math"

	"github.com/ThibHlln/eflowcalc/model"
)

func ma1(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(f.Flows[i])
	})
}

func ma2(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return median(f.Flows[i])
	})
}

func ma3(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		cvs := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(sampleStd(y), mean(y))
		})
		return mean(cvs) * 100
	})
}

func ma4(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		lf := log10Floor(f.Flows[i])
		percs := make([]float64, 0, 19)
		for p := 5.0; p <= 95; p += 5 {
			percs = append(percs, percentile(lf, p))
		}
		return cvPercent(percs)
	})
}

func ma5(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(f.Flows[i]), median(f.Flows[i]))
	})
}

func percSpreadRatio(f *model.Frame, hi, lo float64) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(percentile(f.Flows[i], hi), percentile(f.Flows[i], lo))
	})
}

func ma6(f *model.Frame) []float64 { return percSpreadRatio(f, 90, 10) }
func ma7(f *model.Frame) []float64 { return percSpreadRatio(f, 80, 20) }
func ma8(f *model.Frame) []float64 { return percSpreadRatio(f, 75, 25) }

func logPercSpread(f *model.Frame, hi, lo float64) []float64 {
	return perSite(f, func(i int) float64 {
		lf := log10Floor(f.Flows[i])
		spread := percentile(lf, hi) - percentile(lf, lo)
		logMed := math.Log10(median(f.Trim[i]))
		if logMed == 0 {
			return 0
		}
		return spread / logMed
	})
}

func ma9(f *model.Frame) []float64  { return logPercSpread(f, 90, 10) }
func ma10(f *model.Frame) []float64 { return logPercSpread(f, 80, 20) }
func ma11(f *model.Frame) []float64 { return logPercSpread(f, 75, 25) }

func pooledMonth(f *model.Frame, month int) []float64 {
	return perSite(f, func(i int) float64 {
		return pooledMonthMeans(f.Dates, f.Flows[i])[month-1]
	})
}

func ma12(f *model.Frame) []float64 { return pooledMonth(f, 1) }
func ma13(f *model.Frame) []float64 { return pooledMonth(f, 2) }
func ma14(f *model.Frame) []float64 { return pooledMonth(f, 3) }
func ma15(f *model.Frame) []float64 { return pooledMonth(f, 4) }
func ma16(f *model.Frame) []float64 { return pooledMonth(f, 5) }
func ma17(f *model.Frame) []float64 { return pooledMonth(f, 6) }
func ma18(f *model.Frame) []float64 { return pooledMonth(f, 7) }
func ma19(f *model.Frame) []float64 { return pooledMonth(f, 8) }
func ma20(f *model.Frame) []float64 { return pooledMonth(f, 9) }
func ma21(f *model.Frame) []float64 { return pooledMonth(f, 10) }
func ma22(f *model.Frame) []float64 { return pooledMonth(f, 11) }
func ma23(f *model.Frame) []float64 { return pooledMonth(f, 12) }

func monthCV(f *model.Frame, month int) []float64 {
	return perSite(f, func(i int) float64 {
		groups := groupByMonth(f.Dates, f.Flows[i])
		cvs := monthOfYearStats(groups, func(y []float64) float64 {
			return safeDiv(sampleStd(y), mean(y))
		})
		return cvs[month-1] * 100
	})
}

func ma24(f *model.Frame) []float64 { return monthCV(f, 1) }
func ma25(f *model.Frame) []float64 { return monthCV(f, 2) }
func ma26(f *model.Frame) []float64 { return monthCV(f, 3) }
func ma27(f *model.Frame) []float64 { return monthCV(f, 4) }
func ma28(f *model.Frame) []float64 { return monthCV(f, 5) }
func ma29(f *model.Frame) []float64 { return monthCV(f, 6) }
func ma30(f *model.Frame) []float64 { return monthCV(f, 7) }
func ma31(f *model.Frame) []float64 { return monthCV(f, 8) }
func ma32(f *model.Frame) []float64 { return monthCV(f, 9) }
func ma33(f *model.Frame) []float64 { return monthCV(f, 10) }
func ma34(f *model.Frame) []float64 { return monthCV(f, 11) }
func ma35(f *model.Frame) []float64 { return monthCV(f, 12) }

func monthlyMeans(f *model.Frame, i int) []float64 {
	return groupStats(groupByMonth(f.Dates, f.Flows[i]), mean)
}

func ma36(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		mm := monthlyMeans(f, i)
		return safeDiv(maxVal(mm)-minVal(mm), median(mm))
	})
}

func ma37(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		mm := monthlyMeans(f, i)
		return safeDiv(percentile(mm, 75)-percentile(mm, 25), median(mm))
	})
}

func ma38(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		mm := monthlyMeans(f, i)
		return safeDiv(percentile(mm, 90)-percentile(mm, 10), median(mm))
	})
}

func ma39(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(monthlyMeans(f, i))
	})
}

func ma40(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		mm := monthlyMeans(f, i)
		return safeDiv(mean(mm)-median(mm), median(mm))
	})
}

func annualMeans(f *model.Frame, i int) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, mean)
}

func annualMins(f *model.Frame, i int) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, minVal)
}

func annualMaxs(f *model.Frame, i int) []float64 {
	return yearlyReduce(f.Flows[i], f.Years, maxVal)
}

func ma41(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualMeans(f, i)), f.Areas[i])
	})
}

func ma42(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		am := annualMeans(f, i)
		return safeDiv(maxVal(am)-minVal(am), median(am))
	})
}

func ma43(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		am := annualMeans(f, i)
		return safeDiv(percentile(am, 75)-percentile(am, 25), median(am))
	})
}

func ma44(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		am := annualMeans(f, i)
		return safeDiv(percentile(am, 90)-percentile(am, 10), median(am))
	})
}

func ma45(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		am := annualMeans(f, i)
		return safeDiv(mean(am)-median(am), median(am))
	})
}

func monthLow(f *model.Frame, month int) []float64 {
	return perSite(f, func(i int) float64 {
		groups := groupByMonth(f.Dates, f.Flows[i])
		return monthOfYearStats(groups, minVal)[month-1]
	})
}

func ml1(f *model.Frame) []float64  { return monthLow(f, 1) }
func ml2(f *model.Frame) []float64  { return monthLow(f, 2) }
func ml3(f *model.Frame) []float64  { return monthLow(f, 3) }
func ml4(f *model.Frame) []float64  { return monthLow(f, 4) }
func ml5(f *model.Frame) []float64  { return monthLow(f, 5) }
func ml6(f *model.Frame) []float64  { return monthLow(f, 6) }
func ml7(f *model.Frame) []float64  { return monthLow(f, 7) }
func ml8(f *model.Frame) []float64  { return monthLow(f, 8) }
func ml9(f *model.Frame) []float64  { return monthLow(f, 9) }
func ml10(f *model.Frame) []float64 { return monthLow(f, 10) }
func ml11(f *model.Frame) []float64 { return monthLow(f, 11) }
func ml12(f *model.Frame) []float64 { return monthLow(f, 12) }

func ml13(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		groups := groupByMonth(f.Dates, f.Flows[i])
		return cvPercent(groupStats(groups, minVal))
	})
}

func ml14(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		ratios := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(minVal(y), median(y))
		})
		return mean(ratios)
	})
}

func ml15(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		ratios := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(minVal(y), mean(y))
		})
		return mean(ratios)
	})
}

func ml16(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		ratios := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(minVal(y), median(y))
		})
		return median(ratios)
	})
}

func ml17(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return mean(yearlyReduce(f.Flows[i], f.Years, baseFlowIndex))
	})
}

func ml18(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(yearlyReduce(f.Flows[i], f.Years, baseFlowIndex))
	})
}

func ml19(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		ratios := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(minVal(y), mean(y))
		})
		return mean(ratios) * 100
	})
}

func ml20(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return blockBaseFlow(f.Flows[i])
	})
}

func ml21(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(annualMins(f, i))
	})
}

func ml22(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualMins(f, i)), f.Areas[i])
	})
}

func monthHigh(f *model.Frame, month int) []float64 {
	return perSite(f, func(i int) float64 {
		groups := groupByMonth(f.Dates, f.Flows[i])
		return monthOfYearStats(groups, maxVal)[month-1]
	})
}

func mh1(f *model.Frame) []float64  { return monthHigh(f, 1) }
func mh2(f *model.Frame) []float64  { return monthHigh(f, 2) }
func mh3(f *model.Frame) []float64  { return monthHigh(f, 3) }
func mh4(f *model.Frame) []float64  { return monthHigh(f, 4) }
func mh5(f *model.Frame) []float64  { return monthHigh(f, 5) }
func mh6(f *model.Frame) []float64  { return monthHigh(f, 6) }
func mh7(f *model.Frame) []float64  { return monthHigh(f, 7) }
func mh8(f *model.Frame) []float64  { return monthHigh(f, 8) }
func mh9(f *model.Frame) []float64  { return monthHigh(f, 9) }
func mh10(f *model.Frame) []float64 { return monthHigh(f, 10) }
func mh11(f *model.Frame) []float64 { return monthHigh(f, 11) }
func mh12(f *model.Frame) []float64 { return monthHigh(f, 12) }

func mh13(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		groups := groupByMonth(f.Dates, f.Flows[i])
		return cvPercent(groupStats(groups, maxVal))
	})
}

func mh14(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		ratios := yearlyReduce(f.Flows[i], f.Years, func(y []float64) float64 {
			return safeDiv(maxVal(y), median(y))
		})
		return median(ratios)
	})
}

func percOverMedian(f *model.Frame, p float64) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(percentile(f.Flows[i], p), median(f.Trim[i]))
	})
}

func mh15(f *model.Frame) []float64 { return percOverMedian(f, 99) }
func mh16(f *model.Frame) []float64 { return percOverMedian(f, 90) }
func mh17(f *model.Frame) []float64 { return percOverMedian(f, 75) }

func mh18(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return cvPercent(log10Floor(annualMaxs(f, i)))
	})
}

func mh19(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return skewness(log10Floor(annualMaxs(f, i)))
	})
}

func mh20(f *model.Frame) []float64 {
	return perSite(f, func(i int) float64 {
		return safeDiv(mean(annualMaxs(f, i)), f.Areas[i])
	})
}

func floodVolume(f *model.Frame, mult float64) []float64 {
	return perSite(f, func(i int) float64 {
		med := median(f.Trim[i])
		return safeDiv(eventsAvgVolume(f.Flows[i], mult*med), med)
	})
}

func mh21(f *model.Frame) []float64 { return floodVolume(f, 1) }
func mh22(f *model.Frame) []float64 { return floodVolume(f, 3) }
func mh23(f *model.Frame) []float64 { return floodVolume(f, 7) }
