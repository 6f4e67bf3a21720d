package sfc

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ThibHlln/eflowcalc/model"
)

// safeDiv resolves division by zero to zero.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// sampleStd is the n-1 standard deviation, zero below two values.
func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.StdDev(x, nil)
}

// cvPercent is the coefficient of variation expressed in percent.
func cvPercent(x []float64) float64 {
	return safeDiv(sampleStd(x)*100, mean(x))
}

func minVal(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Min(x)
}

func maxVal(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Max(x)
}

// percentile interpolates linearly between order statistics at rank
// p/100*(n-1), with p in [0, 100].
func percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	s := make([]float64, n)
	copy(s, x)
	sort.Float64s(s)
	if n == 1 {
		return s[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return s[n-1]
	}
	frac := rank - float64(lo)
	return s[lo] + frac*(s[lo+1]-s[lo])
}

func median(x []float64) float64 {
	return percentile(x, 50)
}

// log10Floor takes base-10 logarithms after raising zero values to
// 0.01, the floor the formulas use to keep logarithms finite.
func log10Floor(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v == 0 {
			v = 0.01
		}
		out[i] = math.Log10(v)
	}
	return out
}

// skewness of a sample, with the n-1 standard deviation in the
// denominator. Fewer than three values give zero.
func skewness(x []float64) float64 {
	if len(x) < 3 {
		return 0
	}
	n := float64(len(x))
	var s1, s2, s3 float64
	for _, v := range x {
		s1 += v
		s2 += v * v
		s3 += v * v * v
	}
	sd := sampleStd(x)
	return safeDiv(n*n*s3-3*n*s2*s1+2*s1*s1*s1, n*(n-1)*(n-2)*sd*sd*sd)
}

// yearlyReduce applies f to each hydrological year of x.
func yearlyReduce(x []float64, years []model.Span, f func([]float64) float64) []float64 {
	out := make([]float64, len(years))
	for i, yr := range years {
		out[i] = f(x[yr.Start:yr.End])
	}
	return out
}

// rollingMean is the trailing moving average: output i covers x[i:i+w].
func rollingMean(x []float64, w int) []float64 {
	if w <= 0 || len(x) < w {
		return nil
	}
	out := make([]float64, len(x)-w+1)
	sum := floats.Sum(x[:w])
	out[0] = sum / float64(w)
	for i := 1; i < len(out); i++ {
		sum += x[i+w-1] - x[i-1]
		out[i] = sum / float64(w)
	}
	return out
}

// annualWindowExtremes reduces the w-day rolling means of the whole
// record to one extreme per hydrological year. The windows overlapping
// two years are split the way a centred attribution does it: the first
// year keeps its day count minus ceil(w/2)-1 windows, interior years
// their full count, and the last year whatever remains.
func annualWindowExtremes(x []float64, years []model.Span, w int, wantMax bool) []float64 {
	reduce := minVal
	if wantMax {
		reduce = maxVal
	}
	if w == 1 {
		return yearlyReduce(x, years, reduce)
	}
	roll := rollingMean(x, w)
	out := make([]float64, 0, len(years))
	i := 0
	for k, yr := range years {
		n := yr.Len()
		var lo, hi int
		if k == 0 {
			lo, hi = 0, n-(w+1)/2+1
			i = hi
		} else {
			lo, hi = i, i+n
			i += n
		}
		if hi < 0 {
			hi = 0
		}
		if hi > len(roll) {
			hi = len(roll)
		}
		if lo < 0 {
			lo = 0
		}
		if lo > hi {
			lo = hi
		}
		out = append(out, reduce(roll[lo:hi]))
	}
	return out
}

// countEvents is the number of runs of consecutive days beyond the
// threshold. Runs touching either end of the series count.
func countEvents(x []float64, threshold float64, above bool) float64 {
	count := 0
	in := false
	for _, v := range x {
		hit := v < threshold
		if above {
			hit = v > threshold
		}
		if hit && !in {
			count++
		}
		in = hit
	}
	return float64(count)
}

func countDays(x []float64, threshold float64, above bool) float64 {
	count := 0
	for _, v := range x {
		if above && v > threshold {
			count++
		}
		if !above && v < threshold {
			count++
		}
	}
	return float64(count)
}

// eventsAvgDuration is the mean length in days of the runs beyond the
// threshold, zero when there is no run.
func eventsAvgDuration(x []float64, threshold float64, above bool) float64 {
	return safeDiv(countDays(x, threshold, above), countEvents(x, threshold, above))
}

// eventsAvgVolume is the mean volume of the runs above the threshold,
// counting only the flow in excess of it, zero when there is no run.
func eventsAvgVolume(x []float64, threshold float64) float64 {
	var excess float64
	for _, v := range x {
		if v > threshold {
			excess += v - threshold
		}
	}
	return safeDiv(excess, countEvents(x, threshold, true))
}

// countReversals is the number of sign changes in the day-to-day flow
// differences. Days without change extend the current rise or fall,
// and unchanged days at the very start belong to the first one, so a
// constant series has zero reversals.
func countReversals(x []float64) float64 {
	count := 0
	prev := 0
	for i := 1; i < len(x); i++ {
		s := 0
		if x[i] > x[i-1] {
			s = 1
		} else if x[i] < x[i-1] {
			s = -1
		}
		if s == 0 {
			continue
		}
		if prev != 0 && s != prev {
			count++
		}
		prev = s
	}
	return float64(count)
}

// baseFlowIndex is the lowest 7-day mean flow over the period mean.
func baseFlowIndex(x []float64) float64 {
	roll := rollingMean(x, 7)
	if len(roll) == 0 {
		return 0
	}
	return safeDiv(floats.Min(roll), mean(x))
}

// blockBaseFlow separates base flow with the five-day block method:
// a block minimum is kept as base flow where 90 percent of it stays
// under the minimum of the surrounding three blocks, the gaps are
// filled by linear interpolation, and the result is the base volume as
// a fraction of the total flow volume.
func blockBaseFlow(x []float64) float64 {
	nb := len(x) / 5
	if nb < 3 {
		return 0
	}
	bm := make([]float64, nb)
	for b := 0; b < nb; b++ {
		bm[b] = floats.Min(x[5*b : 5*b+5])
	}
	base := make([]float64, nb)
	set := make([]bool, nb)
	base[0], set[0] = bm[0], true
	base[nb-1], set[nb-1] = bm[nb-1], true
	for b := 1; b < nb-1; b++ {
		low := math.Min(bm[b-1], math.Min(bm[b], bm[b+1]))
		if bm[b]*0.90 < low {
			base[b], set[b] = bm[b], true
		}
	}
	last := 0
	for b := 1; b < nb; b++ {
		if !set[b] {
			continue
		}
		for j := last + 1; j < b; j++ {
			frac := float64(j-last) / float64(b-last)
			base[j] = base[last] + frac*(base[b]-base[last])
		}
		last = b
	}
	return safeDiv(floats.Sum(base)*5, floats.Sum(x))
}

type monthGroup struct {
	year  int
	month time.Month
	flows []float64
}

// groupByMonth buckets the record into calendar (year, month) groups,
// in chronological order.
func groupByMonth(dates []time.Time, x []float64) []monthGroup {
	groups := []monthGroup{}
	for i, d := range dates {
		y, m, _ := d.Date()
		if len(groups) == 0 || groups[len(groups)-1].year != y || groups[len(groups)-1].month != m {
			groups = append(groups, monthGroup{year: y, month: m})
		}
		g := &groups[len(groups)-1]
		g.flows = append(g.flows, x[i])
	}
	return groups
}

// groupStats applies f to every (year, month) group.
func groupStats(groups []monthGroup, f func([]float64) float64) []float64 {
	out := make([]float64, len(groups))
	for i, g := range groups {
		out[i] = f(g.flows)
	}
	return out
}

// monthOfYearStats reduces each (year, month) group with f, then
// averages the results per calendar month. Index 0 is January.
func monthOfYearStats(groups []monthGroup, f func([]float64) float64) [12]float64 {
	var sums, counts [12]float64
	for _, g := range groups {
		sums[g.month-1] += f(g.flows)
		counts[g.month-1]++
	}
	var out [12]float64
	for i := range out {
		out[i] = safeDiv(sums[i], counts[i])
	}
	return out
}

// pooledMonthMeans averages all daily values falling in each calendar
// month, pooling the years together. Index 0 is January.
func pooledMonthMeans(dates []time.Time, x []float64) [12]float64 {
	var sums, counts [12]float64
	for i, d := range dates {
		m := d.Month() - 1
		sums[m] += x[i]
		counts[m]++
	}
	var out [12]float64
	for i := range out {
		out[i] = safeDiv(sums[i], counts[i])
	}
	return out
}

// perSite evaluates fn once per site of the frame.
func perSite(f *model.Frame, fn func(site int) float64) []float64 {
	out := make([]float64, f.Sites())
	for i := range out {
		out[i] = fn(i)
	}
	return out
}
