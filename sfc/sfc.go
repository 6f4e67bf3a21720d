package sfc

import (
	"github.com/ThibHlln/eflowcalc/model"
)

// Func computes one streamflow characteristic, one value per site.
type Func func(*model.Frame) []float64

type Family int

const (
	Magnitude Family = iota + 1
	Frequency
	Duration
	Timing
	RateOfChange
)

func (f Family) String() string {
	switch f {
	case Magnitude:
		return "magnitude"
	case Frequency:
		return "frequency"
	case Duration:
		return "duration"
	case Timing:
		return "timing"
	case RateOfChange:
		return "rate of change"
	}
	return "unknown"
}

type FlowLevel int

const (
	LowFlow FlowLevel = iota + 1
	AverageFlow
	HighFlow
)

func (l FlowLevel) String() string {
	switch l {
	case LowFlow:
		return "low"
	case AverageFlow:
		return "average"
	case HighFlow:
		return "high"
	}
	return "unknown"
}

// Characteristic couples a catalog code with its computation.
type Characteristic struct {
	Code   string
	Family Family
	Level  FlowLevel
	Desc   string
	Fn     Func
}

var (
	registry = map[string]Characteristic{}
	order    []string
)

func register(code string, family Family, level FlowLevel, desc string, fn Func) {
	registry[code] = Characteristic{Code: code, Family: family, Level: level, Desc: desc, Fn: fn}
	order = append(order, code)
}

// Lookup finds a characteristic by its catalog code.
func Lookup(code string) (Characteristic, bool) {
	c, ok := registry[code]
	return c, ok
}

// All returns every characteristic in catalog order.
func All() []Characteristic {
	out := make([]Characteristic, 0, len(order))
	for _, code := range order {
		out = append(out, registry[code])
	}
	return out
}

// Codes returns every catalog code in catalog order.
func Codes() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ByFamily returns the characteristics of one family in catalog order.
func ByFamily(family Family) []Characteristic {
	out := []Characteristic{}
	for _, code := range order {
		if registry[code].Family == family {
			out = append(out, registry[code])
		}
	}
	return out
}

func init() {
	register("ma1", Magnitude, AverageFlow, "mean daily flow", ma1)
	register("ma2", Magnitude, AverageFlow, "median daily flow", ma2)
	register("ma3", Magnitude, AverageFlow, "variability in daily flows", ma3)
	register("ma4", Magnitude, AverageFlow, "variability in the percentiles of log daily flows", ma4)
	register("ma5", Magnitude, AverageFlow, "skewness of daily flows, mean over median", ma5)
	register("ma6", Magnitude, AverageFlow, "range of daily flows, 90th over 10th percentile", ma6)
	register("ma7", Magnitude, AverageFlow, "range of daily flows, 80th over 20th percentile", ma7)
	register("ma8", Magnitude, AverageFlow, "range of daily flows, 75th over 25th percentile", ma8)
	register("ma9", Magnitude, AverageFlow, "spread of log daily flows between the 90th and 10th percentiles", ma9)
	register("ma10", Magnitude, AverageFlow, "spread of log daily flows between the 80th and 20th percentiles", ma10)
	register("ma11", Magnitude, AverageFlow, "spread of log daily flows between the 75th and 25th percentiles", ma11)
	register("ma12", Magnitude, AverageFlow, "mean January daily flow", ma12)
	register("ma13", Magnitude, AverageFlow, "mean February daily flow", ma13)
	register("ma14", Magnitude, AverageFlow, "mean March daily flow", ma14)
	register("ma15", Magnitude, AverageFlow, "mean April daily flow", ma15)
	register("ma16", Magnitude, AverageFlow, "mean May daily flow", ma16)
	register("ma17", Magnitude, AverageFlow, "mean June daily flow", ma17)
	register("ma18", Magnitude, AverageFlow, "mean July daily flow", ma18)
	register("ma19", Magnitude, AverageFlow, "mean August daily flow", ma19)
	register("ma20", Magnitude, AverageFlow, "mean September daily flow", ma20)
	register("ma21", Magnitude, AverageFlow, "mean October daily flow", ma21)
	register("ma22", Magnitude, AverageFlow, "mean November daily flow", ma22)
	register("ma23", Magnitude, AverageFlow, "mean December daily flow", ma23)
	register("ma24", Magnitude, AverageFlow, "variability in January daily flows", ma24)
	register("ma25", Magnitude, AverageFlow, "variability in February daily flows", ma25)
	register("ma26", Magnitude, AverageFlow, "variability in March daily flows", ma26)
	register("ma27", Magnitude, AverageFlow, "variability in April daily flows", ma27)
	register("ma28", Magnitude, AverageFlow, "variability in May daily flows", ma28)
	register("ma29", Magnitude, AverageFlow, "variability in June daily flows", ma29)
	register("ma30", Magnitude, AverageFlow, "variability in July daily flows", ma30)
	register("ma31", Magnitude, AverageFlow, "variability in August daily flows", ma31)
	register("ma32", Magnitude, AverageFlow, "variability in September daily flows", ma32)
	register("ma33", Magnitude, AverageFlow, "variability in October daily flows", ma33)
	register("ma34", Magnitude, AverageFlow, "variability in November daily flows", ma34)
	register("ma35", Magnitude, AverageFlow, "variability in December daily flows", ma35)
	register("ma36", Magnitude, AverageFlow, "variability across monthly means, range over median", ma36)
	register("ma37", Magnitude, AverageFlow, "variability across monthly means, interquartile over median", ma37)
	register("ma38", Magnitude, AverageFlow, "variability across monthly means, interdecile over median", ma38)
	register("ma39", Magnitude, AverageFlow, "variability across monthly means, coefficient of variation", ma39)
	register("ma40", Magnitude, AverageFlow, "skewness of monthly means", ma40)
	register("ma41", Magnitude, AverageFlow, "mean annual flow per unit drainage area", ma41)
	register("ma42", Magnitude, AverageFlow, "variability across annual means, range over median", ma42)
	register("ma43", Magnitude, AverageFlow, "variability across annual means, interquartile over median", ma43)
	register("ma44", Magnitude, AverageFlow, "variability across annual means, interdecile over median", ma44)
	register("ma45", Magnitude, AverageFlow, "skewness of annual means", ma45)

	register("ml1", Magnitude, LowFlow, "mean minimum January flow", ml1)
	register("ml2", Magnitude, LowFlow, "mean minimum February flow", ml2)
	register("ml3", Magnitude, LowFlow, "mean minimum March flow", ml3)
	register("ml4", Magnitude, LowFlow, "mean minimum April flow", ml4)
	register("ml5", Magnitude, LowFlow, "mean minimum May flow", ml5)
	register("ml6", Magnitude, LowFlow, "mean minimum June flow", ml6)
	register("ml7", Magnitude, LowFlow, "mean minimum July flow", ml7)
	register("ml8", Magnitude, LowFlow, "mean minimum August flow", ml8)
	register("ml9", Magnitude, LowFlow, "mean minimum September flow", ml9)
	register("ml10", Magnitude, LowFlow, "mean minimum October flow", ml10)
	register("ml11", Magnitude, LowFlow, "mean minimum November flow", ml11)
	register("ml12", Magnitude, LowFlow, "mean minimum December flow", ml12)
	register("ml13", Magnitude, LowFlow, "variability across monthly minima", ml13)
	register("ml14", Magnitude, LowFlow, "mean of annual minimum over annual median", ml14)
	register("ml15", Magnitude, LowFlow, "mean of annual minimum over annual mean", ml15)
	register("ml16", Magnitude, LowFlow, "median of annual minimum over annual median", ml16)
	register("ml17", Magnitude, LowFlow, "base flow index, mean of annual ratios", ml17)
	register("ml18", Magnitude, LowFlow, "variability in the base flow index", ml18)
	register("ml19", Magnitude, LowFlow, "mean of annual minimum over annual mean, in percent", ml19)
	register("ml20", Magnitude, LowFlow, "base flow separation by five-day blocks", ml20)
	register("ml21", Magnitude, LowFlow, "variability across annual minima", ml21)
	register("ml22", Magnitude, LowFlow, "mean annual minimum flow per unit drainage area", ml22)

	register("mh1", Magnitude, HighFlow, "mean maximum January flow", mh1)
	register("mh2", Magnitude, HighFlow, "mean maximum February flow", mh2)
	register("mh3", Magnitude, HighFlow, "mean maximum March flow", mh3)
	register("mh4", Magnitude, HighFlow, "mean maximum April flow", mh4)
	register("mh5", Magnitude, HighFlow, "mean maximum May flow", mh5)
	register("mh6", Magnitude, HighFlow, "mean maximum June flow", mh6)
	register("mh7", Magnitude, HighFlow, "mean maximum July flow", mh7)
	register("mh8", Magnitude, HighFlow, "mean maximum August flow", mh8)
	register("mh9", Magnitude, HighFlow, "mean maximum September flow", mh9)
	register("mh10", Magnitude, HighFlow, "mean maximum October flow", mh10)
	register("mh11", Magnitude, HighFlow, "mean maximum November flow", mh11)
	register("mh12", Magnitude, HighFlow, "mean maximum December flow", mh12)
	register("mh13", Magnitude, HighFlow, "variability across monthly maxima", mh13)
	register("mh14", Magnitude, HighFlow, "median of annual maximum over annual median", mh14)
	register("mh15", Magnitude, HighFlow, "high flow discharge, 99th percentile over median", mh15)
	register("mh16", Magnitude, HighFlow, "high flow discharge, 90th percentile over median", mh16)
	register("mh17", Magnitude, HighFlow, "high flow discharge, 75th percentile over median", mh17)
	register("mh18", Magnitude, HighFlow, "variability across log annual maxima", mh18)
	register("mh19", Magnitude, HighFlow, "skewness in annual maxima", mh19)
	register("mh20", Magnitude, HighFlow, "mean annual maximum flow per unit drainage area", mh20)
	register("mh21", Magnitude, HighFlow, "flood volume above the median flow", mh21)
	register("mh22", Magnitude, HighFlow, "flood volume above three times the median flow", mh22)
	register("mh23", Magnitude, HighFlow, "flood volume above seven times the median flow", mh23)

	register("fl1", Frequency, LowFlow, "low flow pulse count, below the 25th percentile", fl1)
	register("fl2", Frequency, LowFlow, "variability in the low flow pulse count", fl2)
	register("fl3", Frequency, LowFlow, "frequency of pulses below 5 percent of the mean flow", fl3)

	register("fh1", Frequency, HighFlow, "high flow pulse count, above the 75th percentile", fh1)
	register("fh2", Frequency, HighFlow, "variability in the high flow pulse count", fh2)
	register("fh3", Frequency, HighFlow, "mean days per year above three times the median flow", fh3)
	register("fh4", Frequency, HighFlow, "mean days per year above seven times the median flow", fh4)
	register("fh5", Frequency, HighFlow, "flood frequency, events above the median flow", fh5)
	register("fh6", Frequency, HighFlow, "flood frequency, events above three times the median flow", fh6)
	register("fh7", Frequency, HighFlow, "flood frequency, events above seven times the median flow", fh7)
	register("fh8", Frequency, HighFlow, "flood frequency, events above the 75th percentile", fh8)
	register("fh9", Frequency, HighFlow, "flood frequency, events above the 25th percentile", fh9)
	register("fh10", Frequency, HighFlow, "flood frequency, events above the median of the annual minima", fh10)

	register("dl1", Duration, LowFlow, "annual minimum daily flow", dl1)
	register("dl2", Duration, LowFlow, "annual minimum of 3-day mean flow", dl2)
	register("dl3", Duration, LowFlow, "annual minimum of 7-day mean flow", dl3)
	register("dl4", Duration, LowFlow, "annual minimum of 30-day mean flow", dl4)
	register("dl5", Duration, LowFlow, "annual minimum of 90-day mean flow", dl5)
	register("dl6", Duration, LowFlow, "variability in the annual minimum daily flow", dl6)
	register("dl7", Duration, LowFlow, "variability in the annual minimum of 3-day mean flow", dl7)
	register("dl8", Duration, LowFlow, "variability in the annual minimum of 7-day mean flow", dl8)
	register("dl9", Duration, LowFlow, "variability in the annual minimum of 30-day mean flow", dl9)
	register("dl10", Duration, LowFlow, "variability in the annual minimum of 90-day mean flow", dl10)
	register("dl11", Duration, LowFlow, "annual minimum daily flow over the median", dl11)
	register("dl12", Duration, LowFlow, "annual minimum of 7-day mean flow over the median", dl12)
	register("dl13", Duration, LowFlow, "annual minimum of 30-day mean flow over the median", dl13)
	register("dl14", Duration, LowFlow, "low exceedance flow, 25th percentile over the median", dl14)
	register("dl15", Duration, LowFlow, "low exceedance flow, 10th percentile over the median", dl15)
	register("dl16", Duration, LowFlow, "low flow pulse duration, below the 25th percentile", dl16)
	register("dl17", Duration, LowFlow, "variability in the low flow pulse duration", dl17)
	register("dl18", Duration, LowFlow, "mean zero-flow days per year", dl18)
	register("dl19", Duration, LowFlow, "variability in the annual zero-flow day count", dl19)
	register("dl20", Duration, LowFlow, "number of months with zero flow", dl20)

	register("dh1", Duration, HighFlow, "annual maximum daily flow", dh1)
	register("dh2", Duration, HighFlow, "annual maximum of 3-day mean flow", dh2)
	register("dh3", Duration, HighFlow, "annual maximum of 7-day mean flow", dh3)
	register("dh4", Duration, HighFlow, "annual maximum of 30-day mean flow", dh4)
	register("dh5", Duration, HighFlow, "annual maximum of 90-day mean flow", dh5)
	register("dh6", Duration, HighFlow, "variability in the annual maximum daily flow", dh6)
	register("dh7", Duration, HighFlow, "variability in the annual maximum of 3-day mean flow", dh7)
	register("dh8", Duration, HighFlow, "variability in the annual maximum of 7-day mean flow", dh8)
	register("dh9", Duration, HighFlow, "variability in the annual maximum of 30-day mean flow", dh9)
	register("dh10", Duration, HighFlow, "variability in the annual maximum of 90-day mean flow", dh10)
	register("dh11", Duration, HighFlow, "annual maximum daily flow over the median", dh11)
	register("dh12", Duration, HighFlow, "annual maximum of 7-day mean flow over the median", dh12)
	register("dh13", Duration, HighFlow, "annual maximum of 30-day mean flow over the median", dh13)
	register("dh14", Duration, HighFlow, "flood duration, 95th percentile of monthly means over their mean", dh14)
	register("dh15", Duration, HighFlow, "high flow pulse duration, above the 75th percentile", dh15)
	register("dh16", Duration, HighFlow, "variability in the high flow pulse duration", dh16)
	register("dh17", Duration, HighFlow, "mean duration of events above the median flow", dh17)
	register("dh18", Duration, HighFlow, "mean duration of events above three times the median flow", dh18)
	register("dh19", Duration, HighFlow, "mean duration of events above seven times the median flow", dh19)
	register("dh20", Duration, HighFlow, "mean duration of events above the 75th percentile", dh20)
	register("dh21", Duration, HighFlow, "mean duration of events above the 25th percentile", dh21)

	register("ta1", Timing, AverageFlow, "constancy of Colwell", ta1)
	register("ta2", Timing, AverageFlow, "predictability of Colwell, in percent", ta2)
	register("tl1", Timing, LowFlow, "timing of the annual minimum flow, Julian day", tl1)
	register("tl2", Timing, LowFlow, "variability in the timing of the annual minimum flow", tl2)
	register("th1", Timing, HighFlow, "timing of the annual maximum flow, Julian day", th1)
	register("th2", Timing, HighFlow, "variability in the timing of the annual maximum flow", th2)

	register("ra1", RateOfChange, AverageFlow, "mean rise rate", ra1)
	register("ra2", RateOfChange, AverageFlow, "variability in the rise rate", ra2)
	register("ra3", RateOfChange, AverageFlow, "mean fall rate", ra3)
	register("ra4", RateOfChange, AverageFlow, "variability in the fall rate", ra4)
	register("ra5", RateOfChange, AverageFlow, "ratio of days with rising flow", ra5)
	register("ra6", RateOfChange, AverageFlow, "median rise rate of log flows", ra6)
	register("ra7", RateOfChange, AverageFlow, "median fall rate of log flows", ra7)
	register("ra8", RateOfChange, AverageFlow, "mean annual number of flow reversals", ra8)
	register("ra9", RateOfChange, AverageFlow, "variability in the annual number of flow reversals", ra9)
}
