package calc

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/ThibHlln/eflowcalc/hydroyear"
	"github.com/ThibHlln/eflowcalc/model"
	"github.com/ThibHlln/eflowcalc/sfc"
	"github.com/ThibHlln/eflowcalc/utils"
)

// Calculate evaluates the requested characteristics over a daily flow
// matrix. With the default time axis the matrix is indexed [day][site]
// and the result [characteristic][site]; with WithTimeAxis(1) both are
// transposed. The record is first cut down to its complete hydrological
// years; a record holding none yields zeros.
func Calculate(codes []string, dates []time.Time, flows [][]float64, drainageArea float64, opts ...Option) ([][]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ys, err := hydroyear.ParseYearStart(cfg.yearStart)
	if err != nil {
		return nil, err
	}
	chars, err := resolve(codes)
	if err != nil {
		return nil, err
	}
	frame, err := buildFrame(dates, flows, drainageArea, ys, cfg)
	if err != nil {
		return nil, err
	}
	res := make([][]float64, len(chars))
	for i, c := range chars {
		res[i] = c.Fn(frame)
	}
	if cfg.axis == 1 {
		return transpose(res, frame.Sites()), nil
	}
	return res, nil
}

// CalculateSeries evaluates the requested characteristics over a single
// flow series, returning one value per characteristic. The time axis
// option is ignored.
func CalculateSeries(codes []string, dates []time.Time, flow []float64, drainageArea float64, opts ...Option) ([]float64, error) {
	single := append(append([]Option{}, opts...), WithTimeAxis(1))
	res, err := Calculate(codes, dates, [][]float64{flow}, drainageArea, single...)
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// CalculateOne evaluates a single characteristic over a single flow
// series.
func CalculateOne(code string, dates []time.Time, flow []float64, drainageArea float64, opts ...Option) (float64, error) {
	res, err := CalculateSeries([]string{code}, dates, flow, drainageArea, opts...)
	if err != nil {
		return 0, err
	}
	return res[0], nil
}

// NewFrame validates a flow record once and prepares the trimmed series
// and year spans every characteristic shares. Build one frame to
// amortize the validation and trim across repeated registry calls.
func NewFrame(dates []time.Time, flows [][]float64, drainageArea float64, opts ...Option) (*model.Frame, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ys, err := hydroyear.ParseYearStart(cfg.yearStart)
	if err != nil {
		return nil, err
	}
	return buildFrame(dates, flows, drainageArea, ys, cfg)
}

func resolve(codes []string) ([]sfc.Characteristic, error) {
	chars := make([]sfc.Characteristic, len(codes))
	for i, code := range codes {
		c, ok := sfc.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownCharacteristic, code)
		}
		chars[i] = c
	}
	return chars, nil
}

func buildFrame(dates []time.Time, flows [][]float64, drainageArea float64, ys hydroyear.YearStart, cfg config) (*model.Frame, error) {
	if cfg.axis != 0 && cfg.axis != 1 {
		return nil, fmt.Errorf("%w: %d", model.ErrBadTimeAxis, cfg.axis)
	}
	series, err := orient(flows, cfg.axis, len(dates))
	if err != nil {
		return nil, err
	}

	areas := cfg.areas
	if areas == nil {
		areas = make([]float64, len(series))
		for i := range areas {
			areas[i] = drainageArea
		}
	}
	if len(areas) != len(series) {
		return nil, fmt.Errorf("%w: %d areas for %d sites", model.ErrDrainageArea, len(areas), len(series))
	}
	for i, a := range areas {
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			return nil, fmt.Errorf("%w: site %d has %v", model.ErrDrainageArea, i, a)
		}
	}

	for s, flow := range series {
		for d, v := range flow {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: site %d day %d", model.ErrInvalidFlow, s, d)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: site %d day %d holds %v", model.ErrNegativeFlow, s, d, v)
			}
		}
	}

	if err := hydroyear.CheckContiguous(dates); err != nil {
		return nil, err
	}

	head, tail := hydroyear.Trim(dates, ys)
	trimDates := dates[head:tail]
	trim := make([][]float64, len(series))
	for i, flow := range series {
		trim[i] = flow[head:tail]
	}
	spans := hydroyear.Spans(trimDates, ys)

	utils.GetLogger().Debug("trimmed flow record",
		zap.String("year_start", ys.String()),
		zap.Int("days_in", len(dates)),
		zap.Int("days_kept", tail-head),
		zap.Int("years", len(spans)),
	)

	frame := &model.Frame{
		Dates:     trimDates,
		Flows:     trim,
		Years:     spans,
		Trim:      trim,
		TrimYears: spans,
		Areas:     areas,
	}
	if cfg.years != nil {
		frame.Dates, frame.Flows, frame.Years = selectYears(trimDates, trim, spans, cfg.years)
	}
	return frame, nil
}

// selectYears concatenates the requested years of an already trimmed
// record, rebasing the spans onto the shorter series.
func selectYears(dates []time.Time, series [][]float64, spans []model.Span, wanted []int) ([]time.Time, [][]float64, []model.Span) {
	keep := make(map[int]bool, len(wanted))
	for _, y := range wanted {
		keep[y] = true
	}
	selDates := []time.Time{}
	sel := make([][]float64, len(series))
	for i := range sel {
		sel[i] = []float64{}
	}
	selSpans := []model.Span{}
	for _, sp := range spans {
		if !keep[sp.Year] {
			continue
		}
		at := len(selDates)
		selDates = append(selDates, dates[sp.Start:sp.End]...)
		for i := range series {
			sel[i] = append(sel[i], series[i][sp.Start:sp.End]...)
		}
		selSpans = append(selSpans, model.Span{Start: at, End: at + sp.Len(), Year: sp.Year})
	}
	return selDates, sel, selSpans
}

// orient turns the caller's matrix into the site-major layout the
// characteristics work on. Axis 1 input already is site-major and is
// used as is; axis 0 input is transposed.
func orient(flows [][]float64, axis, days int) ([][]float64, error) {
	if axis == 1 {
		for i, row := range flows {
			if len(row) != days {
				return nil, fmt.Errorf("%w: site %d holds %d values for %d dates", model.ErrLengthMismatch, i, len(row), days)
			}
		}
		return flows, nil
	}
	if len(flows) != days {
		return nil, fmt.Errorf("%w: %d flow rows for %d dates", model.ErrLengthMismatch, len(flows), days)
	}
	sites := 0
	if days > 0 {
		sites = len(flows[0])
	}
	series := make([][]float64, sites)
	for j := range series {
		series[j] = make([]float64, days)
	}
	for d, row := range flows {
		if len(row) != sites {
			return nil, fmt.Errorf("%w: day %d holds %d sites, day 0 holds %d", model.ErrLengthMismatch, d, len(row), sites)
		}
		for j, v := range row {
			series[j][d] = v
		}
	}
	return series, nil
}

func transpose(rows [][]float64, cols int) [][]float64 {
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}
	return out
}
