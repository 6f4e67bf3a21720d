package model

import (
	"fmt"
	"time"
)

// Span is the half-open day-index range [Start, End) of one complete
// hydrological year. Year is the calendar year the span starts in.
type Span struct {
	Start int
	End   int
	Year  int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Frame is the trimmed daily streamflow record shared by every
// characteristic evaluated in one call. Flows is site-major: one slice
// of daily values per site, aligned with Dates. Years locates each
// complete hydrological year inside Flows.
//
// When the caller restricts the evaluation to a subset of years, Flows
// holds the concatenation of the requested years while Trim and
// TrimYears keep the full trimmed record. Thresholds and normalizers
// defined over the whole record are always derived from Trim, so a
// year filter never moves them. Without a filter Trim aliases Flows.
type Frame struct {
	Dates []time.Time
	Flows [][]float64
	Years []Span

	Trim      [][]float64
	TrimYears []Span

	Areas []float64
}

func (f *Frame) Sites() int {
	return len(f.Flows)
}

func (f *Frame) Days() int {
	if len(f.Flows) == 0 {
		return 0
	}
	return len(f.Flows[0])
}

func (f *Frame) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Sites() == 0 || f.Days() == 0
}

func (f *Frame) DebugString() string {
	res := fmt.Sprintf("sites: %v, days: %v, years: %v", f.Sites(), f.Days(), len(f.Years))
	return res
}
