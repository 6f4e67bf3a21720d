package hydroyear

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ThibHlln/eflowcalc/model"
)

// YearStart is the calendar day a hydrological year begins on.
type YearStart struct {
	Day   int
	Month time.Month
}

// DefaultYearStart is 1 October, the usual northern-hemisphere water year.
var DefaultYearStart = YearStart{Day: 1, Month: time.October}

// ParseYearStart reads a "DD/MM" rule, e.g. "01/10" for 1 October.
// 29 February is rejected because the anniversary must exist every year.
func ParseYearStart(s string) (YearStart, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return YearStart{}, fmt.Errorf("%w: got %q", model.ErrYearStartFormat, s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearStart{}, fmt.Errorf("%w: got %q", model.ErrYearStartFormat, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearStart{}, fmt.Errorf("%w: got %q", model.ErrYearStartFormat, s)
	}
	if month < 1 || month > 12 || day < 1 {
		return YearStart{}, fmt.Errorf("%w: got %q", model.ErrYearStartFormat, s)
	}
	// normalization through time.Date catches days past the end of the
	// month; a non-leap probe year keeps 29/02 out
	probe := time.Date(2001, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if probe.Day() != day || probe.Month() != time.Month(month) {
		return YearStart{}, fmt.Errorf("%w: got %q", model.ErrYearStartFormat, s)
	}
	return YearStart{Day: day, Month: time.Month(month)}, nil
}

// Date is the anniversary in the given calendar year.
func (ys YearStart) Date(year int) time.Time {
	return time.Date(year, ys.Month, ys.Day, 0, 0, 0, 0, time.UTC)
}

func (ys YearStart) String() string {
	return fmt.Sprintf("%02d/%02d", ys.Day, int(ys.Month))
}

// CheckContiguous verifies each date is exactly one calendar day after
// the previous one, which also rules out duplicates and reordered input.
func CheckContiguous(dates []time.Time) error {
	for i := 1; i < len(dates); i++ {
		wy, wm, wd := dates[i-1].AddDate(0, 0, 1).Date()
		gy, gm, gd := dates[i].Date()
		if wy != gy || wm != gm || wd != gd {
			return fmt.Errorf("%w: position %d holds %04d-%02d-%02d after %s",
				model.ErrDatesNotContiguous, i, gy, gm, gd, dates[i-1].Format("2006-01-02"))
		}
	}
	return nil
}

// Trim locates the largest run of complete hydrological years inside a
// contiguous daily record and returns its index range [start, end).
// A record holding no complete year trims to the empty range (0, 0).
func Trim(dates []time.Time, ys YearStart) (int, int) {
	if len(dates) == 0 {
		return 0, 0
	}
	first, last := dates[0], dates[len(dates)-1]

	head := ys.Date(first.Year())
	if dayBefore(head, first) {
		head = ys.Date(first.Year() + 1)
	}

	// latest anniversary that closes a complete year on or before the
	// final date
	tail := ys.Date(last.Year() + 1)
	for dayBefore(last.AddDate(0, 0, 1), tail) {
		tail = ys.Date(tail.Year() - 1)
	}

	if !dayBefore(head, tail) {
		return 0, 0
	}
	return daysBetween(first, head), daysBetween(first, tail)
}

// Spans enumerates the complete hydrological years of an already
// trimmed record, labelling each with the calendar year it starts in.
func Spans(dates []time.Time, ys YearStart) []model.Span {
	spans := []model.Span{}
	if len(dates) == 0 {
		return spans
	}
	start := 0
	for start < len(dates) {
		year := dates[start].Year()
		next := ys.Date(year + 1)
		n := daysBetween(dates[start], next)
		spans = append(spans, model.Span{Start: start, End: start + n, Year: year})
		start += n
	}
	return spans
}

func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}
