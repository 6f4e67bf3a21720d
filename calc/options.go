package calc

// Option adjusts how the calculator interprets its inputs.
type Option func(*config)

type config struct {
	yearStart string
	years     []int
	axis      int
	areas     []float64
}

func defaultConfig() config {
	return config{yearStart: "01/10", axis: 0}
}

// WithYearStart sets the first day of the hydrological year as "DD/MM",
// e.g. "01/10" for 1 October.
func WithYearStart(dayMonth string) Option {
	return func(c *config) { c.yearStart = dayMonth }
}

// WithYears restricts the characteristic aggregations to the given
// hydrological years, each labelled by the calendar year it starts in.
// Thresholds and normalizers defined over the whole record still come
// from the full trimmed series. Years absent from the record are
// silently skipped.
func WithYears(years ...int) Option {
	return func(c *config) { c.years = append([]int{}, years...) }
}

// WithTimeAxis declares the orientation of the flow matrix: 0 when rows
// are days and columns are sites, 1 when rows are sites and columns are
// days. The result matrix follows the same orientation.
func WithTimeAxis(axis int) Option {
	return func(c *config) { c.axis = axis }
}

// WithDrainageAreas sets one drainage area per site, overriding the
// single area passed to the calculator.
func WithDrainageAreas(areas []float64) Option {
	return func(c *config) { c.areas = append([]float64{}, areas...) }
}
