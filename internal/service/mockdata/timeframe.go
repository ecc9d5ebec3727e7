package mockdata

// span describes the window covered by one chart timeframe: how far back the
// series starts, how many points it holds, and the day spacing between them.
type span struct {
	years   int
	months  int
	points  int
	spacing int
}

var spans = map[string]span{
	"1m":  {months: 1, points: 22, spacing: 1},
	"3m":  {months: 3, points: 60, spacing: 1},
	"6m":  {months: 6, points: 120, spacing: 1},
	"1y":  {years: 1, points: 52, spacing: 7},
	"2y":  {years: 2, points: 104, spacing: 7},
	"5y":  {years: 5, points: 60, spacing: 30},
	"max": {years: 10, points: 120, spacing: 30},
}

// IsValidTimeframe returns true if tf is a supported chart timeframe.
func IsValidTimeframe(tf string) bool {
	_, ok := spans[tf]
	return ok
}

// DefaultTimeframe returns the default request timeframe.
func DefaultTimeframe() string { return "1y" }

// lookupSpan resolves tf to its span. Unknown timeframes fall back to the
// one-month span rather than failing.
func lookupSpan(tf string) span {
	if s, ok := spans[tf]; ok {
		return s
	}
	return spans["1m"]
}
