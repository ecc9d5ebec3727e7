package mockdata

import (
	"testing"

	"StockScope/internal/catalog"
)

var allTimeframes = []string{"1m", "3m", "6m", "1y", "2y", "5y", "max"}

func TestGenerateInvariants(t *testing.T) {
	symbols := []string{"MLGO", "MBOT", "MCHP", "CY9D.FRK", "MBX.TRT", "VENAF", "ZZZZ"}
	g := NewHistoryGenerator(catalog.HistoricalProperties(), WithNow(fixedClock()))

	for _, sym := range symbols {
		for _, tf := range allTimeframes {
			series := g.Series(sym, tf)
			if len(series) == 0 {
				t.Fatalf("%s/%s: empty series", sym, tf)
			}
			for i, p := range series {
				if p.Value <= 0 {
					t.Fatalf("%s/%s: non-positive value %v at %d", sym, tf, p.Value, i)
				}
				if i > 0 && p.Date <= series[i-1].Date {
					t.Fatalf("%s/%s: dates not strictly ascending at %d", sym, tf, i)
				}
			}
		}
	}
}

func TestGeneratePointCounts(t *testing.T) {
	g := NewHistoryGenerator(catalog.HistoricalProperties(), WithNow(fixedClock()))

	wantPoints := map[string]int{
		"1m": 22, "3m": 60, "6m": 120,
		"1y": 52, "2y": 104,
		"5y": 60, "max": 120,
	}
	for tf, want := range wantPoints {
		if got := len(g.Series("MCHP", tf)); got != want {
			t.Fatalf("%s: expected %d points, got %d", tf, want, got)
		}
	}
}

func TestGenerateUnknownTimeframeFallsBack(t *testing.T) {
	g := NewHistoryGenerator(catalog.HistoricalProperties(), WithNow(fixedClock()))

	if got := len(g.Series("MCHP", "7d")); got != 22 {
		t.Fatalf("unknown timeframe should use the one-month span, got %d points", got)
	}
}

func TestTrendFactor(t *testing.T) {
	if got := TrendFactor(""); got != 0 {
		t.Fatalf("empty symbol trend should be 0, got %v", got)
	}
	// 'M' is 77: 77%10-5 = 2 -> 0.02.
	if got := TrendFactor("MLGO"); got != 0.02 {
		t.Fatalf("unexpected trend for MLGO: %v", got)
	}
	// '0' is 48: 48%10-5 = 3 -> 0.03.
	if got := TrendFactor("0K19.LON"); got != 0.03 {
		t.Fatalf("unexpected trend for 0K19.LON: %v", got)
	}
	for _, sym := range []string{"A", "z", "9", "."} {
		f := TrendFactor(sym)
		if f < -0.05 || f > 0.05 {
			t.Fatalf("trend out of range for %q: %v", sym, f)
		}
	}
}

func TestGenerateDeterministicWithFixedRand(t *testing.T) {
	mid := func() float64 { return 0.5 }
	g := NewHistoryGenerator(catalog.HistoricalProperties(), WithRand(mid), WithNow(fixedClock()))

	a := g.Series("MBOT", "1y")
	b := g.Series("MBOT", "1y")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series not deterministic at %d", i)
		}
	}
}
