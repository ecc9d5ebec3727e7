package mockdata

import (
	"testing"
	"time"

	"StockScope/internal/catalog"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestDailySeriesShape(t *testing.T) {
	g := NewPriceGenerator(catalog.DailyProperties(), WithNow(fixedClock()))

	series := g.DailySeries("MLGO")
	if len(series) != 30 {
		t.Fatalf("expected 30 points, got %d", len(series))
	}
	if series[len(series)-1].Date != "2025-06-15" {
		t.Fatalf("last point should be today, got %s", series[len(series)-1].Date)
	}
	if series[0].Date != "2025-05-17" {
		t.Fatalf("first point should be 29 days back, got %s", series[0].Date)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date <= series[i-1].Date {
			t.Fatalf("dates not strictly ascending at %d: %s <= %s", i, series[i].Date, series[i-1].Date)
		}
	}
}

func TestDailySeriesDeterministicWithFixedRand(t *testing.T) {
	mid := func() float64 { return 0.5 }
	g := NewPriceGenerator(catalog.DailyProperties(), WithRand(mid), WithNow(fixedClock()))

	a := g.DailySeries("MCHP")
	b := g.DailySeries("MCHP")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("series not deterministic at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDailyCloseTrend(t *testing.T) {
	// With the random factor pinned to zero, only the drift term remains,
	// so older days (higher index) sit closer to the base price.
	mid := func() float64 { return 0.5 }
	g := NewPriceGenerator(catalog.DailyProperties(), WithRand(mid))

	today := g.DailyClose("MCHP", 87.45, 0)
	oldest := g.DailyClose("MCHP", 87.45, 29)
	if today >= oldest {
		t.Fatalf("expected downward drift toward today: today=%v oldest=%v", today, oldest)
	}

	want := 87.45 * (1 - 0.002*30)
	if diff := today - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("unexpected drifted close %v, want %v", today, want)
	}
}

func TestDailySeriesUnknownSymbolUsesFallback(t *testing.T) {
	mid := func() float64 { return 0.5 }
	g := NewPriceGenerator(catalog.DailyProperties(), WithRand(mid), WithNow(fixedClock()))

	series := g.DailySeries("ZZZZ")
	if len(series) != 30 {
		t.Fatalf("expected 30 points, got %d", len(series))
	}
	// Fallback base price is 10.0; today's point carries the full drift.
	want := 10.0 * (1 - 0.002*30)
	got := series[len(series)-1].Close
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("unexpected fallback close %v, want %v", got, want)
	}
}
