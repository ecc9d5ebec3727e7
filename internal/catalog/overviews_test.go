package catalog

import "testing"

func TestResolveSpecificSymbol(t *testing.T) {
	c := NewOverviewCatalog()

	o := c.Resolve("MLGO")
	if o.Symbol != "MLGO" || o.Name != "MicroAlgo Inc" {
		t.Fatalf("unexpected overview %s/%s", o.Symbol, o.Name)
	}
}

func TestResolvePopularSymbol(t *testing.T) {
	c := NewOverviewCatalog()

	o := c.Resolve("AAPL")
	if o.Symbol != "AAPL" || o.Name != "Apple Inc" {
		t.Fatalf("unexpected overview %s/%s", o.Symbol, o.Name)
	}
}

func TestResolveUnknownSymbolFallsBack(t *testing.T) {
	c := NewOverviewCatalog()

	o := c.Resolve("ZZZZ")
	if o.Name != "Demo Company" {
		t.Fatalf("unexpected fallback %s", o.Name)
	}
}

func TestEmptyOverview(t *testing.T) {
	o := EmptyOverview()
	if o.Symbol != "" || o.Name != "" || o.Description != "" {
		t.Fatalf("empty overview should have blank identity fields")
	}
}
