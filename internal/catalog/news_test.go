package catalog

import (
	"strings"
	"testing"
)

func TestNewsPagination(t *testing.T) {
	n := NewNewsCatalog(NewOverviewCatalog())

	p1 := n.Page("MLGO", 1, 5)
	if len(p1.Items) != 5 {
		t.Fatalf("expected 5 items on page 1, got %d", len(p1.Items))
	}
	if !p1.HasMore {
		t.Fatalf("page 1 of 15 should have more")
	}
	if p1.TotalCount != 15 {
		t.Fatalf("unexpected total %d", p1.TotalCount)
	}

	p3 := n.Page("MLGO", 3, 5)
	if len(p3.Items) != 5 {
		t.Fatalf("expected 5 items on page 3, got %d", len(p3.Items))
	}
	if p3.HasMore {
		t.Fatalf("page 3 of 15 should be the last page")
	}

	p4 := n.Page("MLGO", 4, 5)
	if len(p4.Items) != 0 {
		t.Fatalf("page past the end should be empty, got %d items", len(p4.Items))
	}
	if p4.HasMore {
		t.Fatalf("page past the end should not have more")
	}
}

func TestNewsPagesDoNotOverlap(t *testing.T) {
	n := NewNewsCatalog(NewOverviewCatalog())

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		for _, item := range n.Page("MCHP", page, 5).Items {
			if seen[item.Title] {
				t.Fatalf("duplicate article across pages: %s", item.Title)
			}
			seen[item.Title] = true
		}
	}
	if len(seen) != 15 {
		t.Fatalf("expected 15 distinct articles, got %d", len(seen))
	}
}

func TestNewsCompanyNameSubstitution(t *testing.T) {
	n := NewNewsCatalog(NewOverviewCatalog())

	found := false
	for _, item := range n.Page("MLGO", 1, 15).Items {
		if strings.Contains(item.Title, "MicroAlgo Inc") || strings.Contains(item.Summary, "MicroAlgo Inc") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected articles customized with the company name")
	}

	// Customizing one symbol must not leak into another symbol's pool.
	for _, item := range n.Page("MCHP", 1, 15).Items {
		if strings.Contains(item.Title, "MicroAlgo Inc") {
			t.Fatalf("MLGO customization leaked into MCHP articles")
		}
	}
}

func TestNewsCustomizationMemoized(t *testing.T) {
	n := NewNewsCatalog(NewOverviewCatalog())

	a := n.Page("VENAF", 1, 5).Items
	b := n.Page("VENAF", 1, 5).Items
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("customized articles changed between calls at %d", i)
		}
	}
}

func TestNewsUnknownSymbolUsesFallbackName(t *testing.T) {
	n := NewNewsCatalog(NewOverviewCatalog())

	page := n.Page("ZZZZ", 1, 15)
	found := false
	for _, item := range page.Items {
		if strings.Contains(item.Title, "Demo Company") || strings.Contains(item.Summary, "Demo Company") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected fallback company name in customized articles")
	}
}
