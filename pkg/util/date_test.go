package util

import (
	"testing"
	"time"
)

func TestISODate(t *testing.T) {
	d := time.Date(2024, 10, 10, 15, 30, 0, 0, time.UTC)
	if got := ISODate(d); got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := ParseISODate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 10 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseISODateInvalid(t *testing.T) {
	if _, ok := ParseISODate("10/10/2024"); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseISODate(""); ok {
		t.Fatalf("expected not ok for empty")
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("7", 1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := ParseIntDefault("", 1); got != 1 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("x", 3); got != 3 {
		t.Fatalf("expected default, got %d", got)
	}
}
