package models

import (
	"testing"
	"time"
)

func TestHotspotKey(t *testing.T) {
	got := HotspotKey("Downtown", 36.2077, -119.3473)
	if got != "Downtown-36.2077--119.3473" {
		t.Fatalf("unexpected key %q", got)
	}

	cases := []struct {
		lat, lng float64
		want     string
	}{
		{36, -119, "Depot-36.0--119.0"},
		{0, 0, "Depot-0.0-0.0"},
		{0.0001, 1e7, "Depot-1.0E-4-1.0E7"},
		{1.5e-5, -12345678.9, "Depot-1.5E-5--1.23456789E7"},
		{0.001, 9999999, "Depot-0.001-9999999.0"},
	}
	for _, c := range cases {
		if got := HotspotKey("Depot", c.lat, c.lng); got != c.want {
			t.Errorf("HotspotKey(%v, %v) = %q, want %q", c.lat, c.lng, got, c.want)
		}
	}
}

func TestClampIntensity(t *testing.T) {
	cases := map[int]int{-20: 0, 0: 0, 55: 55, 100: 100, 140: 100}
	for in, want := range cases {
		if got := ClampIntensity(in); got != want {
			t.Errorf("ClampIntensity(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNewSummaryNet(t *testing.T) {
	w := LastDay(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := NewSummary(w, 12345, 2500, 12.34)
	if s.NetCents != 9845 {
		t.Fatalf("expected net 9845, got %d", s.NetCents)
	}
	if s.Gross != "$123.45" || s.Expenses != "$25.00" || s.Net != "$98.45" {
		t.Fatalf("unexpected money strings: %+v", s)
	}
	if s.Distance != "12.3 mi" {
		t.Fatalf("unexpected distance %q", s.Distance)
	}
	if w.To.Sub(w.From) != 24*time.Hour {
		t.Fatalf("expected a 24h window, got %s", w.To.Sub(w.From))
	}
}

func TestFormatCentsNegative(t *testing.T) {
	if got := FormatCents(-150); got != "-$1.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCents(0); got != "$0.00" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizers(t *testing.T) {
	if NormalizePlatform("") != PlatformDoorDash || NormalizePlatform(" ubereats ") != PlatformUberEats {
		t.Fatalf("platform normalisation failed")
	}
	if NormalizePlatform("Grubhub") != "Grubhub" {
		t.Fatalf("unknown platforms are kept as typed")
	}
	if NormalizeCategory("") != CategoryGas || NormalizeCategory("TOLLS") != CategoryTolls || NormalizeCategory("snacks") != CategoryOther {
		t.Fatalf("category normalisation failed")
	}
}
