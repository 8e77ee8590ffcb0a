package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var maxCents = decimal.NewFromInt(math.MaxInt64)

// ParseCents reads a dollar amount as typed by a driver ("12.5", "$7",
// "1,200.00") into cents, truncating sub-cent digits. Empty or malformed
// input yields zero.
func ParseCents(s string) int64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	c := d.Shift(2).Truncate(0)
	if c.GreaterThan(maxCents) || c.LessThan(maxCents.Neg()) {
		return 0
	}
	return c.IntPart()
}

// ParseMiles reads a distance; empty, malformed or non-finite input yields zero.
func ParseMiles(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
