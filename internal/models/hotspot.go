package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinIntensity = 0
	MaxIntensity = 100
)

// Hotspot is keyed by ID and upserted with last-writer-wins semantics.
type Hotspot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Intensity int       `json:"intensity"`
	Platform  Platform  `json:"platform"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HotspotKey is the natural key of a manually saved hotspot. Whole
// coordinates keep a ".0" and very small or large ones use E notation
// ("36.0", "1.0E-4").
func HotspotKey(name string, lat, lng float64) string {
	return name + "-" + formatCoord(lat) + "-" + formatCoord(lng)
}

func formatCoord(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if a := math.Abs(v); a == 0 || (a >= 1e-3 && a < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	// scientific: one integer digit, no '+' or exponent padding
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}

func ClampIntensity(v int) int {
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}

func (h Hotspot) IsRed(threshold int) bool { return h.Intensity >= threshold }
