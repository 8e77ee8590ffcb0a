package models

import (
	"strings"
	"time"
)

const (
	CategoryGas     = "Gas"
	CategoryTolls   = "Tolls"
	CategoryParking = "Parking"
	CategoryOther   = "Other"
)

type Expense struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	At          time.Time `json:"at"`
	Note        string    `json:"note"`
}

// NormalizeCategory defaults an empty category to Gas and folds known labels
// to their canonical case. Unknown labels become Other.
func NormalizeCategory(c string) string {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "", "gas":
		return CategoryGas
	case "tolls":
		return CategoryTolls
	case "parking":
		return CategoryParking
	}
	return CategoryOther
}
