package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window is an inclusive time range used by the aggregate queries.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// LastDay returns the 24h window ending at now.
func LastDay(now time.Time) Window {
	now = now.UTC()
	return Window{From: now.Add(-24 * time.Hour), To: now}
}

type Summary struct {
	Window       Window  `json:"window"`
	GrossCents   int64   `json:"gross_cents"`
	ExpenseCents int64   `json:"expense_cents"`
	NetCents     int64   `json:"net_cents"`
	Miles        float64 `json:"miles"`

	Gross    string `json:"gross"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
	Distance string `json:"distance"`
}

func NewSummary(w Window, gross, expenses int64, miles float64) Summary {
	return Summary{
		Window:       w,
		GrossCents:   gross,
		ExpenseCents: expenses,
		NetCents:     gross - expenses,
		Miles:        miles,
		Gross:        FormatCents(gross),
		Expenses:     FormatCents(expenses),
		Net:          FormatCents(gross - expenses),
		Distance:     decimal.NewFromFloat(miles).StringFixed(1) + " mi",
	}
}

// Dollars converts minor units to a decimal dollar amount.
func Dollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func FormatCents(cents int64) string {
	d := Dollars(cents)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
