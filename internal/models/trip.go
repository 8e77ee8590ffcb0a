package models

import (
	"strings"
	"time"
)

type Platform = string

const (
	PlatformDoorDash Platform = "DoorDash"
	PlatformUberEats Platform = "UberEats"
)

// Trip is a manually entered delivery run. Rows are never updated or deleted.
type Trip struct {
	ID            int64     `json:"id"`
	Platform      Platform  `json:"platform"`
	PayoutCents   int64     `json:"payout_cents"`
	DistanceMiles float64   `json:"distance_miles"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
}

// NormalizePlatform maps case variants of the known platforms to their label.
// Anything else is kept as typed; an empty label means DoorDash.
func NormalizePlatform(p string) Platform {
	p = strings.TrimSpace(p)
	switch strings.ToLower(p) {
	case "":
		return PlatformDoorDash
	case "doordash":
		return PlatformDoorDash
	case "ubereats":
		return PlatformUberEats
	}
	return p
}
