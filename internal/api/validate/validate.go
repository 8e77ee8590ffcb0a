package validate

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

// Loose accepts a JSON string or number and keeps its text. Anything else
// (objects, arrays, null) decodes to "", which the services read as zero.
type Loose string

func (l *Loose) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		*l = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*l = ""
			return nil
		}
		*l = Loose(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*l = Loose(b)
	default:
		*l = ""
	}
	return nil
}

func (l Loose) String() string { return string(l) }

// Int reads the value as an integer, falling back to def. Fractions are
// truncated; values outside the int32 range count as malformed.
func (l Loose) Int(def int) int {
	s := strings.TrimSpace(string(l))
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(n)
	}
	f, ok := finite(s)
	if !ok || f < math.MinInt32 || f > math.MaxInt32 {
		return def
	}
	return int(f)
}

// Float reads the value as a finite float, falling back to def.
func (l Loose) Float(def float64) float64 {
	if f, ok := finite(strings.TrimSpace(string(l))); ok {
		return f
	}
	return def
}

// finite rejects NaN, the infinities and anything that overflows float64.
func finite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Window parses optional RFC3339 from/to query values. With neither given it
// returns def. With one given, the other is 24h away from it.
func Window(from, to string, def models.Window) (models.Window, Errs) {
	if from == "" && to == "" {
		return def, nil
	}
	var errs Errs
	var w models.Window
	if from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			errs = append(errs, ErrField{Field: "from", Msg: "must be RFC3339"})
		}
		w.From = t.UTC()
	}
	if to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			errs = append(errs, ErrField{Field: "to", Msg: "must be RFC3339"})
		}
		w.To = t.UTC()
	}
	if len(errs) > 0 {
		return models.Window{}, errs
	}
	if from == "" {
		w.From = w.To.Add(-24 * time.Hour)
	}
	if to == "" {
		w.To = w.From.Add(24 * time.Hour)
	}
	if w.To.Before(w.From) {
		return models.Window{}, Errs{{Field: "to", Msg: "must not be before from"}}
	}
	return w, nil
}

// OptionalTime parses an RFC3339 value; empty or malformed input gives nil.
func OptionalTime(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
