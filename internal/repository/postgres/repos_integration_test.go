package postgres

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/db"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/repository"
)

// setupRepos connects to DATABASE_URL, applies the embedded migrations and
// empties the tables. It truncates data, so it only runs with
// PG_INTEGRATION=1 against a throwaway database.
func setupRepos(t *testing.T) repository.Repositories {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" || os.Getenv("PG_INTEGRATION") != "1" {
		t.Skip("postgres integration tests are disabled; set PG_INTEGRATION=1 and DATABASE_URL to enable")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	// applying twice must be a no-op the second time
	for i := 0; i < 2; i++ {
		if err := db.RunMigrations(ctx, pool); err != nil {
			t.Fatalf("migrations (pass %d): %v", i+1, err)
		}
	}
	if _, err := pool.Exec(ctx, `TRUNCATE trips, expenses, mileage_events, hotspots RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewRepositories(pool)
}

var base = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestTripSumMatchesRowsInWindow(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	for _, p := range []struct {
		cents  int64
		offset time.Duration
	}{
		{1250, -30 * time.Hour},
		{800, -24 * time.Hour},
		{1999, -3 * time.Hour},
		{450, 0},
		{7000, 2 * time.Hour},
	} {
		at := base.Add(p.offset)
		if _, err := r.Trips.Insert(ctx, models.Trip{Platform: "DoorDash", PayoutCents: p.cents, StartedAt: at, EndedAt: at}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	w := models.LastDay(base)
	got, err := r.Trips.SumCents(ctx, w.From, w.To)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got != 800+1999+450 {
		t.Fatalf("SumCents = %d, want %d", got, 800+1999+450)
	}

	all, err := r.Trips.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 5 || all[0].PayoutCents != 7000 || all[4].PayoutCents != 1250 {
		t.Fatalf("expected newest first: %+v", all)
	}
	if !all[0].StartedAt.Equal(base.Add(2*time.Hour)) || all[0].StartedAt.Location() != time.UTC {
		t.Fatalf("timestamp round trip: %s", all[0].StartedAt)
	}
}

func TestExpenseAndMileageSums(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	if got, err := r.Expenses.SumCents(ctx, base.Add(-time.Hour), base); err != nil || got != 0 {
		t.Fatalf("empty expense sum = %d, %v", got, err)
	}
	if got, err := r.Mileage.SumMiles(ctx, base.Add(-time.Hour), base); err != nil || got != 0 {
		t.Fatalf("empty mileage sum = %v, %v", got, err)
	}

	for i, c := range []int64{300, 4200, 15} {
		if _, err := r.Expenses.Insert(ctx, models.Expense{Category: "Gas", AmountCents: c, At: base.Add(-time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("insert expense: %v", err)
		}
	}
	for _, m := range []float64{1.5, 2.25} {
		if _, err := r.Mileage.Insert(ctx, models.MileageEvent{StartedAt: base.Add(-time.Minute), EndedAt: base, Miles: m}); err != nil {
			t.Fatalf("insert mileage: %v", err)
		}
	}

	if got, err := r.Expenses.SumCents(ctx, base.Add(-time.Hour), base); err != nil || got != 4515 {
		t.Fatalf("expense sum = %d, %v; want 4515", got, err)
	}
	got, err := r.Mileage.SumMiles(ctx, base.Add(-time.Hour), base)
	if err != nil || math.Abs(got-3.75) > 1e-9 {
		t.Fatalf("mileage sum = %v, %v; want 3.75", got, err)
	}
}

func TestHotspotUpsertReplacesAndRedOrdering(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	h := models.Hotspot{ID: "dd-downtown", Name: "Downtown", Lat: 36.206, Lng: -119.34, Intensity: 40, Platform: "DoorDash", UpdatedAt: base}
	if err := r.Hotspots.Upsert(ctx, h); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	h.Intensity = 91
	h.UpdatedAt = base.Add(time.Minute)
	if err := r.Hotspots.Upsert(ctx, h); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	got, err := r.Hotspots.Get(ctx, "dd-downtown")
	if err != nil || got.Intensity != 91 || !got.UpdatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("row not replaced: %+v %v", got, err)
	}
	if _, err := r.Hotspots.Get(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for id, v := range map[string]int{"a": 79, "b": 80, "d": 10} {
		if err := r.Hotspots.Upsert(ctx, models.Hotspot{ID: id, Name: id, Intensity: v, Platform: "DoorDash", UpdatedAt: base}); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}
	all, err := r.Hotspots.All(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("expected 4 rows: %+v %v", all, err)
	}
	red, err := r.Hotspots.Red(ctx, 80)
	if err != nil {
		t.Fatalf("red: %v", err)
	}
	if len(red) != 2 || red[0].ID != "dd-downtown" || red[1].ID != "b" {
		t.Fatalf("unexpected red list: %+v", red)
	}
}
