package sqlite

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	"github.com/gigpulse/gigpulse-backend/internal/repository"
)

func setupRepos(t *testing.T) repository.Repositories {
	t.Helper()
	repos, gdb, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repos
}

var base = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestTripSumMatchesRowsInWindow(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	payouts := []struct {
		cents  int64
		offset time.Duration
	}{
		{1250, -30 * time.Hour}, // outside
		{800, -24 * time.Hour},  // on the lower bound
		{1999, -3 * time.Hour},
		{450, 0},              // on the upper bound
		{7000, 2 * time.Hour}, // outside
	}
	for _, p := range payouts {
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

	var want int64
	all, err := r.Trips.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	for _, tr := range all {
		if !tr.StartedAt.Before(w.From) && !tr.StartedAt.After(w.To) {
			want += tr.PayoutCents
		}
	}
	if want != 800+1999+450 {
		t.Fatalf("fixture drift: want %d", want)
	}
	if got != want {
		t.Fatalf("SumCents = %d, want %d", got, want)
	}
}

func TestTripsAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		if _, err := r.Trips.Insert(ctx, models.Trip{Platform: "UberEats", PayoutCents: int64(i), StartedAt: at, EndedAt: at}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	all, err := r.Trips.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 || all[0].PayoutCents != 2 || all[2].PayoutCents != 0 {
		t.Fatalf("unexpected order: %+v", all)
	}
	if !all[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("timestamp round trip failed: %s", all[0].StartedAt)
	}
}

func TestExpenseSumAndEmptyWindow(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	got, err := r.Expenses.SumCents(ctx, base.Add(-time.Hour), base)
	if err != nil || got != 0 {
		t.Fatalf("empty sum = %d, %v; want 0", got, err)
	}

	for i, c := range []int64{300, 4200, 15} {
		if _, err := r.Expenses.Insert(ctx, models.Expense{Category: "Gas", AmountCents: c, At: base.Add(-time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	got, err = r.Expenses.SumCents(ctx, base.Add(-time.Hour), base)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if got != 4515 {
		t.Fatalf("SumCents = %d, want 4515", got)
	}
}

func TestMileageSum(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)

	got, err := r.Mileage.SumMiles(ctx, base.Add(-time.Hour), base)
	if err != nil || got != 0 {
		t.Fatalf("empty sum = %v, %v; want 0", got, err)
	}
	for _, m := range []float64{1.5, 2.25} {
		if _, err := r.Mileage.Insert(ctx, models.MileageEvent{StartedAt: base.Add(-time.Minute), EndedAt: base, Miles: m}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	got, err = r.Mileage.SumMiles(ctx, base.Add(-time.Hour), base)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if math.Abs(got-3.75) > 1e-9 {
		t.Fatalf("SumMiles = %v, want 3.75", got)
	}
}

func TestHotspotUpsertReplaces(t *testing.T) {
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

	all, err := r.Hotspots.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 row after re-upsert, got %d", len(all))
	}
	if all[0].Intensity != 91 || !all[0].UpdatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("row not replaced: %+v", all[0])
	}

	got, err := r.Hotspots.Get(ctx, "dd-downtown")
	if err != nil || got.Name != "Downtown" {
		t.Fatalf("get: %+v %v", got, err)
	}
	if _, err := r.Hotspots.Get(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHotspotRedFilterOrdering(t *testing.T) {
	ctx := context.Background()
	r := setupRepos(t)
	for id, v := range map[string]int{"a": 79, "b": 80, "c": 99, "d": 10} {
		if err := r.Hotspots.Upsert(ctx, models.Hotspot{ID: id, Name: id, Intensity: v, Platform: "DoorDash", UpdatedAt: base}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	red, err := r.Hotspots.Red(ctx, 80)
	if err != nil {
		t.Fatalf("red: %v", err)
	}
	if len(red) != 2 || red[0].ID != "c" || red[1].ID != "b" {
		t.Fatalf("unexpected red list: %+v", red)
	}
	all, _ := r.Hotspots.All(ctx)
	if len(all) != 4 || all[0].Intensity != 99 || all[3].Intensity != 10 {
		t.Fatalf("All should be intensity desc: %+v", all)
	}
}
