package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/models"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

type EarningsService struct {
	trips     repo.Trips
	expenses  repo.Expenses
	mileage   repo.Mileage
	hotspots  repo.Hotspots
	threshold int
	now       func() time.Time
}

func NewEarningsService(rs repo.Repositories, redThreshold int) *EarningsService {
	return &EarningsService{
		trips:     rs.Trips,
		expenses:  rs.Expenses,
		mileage:   rs.Mileage,
		hotspots:  rs.Hotspots,
		threshold: redThreshold,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// DefaultWindow is the last 24 hours.
func (s *EarningsService) DefaultWindow() models.Window { return models.LastDay(s.now()) }

// Summary aggregates gross payouts, expenses and tracked miles over w.
func (s *EarningsService) Summary(ctx context.Context, w models.Window) (models.Summary, error) {
	gross, err := s.trips.SumCents(ctx, w.From, w.To)
	if err != nil {
		return models.Summary{}, fmt.Errorf("sum trips: %w", err)
	}
	spent, err := s.expenses.SumCents(ctx, w.From, w.To)
	if err != nil {
		return models.Summary{}, fmt.Errorf("sum expenses: %w", err)
	}
	miles, err := s.mileage.SumMiles(ctx, w.From, w.To)
	if err != nil {
		return models.Summary{}, fmt.Errorf("sum miles: %w", err)
	}
	return models.NewSummary(w, gross, spent, miles), nil
}

type HotspotStatus struct {
	models.Hotspot
	Status string `json:"status"` // RED | OK
}

type Dashboard struct {
	models.Summary
	Hotspots []HotspotStatus `json:"hotspots"`
}

func (s *EarningsService) Dashboard(ctx context.Context, w models.Window) (Dashboard, error) {
	sum, err := s.Summary(ctx, w)
	if err != nil {
		return Dashboard{}, err
	}
	list, err := s.hotspots.All(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list hotspots: %w", err)
	}
	out := Dashboard{Summary: sum, Hotspots: make([]HotspotStatus, 0, len(list))}
	for _, h := range list {
		st := "OK"
		if h.IsRed(s.threshold) {
			st = "RED"
		}
		out.Hotspots = append(out.Hotspots, HotspotStatus{Hotspot: h, Status: st})
	}
	return out, nil
}

type Earnings struct {
	models.Summary
	ExpenseList []models.Expense `json:"expense_list"`
}

// Earnings is the summary plus every recorded expense, newest first.
func (s *EarningsService) Earnings(ctx context.Context, w models.Window) (Earnings, error) {
	sum, err := s.Summary(ctx, w)
	if err != nil {
		return Earnings{}, err
	}
	list, err := s.expenses.All(ctx)
	if err != nil {
		return Earnings{}, fmt.Errorf("list expenses: %w", err)
	}
	return Earnings{Summary: sum, ExpenseList: list}, nil
}
