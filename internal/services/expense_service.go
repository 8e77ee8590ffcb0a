package services

import (
	"context"
	"strings"
	"time"

	"github.com/gigpulse/gigpulse-backend/internal/metrics"
	"github.com/gigpulse/gigpulse-backend/internal/models"
	repo "github.com/gigpulse/gigpulse-backend/internal/repository"
)

type ExpenseService struct {
	r   repo.Expenses
	now func() time.Time
}

func NewExpenseService(r repo.Expenses) *ExpenseService {
	return &ExpenseService{r: r, now: func() time.Time { return time.Now().UTC() }}
}

type NewExpense struct {
	Category string
	Amount   string // dollars
	Note     string
	At       *time.Time
}

func (s *ExpenseService) Add(ctx context.Context, in NewExpense) (models.Expense, error) {
	e := models.Expense{
		Category:    models.NormalizeCategory(in.Category),
		AmountCents: ParseCents(in.Amount),
		At:          s.now(),
		Note:        strings.TrimSpace(in.Note),
	}
	if in.At != nil {
		e.At = in.At.UTC()
	}
	e, err := s.r.Insert(ctx, e)
	if err != nil {
		return models.Expense{}, err
	}
	metrics.RecordsCreated.WithLabelValues("expense").Inc()
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) { return s.r.All(ctx) }
