package handlers

import (
	"net/http"

	"github.com/gigpulse/gigpulse-backend/internal/api/httpx"
	"github.com/gigpulse/gigpulse-backend/internal/api/validate"
	"github.com/gigpulse/gigpulse-backend/internal/services"
)

type ExpenseHandler struct {
	Expenses *services.ExpenseService
	Earnings *services.EarningsService
}

type addExpenseReq struct {
	Category string         `json:"category"`
	Amount   validate.Loose `json:"amount"`
	Note     string         `json:"note"`
	At       string         `json:"at,omitempty"`
}

func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addExpenseReq
	if err := httpx.DecodeLenient(r, &req); err != nil {
		badJSON(w)
		return
	}
	e, err := h.Expenses.Add(r.Context(), services.NewExpense{
		Category: req.Category,
		Amount:   req.Amount.String(),
		Note:     req.Note,
		At:       validate.OptionalTime(req.At),
	})
	if err != nil {
		serverError(w, r, "add expense", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Expenses.List(r.Context())
	if err != nil {
		serverError(w, r, "list expenses", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// Summary is gross, expenses and net for the window, plus the expense list.
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	win, ok := window(w, r, h.Earnings.DefaultWindow())
	if !ok {
		return
	}
	e, err := h.Earnings.Earnings(r.Context(), win)
	if err != nil {
		serverError(w, r, "earnings", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}
