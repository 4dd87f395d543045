package getBudget

import (
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type BudgetResponse struct {
	response.Response
	Categories     []models.BudgetCategory `json:"categories"`
	RecentExpenses []models.Expense        `json:"recent_expenses"`
	TotalAllocated float64                 `json:"total_allocated"`
	TotalUsed      float64                 `json:"total_used"`
	TotalRemaining float64                 `json:"total_remaining"`
}

type BudgetProvider interface {
	BudgetCategories() []models.BudgetCategory
	RecentExpenses() []models.Expense
}

func New(log *slog.Logger, ref BudgetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.getBudget.New"

		log = log.With(slog.String("op", op))

		categories := ref.BudgetCategories()

		var allocated, used float64
		for _, c := range categories {
			allocated += c.Allocated
			used += c.Used
		}

		log.Info("budget retrieved", slog.Int("categories", len(categories)))

		render.JSON(w, r, BudgetResponse{
			Response:       response.OK(),
			Categories:     categories,
			RecentExpenses: ref.RecentExpenses(),
			TotalAllocated: allocated,
			TotalUsed:      used,
			TotalRemaining: allocated - used,
		})
	}
}
