package getDashboard

import (
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

// DashboardResponse aggregates live store counts with the static reference
// data into the front-page stat cards.
type DashboardResponse struct {
	response.Response
	TotalEvents     int     `json:"total_events"`
	UpcomingEvents  int     `json:"upcoming_events"`
	PlanningEvents  int     `json:"planning_events"`
	CompletedEvents int     `json:"completed_events"`
	TotalBudget     float64 `json:"total_budget"`
	PlannersCount   int     `json:"planners_count"`
}

type EventsGetter interface {
	GetAllEvents() []models.Event
}

type PlannersProvider interface {
	Planners() []models.Planner
}

func New(log *slog.Logger, eventsGetter EventsGetter, ref PlannersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.getDashboard.New"

		log = log.With(slog.String("op", op))

		events := eventsGetter.GetAllEvents()

		resp := DashboardResponse{
			Response:      response.OK(),
			TotalEvents:   len(events),
			PlannersCount: len(ref.Planners()),
		}

		for _, event := range events {
			resp.TotalBudget += event.Budget

			switch event.Status {
			case models.StatusUpcoming:
				resp.UpcomingEvents++
			case models.StatusPlanning:
				resp.PlanningEvents++
			case models.StatusCompleted:
				resp.CompletedEvents++
			}
		}

		log.Info("dashboard stats computed", slog.Int("events", resp.TotalEvents))

		render.JSON(w, r, resp)
	}
}
