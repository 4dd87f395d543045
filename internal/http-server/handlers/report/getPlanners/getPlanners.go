package getPlanners

import (
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type PlannersResponse struct {
	response.Response
	Planners []models.Planner `json:"planners"`
}

type PlannersProvider interface {
	Planners() []models.Planner
}

func New(log *slog.Logger, ref PlannersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.getPlanners.New"

		log = log.With(slog.String("op", op))

		planners := ref.Planners()

		log.Info("planners retrieved", slog.Int("count", len(planners)))

		render.JSON(w, r, PlannersResponse{
			Response: response.OK(),
			Planners: planners,
		})
	}
}
