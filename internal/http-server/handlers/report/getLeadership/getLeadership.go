package getLeadership

import (
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type LeadershipResponse struct {
	response.Response
	Leaders     []models.Leader           `json:"leaders"`
	Assignments []models.LeaderAssignment `json:"assignments"`
}

type LeadershipProvider interface {
	Leaders() []models.Leader
	Assignments() []models.LeaderAssignment
}

func New(log *slog.Logger, ref LeadershipProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.getLeadership.New"

		log = log.With(slog.String("op", op))

		leaders := ref.Leaders()

		log.Info("leadership retrieved", slog.Int("count", len(leaders)))

		render.JSON(w, r, LeadershipResponse{
			Response:    response.OK(),
			Leaders:     leaders,
			Assignments: ref.Assignments(),
		})
	}
}
