package getAllVenues

import (
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type VenuesResponse struct {
	response.Response
	Venues []models.Venue `json:"venues"`
}

type VenuesLister interface {
	List() []models.Venue
}

func New(log *slog.Logger, venues VenuesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getAllVenues.New"

		log = log.With(slog.String("op", op))

		list := venues.List()

		log.Info("venues retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, VenuesResponse{
			Response: response.OK(),
			Venues:   list,
		})
	}
}
