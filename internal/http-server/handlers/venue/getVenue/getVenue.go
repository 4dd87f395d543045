package getVenue

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventPortal/internal/catalog"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type VenueResponse struct {
	response.Response
	Venue models.Venue `json:"venue"`
}

type VenueGetter interface {
	Get(id int) (models.Venue, error)
}

// New returns the full read-only detail for one venue; the same id always
// yields the same detail.
func New(log *slog.Logger, venues VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log = log.With(slog.String("op", op))

		venueIdStr := chi.URLParam(r, "id")
		if venueIdStr == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))

			return
		}

		venueID, err := strconv.Atoi(venueIdStr)
		if err != nil {
			log.Error("invalid venue id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id format"))

			return
		}

		venue, err := venues.Get(venueID)
		if err != nil {
			if errors.Is(err, catalog.ErrVenueNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("venue not found"))

				return
			}

			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))

			return
		}

		log.Info("venue retrieved", slog.Int("venue_id", venueID))

		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			Venue:    venue,
		})
	}
}
