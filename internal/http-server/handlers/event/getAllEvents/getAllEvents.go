package getAllEvents

import (
	"log/slog"
	"net/http"
	"strings"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents() []models.Event
}

// New lists events in insertion order. Optional query params mirror the
// events page controls: ?search= filters by title substring, ?status= by
// status tab ("all" and empty mean no filter).
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		search := r.URL.Query().Get("search")
		status := r.URL.Query().Get("status")

		events := filterEvents(eventsGetter.GetAllEvents(), search, status)

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func filterEvents(events []models.Event, search, status string) []models.Event {
	filtered := make([]models.Event, 0, len(events))

	for _, event := range events {
		if search != "" && !strings.Contains(strings.ToLower(event.Title), strings.ToLower(search)) {
			continue
		}
		if status != "" && status != "all" && event.Status != status {
			continue
		}

		filtered = append(filtered, event)
	}

	return filtered
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
