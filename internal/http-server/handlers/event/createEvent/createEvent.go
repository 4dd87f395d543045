package createEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// EventRequest is the manual create-event shortcut: everything except title
// and date is optional.
type EventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Attendees   int     `json:"attendees"`
	Budget      float64 `json:"budget"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	Leader      string  `json:"leader"`
	Planner     string  `json:"planner"`
	Description string  `json:"description"`
}

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventAdder
type EventAdder interface {
	AddEvent(event models.Event) int
}

func New(log *slog.Logger, event EventAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventId := event.AddEvent(models.Event{
			Title:       req.Title,
			Date:        req.Date,
			Time:        req.Time,
			Location:    req.Location,
			Attendees:   req.Attendees,
			Budget:      req.Budget,
			Status:      models.StatusUpcoming,
			Planner:     req.Planner,
			Type:        req.Type,
			Description: req.Description,
			Priority:    req.Priority,
			Leader:      req.Leader,
		})

		log.Info("event added", slog.Int("id", eventId))

		responseOK(w, r, eventId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
