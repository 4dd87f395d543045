package getConfirmation

import (
	"errors"
	"log/slog"
	"net/http"

	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

type ConfirmationResponse struct {
	response.Response
	Request *models.EventRequest `json:"request"`
	Message string               `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubmissionReader
type SubmissionReader interface {
	Last() (*models.EventRequest, error)
}

func New(log *slog.Logger, reader SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.intake.getConfirmation.New"

		log = log.With(slog.String("op", op))

		request, err := reader.Last()
		if err != nil {
			if errors.Is(err, submission.ErrNotSubmitted) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no submitted request"))

				return
			}

			log.Error("failed to get confirmation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get confirmation"))

			return
		}

		log.Info("confirmation retrieved", slog.String("request_id", request.RequestID))

		render.JSON(w, r, ConfirmationResponse{
			Response: response.OK(),
			Request:  request,
			Message:  "Your event request has been submitted for approval.",
		})
	}
}
