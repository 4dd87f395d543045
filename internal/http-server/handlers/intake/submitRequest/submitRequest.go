package submitRequest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPortal/internal/intake"
	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SubmitResponse struct {
	response.Response
	RequestID   string `json:"request_id,omitempty"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	Message     string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Submitter
type Submitter interface {
	Submit(ctx context.Context, form intake.Form) (*models.EventRequest, error)
}

func New(log *slog.Logger, submitter Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.intake.submitRequest.New"

		log = log.With(slog.String("op", op))

		var form intake.Form

		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("intake form decoded", slog.String("event", form.EventName))

		request, err := submitter.Submit(r.Context(), form)
		if err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid intake form", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))

				return
			}

			switch {
			case errors.Is(err, submission.ErrSubmissionInFlight):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("a submission is already in progress"))
			case errors.Is(err, submission.ErrAlreadySubmitted):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("request already submitted, reset the form to submit another"))
			default:
				log.Error("failed to submit event request", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit event request"))
			}

			return
		}

		log.Info("event request submitted", slog.String("request_id", request.RequestID))

		responseOK(w, r, request)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, request *models.EventRequest) {
	render.JSON(w, r, SubmitResponse{
		Response:    response.OK(),
		RequestID:   request.RequestID,
		SubmittedAt: request.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
		Message:     "Your event request has been submitted for approval.",
	})
}
