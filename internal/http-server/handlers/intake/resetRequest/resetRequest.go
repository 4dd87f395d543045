package resetRequest

import (
	"errors"
	"log/slog"
	"net/http"

	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Resetter
type Resetter interface {
	Reset() error
}

// New clears the submitted state so another request can be raised.
func New(log *slog.Logger, resetter Resetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.intake.resetRequest.New"

		log = log.With(slog.String("op", op))

		if err := resetter.Reset(); err != nil {
			if errors.Is(err, submission.ErrSubmissionInFlight) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("a submission is in progress and cannot be aborted"))

				return
			}

			log.Error("failed to reset intake form", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to reset intake form"))

			return
		}

		log.Info("intake form reset")

		render.JSON(w, r, response.OK())
	}
}
