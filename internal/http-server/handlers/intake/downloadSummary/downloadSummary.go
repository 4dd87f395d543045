package downloadSummary

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eventPortal/internal/export"
	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/api/response"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubmissionReader
type SubmissionReader interface {
	Last() (*models.EventRequest, error)
}

// New serves the submitted request as a plain-text attachment.
func New(log *slog.Logger, reader SubmissionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.intake.downloadSummary.New"

		log = log.With(slog.String("op", op))

		request, err := reader.Last()
		if err != nil {
			if errors.Is(err, submission.ErrNotSubmitted) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no submitted request"))

				return
			}

			log.Error("failed to get submission", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get submission"))

			return
		}

		filename, content := export.Summary(*request)

		log.Info("summary downloaded", slog.String("request_id", request.RequestID))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write([]byte(content))
	}
}
