package downloadSummary

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPortal/internal/http-server/handlers/intake/downloadSummary/mocks"
	"eventPortal/internal/intake/submission"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadSummaryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		request := &models.EventRequest{
			Requester: models.Requester{
				Name:  "Jane Doe",
				Email: "jane@x.com",
			},
			Event: models.RequestedEvent{
				Name:  "Town Hall",
				Venue: "Auditorium A",
			},
			Approval: models.Approval{
				Granted:      true,
				ApproverName: "Sam Lee",
			},
			RequestID:   "req-abc",
			SubmittedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		}

		mockReader := mocks.NewSubmissionReader(t)
		mockReader.On("Last").Return(request, nil)

		handler := New(logger, mockReader)

		req := httptest.NewRequest("GET", "/intake/confirmation/download", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="event-request-req-abc.txt"`, rr.Header().Get("Content-Disposition"))

		body := rr.Body.String()
		assert.Contains(t, body, "Request ID: req-abc")
		assert.Contains(t, body, "Town Hall")
	})

	t.Run("Nothing submitted", func(t *testing.T) {
		t.Parallel()

		mockReader := mocks.NewSubmissionReader(t)
		mockReader.On("Last").Return(nil, submission.ErrNotSubmitted)

		handler := New(logger, mockReader)

		req := httptest.NewRequest("GET", "/intake/confirmation/download", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"no submitted request"}`, rr.Body.String())
	})
}
