package createEvent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/http-server/handlers/event/createEvent/mocks"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventAdder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"title": "Annual Offsite",
				"date": "2025-04-10",
				"time": "09:00 AM",
				"location": "Training Center",
				"attendees": 60,
				"budget": 80000,
				"type": "team-building",
				"priority": "medium",
				"leader": "Balaji Nadar"
			}`,
			mockSetup: func(mockAdder *mocks.EventAdder) {
				mockAdder.On("AddEvent", models.Event{
					Title:     "Annual Offsite",
					Date:      "2025-04-10",
					Time:      "09:00 AM",
					Location:  "Training Center",
					Attendees: 60,
					Budget:    80000,
					Status:    models.StatusUpcoming,
					Type:      "team-building",
					Priority:  "medium",
					Leader:    "Balaji Nadar",
				}).Return(4)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":4}`,
		},
		{
			name: "Minimal fields",
			requestBody: `{
				"title": "Standup Marathon",
				"date": "2025-05-01"
			}`,
			mockSetup: func(mockAdder *mocks.EventAdder) {
				mockAdder.On("AddEvent", mock.AnythingOfType("models.Event")).Return(5)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":5}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mockAdder *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"date": "2025-04-10"
			}`,
			mockSetup:      func(mockAdder *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing date",
			requestBody: `{
				"title": "Annual Offsite"
			}`,
			mockSetup:      func(mockAdder *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Date")
			},
		},
		{
			name:           "Empty title",
			requestBody:    `{"title": "", "date": "2025-04-10"}`,
			mockSetup:      func(mockAdder *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewEventAdder(t)
			tc.mockSetup(mockAdder)

			handler := New(logger, mockAdder)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, 456)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, 456, actualResponse.EventId)
}
