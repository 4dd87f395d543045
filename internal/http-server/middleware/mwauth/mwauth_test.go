package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/http-server/middleware/mwauth/mocks"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authHeader     string
		mockSetup      func(mockChecker *mocks.TokenChecker)
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer good-token",
			mockSetup: func(mockChecker *mocks.TokenChecker) {
				mockChecker.On("Valid", "good-token").Return(true)
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			mockSetup: func(mockChecker *mocks.TokenChecker) {
				mockChecker.On("Valid", "bad-token").Return(false)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			mockSetup:      func(mockChecker *mocks.TokenChecker) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed header",
			authHeader:     "Basic dXNlcjpwYXNz",
			mockSetup:      func(mockChecker *mocks.TokenChecker) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewTokenChecker(t)
			tc.mockSetup(mockChecker)

			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := New(logger, mockChecker)(next)

			req := httptest.NewRequest("GET", "/events", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.nextCalled, nextCalled)
		})
	}
}
