package getAllVenues

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/catalog"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllVenuesHandler(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), catalog.NewVenueCatalog())

	req := httptest.NewRequest("GET", "/venues", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response VenuesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, "OK", response.Status)
	require.NotEmpty(t, response.Venues)

	names := make([]string, 0, len(response.Venues))
	for _, venue := range response.Venues {
		names = append(names, venue.Name)
	}

	assert.Contains(t, names, "Auditorium A")
	assert.Contains(t, names, "Training Center")
}
