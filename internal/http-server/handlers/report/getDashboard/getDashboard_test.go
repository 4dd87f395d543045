package getDashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/catalog"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/storage/memory"

	"github.com/stretchr/testify/assert"
)

func TestDashboardAggregatesStoreAndReference(t *testing.T) {
	t.Parallel()

	store := memory.NewWithSeed(memory.SeedEvents())
	handler := New(slogdiscard.NewDiscardLogger(), store, catalog.NewReference())

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "OK",
		"total_events": 3,
		"upcoming_events": 1,
		"planning_events": 1,
		"completed_events": 1,
		"total_budget": 325000,
		"planners_count": 4
	}`, rr.Body.String())
}

func TestDashboardEmptyStore(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), memory.New(), catalog.NewReference())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_events":0`)
}
