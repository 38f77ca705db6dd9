package get_slots

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

func TestHandler_Handle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(domain.DefaultSlots).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"slots":[{"id":"evening","displayTime":"5:00 PM","label":"Evening"}]}`, rec.Body.String())
}
