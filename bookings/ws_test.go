package bookings

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/globals"
	"voyago/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func wsToken(t *testing.T, userID string) string {
	t.Helper()
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	assert.NoError(t, err)
	return signed
}

func TestHandleWSRejectsMissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/updates", nil)
	rec := httptest.NewRecorder()

	HandleWS(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWSUpgradeFailureWritesSingleError(t *testing.T) {
	// valid token but a plain GET, so the upgrade itself fails
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/updates?token="+wsToken(t, "u1"), nil)
	rec := httptest.NewRecorder()

	HandleWS(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// the upgrader's own response is the only one written
	assert.NotContains(t, rec.Body.String(), "WebSocket upgrade failed")
}
