package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Email:  "traveler@example.com",
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	assert.NoError(t, err)
	return signed
}

func TestAuthenticateInjectsUserID(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/all", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", time.Minute))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", gotUserID)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/all", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/all", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/all", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", -time.Minute))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthProceedsWithoutToken(t *testing.T) {
	called := false
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		assert.Nil(t, r.Context().Value(globals.UserIDKey))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateJWT(t *testing.T) {
	token := signToken(t, "u1", time.Minute)

	claims, err := ValidateJWT("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = ValidateJWT("")
	assert.Error(t, err)

	_, err = ValidateJWT("Bearer not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSignature(t *testing.T) {
	claims := Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-secret"))
	assert.NoError(t, err)

	_, err = ValidateJWT("Bearer " + forged)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	_, err := ValidateJWT("Bearer " + signToken(t, "u1", -time.Minute))
	assert.Error(t, err)
}
