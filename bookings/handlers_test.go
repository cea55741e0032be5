package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyago/globals"
	"voyago/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), globals.UserIDKey, "u1")
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestCreateBookingHandler(t *testing.T) {
	users := new(MockUserStore)
	user := testUser()
	users.On("FindByID", mock.Anything, "u1").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	body := `{
		"destinationReference": "DST-1",
		"tourType": "dayTour",
		"transportation": ["vanRental"],
		"image": "https://img.example.com/dst1.jpg",
		"dateStart": "2025-07-15T08:00:00Z",
		"totalPrice": 199.99
	}`
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings/create", body), nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]any)
	assert.Equal(t, "upcoming", data["status"])
	assert.NotEmpty(t, data["id"])
}

func TestCreateBookingHandlerRejectsInvalidBody(t *testing.T) {
	h := NewHandlers(newTestService(new(MockUserStore), new(MockCatalog)))

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings/create", "{not json"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, false, out["success"])
}

func TestCreateBookingHandlerValidationError(t *testing.T) {
	h := NewHandlers(newTestService(new(MockUserStore), new(MockCatalog)))

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings/create", `{"tourType":"dayTour"}`), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingByIDHandlerNotFound(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByID", mock.Anything, "u1").Return(testUser(), nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "bookingId", Value: "missing"}}
	h.GetBookingByID(rec, authedRequest(http.MethodGet, "/api/bookings/booking/missing", ""), ps)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingByIDHandlerIncludesVariant(t *testing.T) {
	users := new(MockUserStore)
	user := testUser()
	user.HotelBookings = []models.HotelBooking{{ID: "h1", Status: models.StatusUpcoming}}
	users.On("FindByID", mock.Anything, "u1").Return(user, nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "bookingId", Value: "h1"}}
	h.GetBookingByID(rec, authedRequest(http.MethodGet, "/api/bookings/booking/h1", ""), ps)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "hotel", out["variant"])
}

func TestUpdateBookingStatusHandlerRejectsUnknownStatus(t *testing.T) {
	h := NewHandlers(newTestService(new(MockUserStore), new(MockCatalog)))

	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "bookingId", Value: "d1"}}
	h.UpdateBookingStatus(rec, authedRequest(http.MethodPut, "/api/bookings/booking/d1/status", `{"status":"paused"}`), ps)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBookingHandler(t *testing.T) {
	users := new(MockUserStore)
	user := testUser()
	user.Bookings = []models.DestinationBooking{{ID: "d1", Status: models.StatusUpcoming}}
	users.On("FindByID", mock.Anything, "u1").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "bookingId", Value: "d1"}}
	h.CancelBooking(rec, authedRequest(http.MethodDelete, "/api/bookings/booking/d1/cancel", ""), ps)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	data := out["data"].(map[string]any)
	assert.Equal(t, "cancelled", data["status"])
}

func TestAddToFavoritesHandlerConflict(t *testing.T) {
	users := new(MockUserStore)
	user := testUser()
	user.Favorites = []string{"REF1"}
	users.On("FindByID", mock.Anything, "u1").Return(user, nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	rec := httptest.NewRecorder()
	h.AddToFavorites(rec, authedRequest(http.MethodPost, "/api/favorites/add", `{"reference":"REF1"}`), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetHotelBookingsHandlerFilter(t *testing.T) {
	users := new(MockUserStore)
	user := testUser()
	user.HotelBookings = []models.HotelBooking{
		{ID: "h1", Status: models.StatusUpcoming},
		{ID: "h2", Status: models.StatusCompleted},
	}
	users.On("FindByID", mock.Anything, "u1").Return(user, nil)

	h := NewHandlers(newTestService(users, new(MockCatalog)))

	rec := httptest.NewRecorder()
	h.GetHotelBookings(rec, authedRequest(http.MethodGet, "/api/bookings/hotels/all?filter=past", ""), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, float64(1), out["count"])
}
