package bookings

import (
	"encoding/json"
	"errors"
	"net/http"

	"voyago/models"
	"voyago/mq"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes the booking service over HTTP.
type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyFavorite):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// POST /api/bookings/create
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var in DestinationBookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), userID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	go mq.Emit(r.Context(), mq.BookingEvent{
		Event:     "booking-created",
		UserID:    userID,
		BookingID: booking.ID,
		Variant:   string(VariantDestination),
	})
	BroadcastUserUpdate(userID)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

// POST /api/bookings/hotels/create
func (h *Handlers) CreateHotelBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var in HotelBookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.svc.CreateHotelBooking(r.Context(), userID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	go mq.Emit(r.Context(), mq.BookingEvent{
		Event:     "booking-created",
		UserID:    userID,
		BookingID: booking.ID,
		Variant:   string(VariantHotel),
	})
	BroadcastUserUpdate(userID)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Hotel booking created successfully",
		"data":    booking,
	})
}

// POST /api/bookings/packages/create
func (h *Handlers) CreatePackageBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var in PackageBookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.svc.CreatePackageBooking(r.Context(), userID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	go mq.Emit(r.Context(), mq.BookingEvent{
		Event:     "booking-created",
		UserID:    userID,
		BookingID: booking.ID,
		Variant:   string(VariantPackage),
	})
	BroadcastUserUpdate(userID)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Package booking created successfully",
		"data":    booking,
	})
}

func (h *Handlers) listDestinationBookings(w http.ResponseWriter, r *http.Request, f Filter) {
	userID := utils.GetUserIDFromRequest(r)

	bookings, err := h.svc.DestinationBookings(r.Context(), userID, f)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GET /api/bookings/ongoing
func (h *Handlers) GetOngoingBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listDestinationBookings(w, r, FilterOngoing)
}

// GET /api/bookings/past
func (h *Handlers) GetPastBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listDestinationBookings(w, r, FilterPast)
}

// GET /api/bookings/all
func (h *Handlers) GetUserBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listDestinationBookings(w, r, FilterAll)
}

func filterFromQuery(r *http.Request) Filter {
	switch Filter(r.URL.Query().Get("filter")) {
	case FilterOngoing:
		return FilterOngoing
	case FilterPast:
		return FilterPast
	default:
		return FilterAll
	}
}

// GET /api/bookings/hotels/all?filter=ongoing|past
func (h *Handlers) GetHotelBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	bookings, err := h.svc.HotelBookings(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GET /api/bookings/packages/all?filter=ongoing|past
func (h *Handlers) GetPackageBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	bookings, err := h.svc.PackageBookings(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GET /api/bookings/booking/:bookingId
func (h *Handlers) GetBookingByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingId")

	ref, err := h.svc.GetBookingByID(r.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"variant": ref.Variant,
		"data":    ref.Value(),
	})
}

// PUT /api/bookings/booking/:bookingId/status
func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingId")

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ref, err := h.svc.UpdateBookingStatus(r.Context(), userID, bookingID, body.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	go mq.Emit(r.Context(), mq.BookingEvent{
		Event:     "booking-status-changed",
		UserID:    userID,
		BookingID: bookingID,
		Variant:   string(ref.Variant),
		Status:    string(body.Status),
	})
	BroadcastUserUpdate(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Booking status updated",
		"data":    ref.Value(),
	})
}

// DELETE /api/bookings/booking/:bookingId/cancel
func (h *Handlers) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingId")

	ref, err := h.svc.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	go mq.Emit(r.Context(), mq.BookingEvent{
		Event:     "booking-status-changed",
		UserID:    userID,
		BookingID: bookingID,
		Variant:   string(ref.Variant),
		Status:    string(models.StatusCancelled),
	})
	BroadcastUserUpdate(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Booking cancelled",
		"data":    ref.Value(),
	})
}

// GET /api/favorites/all
func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	destinations, err := h.svc.GetFavorites(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(destinations),
		"data":    destinations,
	})
}

// POST /api/favorites/add
func (h *Handlers) AddToFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorites, err := h.svc.AddToFavorites(r.Context(), userID, body.Reference)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Added to favorites",
		"data":    favorites,
	})
}

// DELETE /api/favorites/remove/:reference
func (h *Handlers) RemoveFromFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	reference := ps.ByName("reference")

	favorites, err := h.svc.RemoveFromFavorites(r.Context(), userID, reference)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Removed from favorites",
		"data":    favorites,
	})
}
