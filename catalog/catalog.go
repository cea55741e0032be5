package catalog

import (
	"errors"
	"net/http"

	"voyago/store"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers serves the read-only destination, hotel and package catalog.
type Handlers struct {
	catalog store.CatalogStore
}

func NewHandlers(catalog store.CatalogStore) *Handlers {
	return &Handlers{catalog: catalog}
}

// GET /api/destinations
func (h *Handlers) GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destinations, err := h.catalog.Destinations(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(destinations),
		"data":    destinations,
	})
}

// GET /api/destinations/:reference
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dest, err := h.catalog.DestinationByReference(r.Context(), ps.ByName("reference"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destination")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": dest})
}

// GET /api/hotels
func (h *Handlers) GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hotels, err := h.catalog.Hotels(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(hotels),
		"data":    hotels,
	})
}

// GET /api/hotels/:reference
func (h *Handlers) GetHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotel, err := h.catalog.HotelByReference(r.Context(), ps.ByName("reference"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch hotel")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": hotel})
}

// GET /api/packages
func (h *Handlers) GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(packages),
		"data":    packages,
	})
}

// GET /api/packages/:reference
func (h *Handlers) GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pkg, err := h.catalog.PackageByReference(r.Context(), ps.ByName("reference"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch package")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": pkg})
}
