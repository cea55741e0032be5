package routes

import (
	"voyago/auth"
	"voyago/bookings"
	"voyago/catalog"
	"voyago/middleware"
	"voyago/ratelim"
	"voyago/sweep"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddBookingRoutes(router *httprouter.Router, h *bookings.Handlers) {
	router.POST("/api/bookings/create", ratelim.RateLimit(middleware.Authenticate(h.CreateBooking)))
	router.POST("/api/bookings/hotels/create", ratelim.RateLimit(middleware.Authenticate(h.CreateHotelBooking)))
	router.POST("/api/bookings/packages/create", ratelim.RateLimit(middleware.Authenticate(h.CreatePackageBooking)))

	router.GET("/api/bookings/ongoing", middleware.Authenticate(h.GetOngoingBookings))
	router.GET("/api/bookings/past", middleware.Authenticate(h.GetPastBookings))
	router.GET("/api/bookings/all", middleware.Authenticate(h.GetUserBookings))
	router.GET("/api/bookings/hotels/all", middleware.Authenticate(h.GetHotelBookings))
	router.GET("/api/bookings/packages/all", middleware.Authenticate(h.GetPackageBookings))

	router.GET("/api/bookings/booking/:bookingId", middleware.Authenticate(h.GetBookingByID))
	router.PUT("/api/bookings/booking/:bookingId/status", middleware.Authenticate(h.UpdateBookingStatus))
	router.DELETE("/api/bookings/booking/:bookingId/cancel", middleware.Authenticate(h.CancelBooking))
	router.GET("/api/bookings/booking/:bookingId/voucher", middleware.Authenticate(h.PrintVoucher))

	router.GET("/api/bookings/updates", middleware.Authenticate(bookings.HandleWS))
}

func AddFavoritesRoutes(router *httprouter.Router, h *bookings.Handlers) {
	router.GET("/api/favorites/all", middleware.Authenticate(h.GetFavorites))
	router.POST("/api/favorites/add", ratelim.RateLimit(middleware.Authenticate(h.AddToFavorites)))
	router.DELETE("/api/favorites/remove/:reference", middleware.Authenticate(h.RemoveFromFavorites))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handlers) {
	router.GET("/api/destinations", h.GetDestinations)
	router.GET("/api/destinations/:reference", h.GetDestination)
	router.GET("/api/hotels", h.GetHotels)
	router.GET("/api/hotels/:reference", h.GetHotel)
	router.GET("/api/packages", h.GetPackages)
	router.GET("/api/packages/:reference", h.GetPackage)
}

func AddSweepRoutes(router *httprouter.Router, h *sweep.Handlers) {
	router.POST("/api/admin/bookings/sweep", middleware.Authenticate(h.RunNow))
}
