package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"voyago/globals"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// voucherPayload returns a signed payload string:
// userID|bookingID|timestamp|signature
func voucherPayload(userID, bookingID string) string {
	data := fmt.Sprintf("%s|%s|%d", userID, bookingID, time.Now().Unix())

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/bookings/booking/:bookingId/voucher
//
// Renders a PDF voucher for the booking with a verification QR code.
func (h *Handlers) PrintVoucher(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingId")

	ref, err := h.svc.GetBookingByID(r.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	qrPNG, err := qrcode.Encode(voucherPayload(userID, bookingID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", bookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", ref.Status()))
	pdf.Ln(8)

	switch ref.Variant {
	case VariantDestination:
		b := ref.Destination
		pdf.Cell(0, 10, fmt.Sprintf("Destination: %s (%s)", b.DestinationReference, b.TourType))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Trip start: %s", b.DateStart.Format("2006-01-02")))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", b.TotalPrice))
	case VariantHotel:
		b := ref.Hotel
		pdf.Cell(0, 10, fmt.Sprintf("Hotel: %s, room %s", b.HotelReference, b.RoomReference))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Stay: %s to %s (%d nights)",
			b.CheckInDate.Format("2006-01-02"), b.CheckOutDate.Format("2006-01-02"), b.NightCount))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", b.TotalPrice))
	case VariantPackage:
		b := ref.Package
		pdf.Cell(0, 10, fmt.Sprintf("Package: %s", b.PackageReference))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Trip start: %s", b.DateStart.Format("2006-01-02")))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", b.TotalPrice))
	}
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=voucher-"+bookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
