package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/httpresp"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/payments"
	ucBooking "github.com/hungrypaws/hungry-paws-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListOwnerBookings
	deleteUC *ucBooking.DeleteBooking
	getUC    *ucBooking.GetOwnerBooking

	checkout *payments.Checkout
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListOwnerBookings,
	deleteUC *ucBooking.DeleteBooking,
	getUC *ucBooking.GetOwnerBooking,
	checkout *payments.Checkout,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		checkout: checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Type   string `json:"type" binding:"required"`
	PetIDs []uint `json:"petIds" binding:"required,min=1"`

	AppointmentDate string `json:"appointmentDate" binding:"required"` // YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime" binding:"required"` // HH:mm

	AntiRabiesDate    string `json:"antiRabiesDate"`
	HotelCheckoutDate string `json:"hotelCheckoutDate"`
	HotelCheckoutTime string `json:"hotelCheckoutTime"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All fields are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		OwnerID:           ownerID,
		Type:              req.Type,
		PetIDs:            req.PetIDs,
		Date:              req.AppointmentDate,
		Time:              req.AppointmentTime,
		AntiRabiesDate:    req.AntiRabiesDate,
		HotelCheckoutDate: req.HotelCheckoutDate,
		HotelCheckoutTime: req.HotelCheckoutTime,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"booking": b})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	bookingType := c.DefaultQuery("type", "grooming")

	bookings, err := h.listUC.Execute(c.Request.Context(), ownerID, bookingType)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"bookings": bookings})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{})
}

// ======================================================
// CHECKOUT
// ======================================================

func (h *BookingHandler) Checkout(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	if h.checkout == nil {
		httperr.BadRequest(c, "payments_disabled", "Online payment is not available.")
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if b.Status != "approved" {
		httperr.BadRequest(c, "booking_not_approved", "Only approved bookings can be paid.")
		return
	}

	url, err := h.checkout.CreateForBooking(c.Request.Context(), b)
	if err != nil {
		httperr.Internal(c, "failed_to_create_checkout", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{
		"checkout_url": url,
		"amount":       payments.PriceFor(b),
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error.")
		return
	}

	switch code {
	case "booking_not_found", "pet_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "invalid_type":
		httperr.BadRequest(c, code, "Booking type must be grooming or hotel.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Status must be approved or rejected.")
	case "pets_required":
		httperr.BadRequest(c, code, "Select at least one pet.")
	case "anti_rabies_date_required":
		httperr.BadRequest(c, code, "Anti-rabies vaccination date is required for grooming.")
	case "hotel_checkout_required":
		httperr.BadRequest(c, code, "Checkout date and time are required for hotel stays.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Invalid date or time.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}
