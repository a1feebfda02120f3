package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/hungrypaws/hungry-paws-api/internal/domain/booking"
	"github.com/hungrypaws/hungry-paws-api/internal/httpresp"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	ucBooking "github.com/hungrypaws/hungry-paws-api/internal/usecase/booking"
)

type AdminBookingHandler struct {
	listUC   *ucBooking.ListAdminBookings
	decideUC *ucBooking.DecideBooking
}

func NewAdminBookingHandler(
	listUC *ucBooking.ListAdminBookings,
	decideUC *ucBooking.DecideBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		listUC:   listUC,
		decideUC: decideUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	bookingType := c.DefaultQuery("type", "grooming")
	status := c.DefaultQuery("status", "pending")

	bookings, err := h.listUC.Execute(c.Request.Context(), bookingType, status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"bookings": bookings})
}

// ======================================================
// APPROVE / REJECT
// ======================================================

func (h *AdminBookingHandler) Approve(c *gin.Context) {
	h.decide(c, domain.StatusApproved)
}

func (h *AdminBookingHandler) Reject(c *gin.Context) {
	h.decide(c, domain.StatusRejected)
}

func (h *AdminBookingHandler) decide(c *gin.Context, target domain.Status) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.decideUC.Execute(c.Request.Context(), adminID, id, target); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Booking " + string(target) + "."})
}
