package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlypets/go-petstore-api/internal/dto"
	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type BookingHandler struct {
	st *store.Store
}

func NewBookingHandler(st *store.Store) *BookingHandler {
	return &BookingHandler{st: st}
}

// ListMine returns the signed-in user's bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings := h.st.UserBookings()
	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.ToBookingResponse(b))
	}
	c.JSON(http.StatusOK, dto.BookingListResponse{Bookings: out})
}

// Cancel marks the booking cancelled. Unknown ids are silently absorbed and
// repeated cancels are idempotent, matching the store contract.
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.st.CancelBooking(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// SlotAvailability reports, for a service and date, which half-day slots are
// taken. The UI uses this to disable unselectable slots.
func (h *BookingHandler) SlotAvailability(c *gin.Context) {
	serviceID := c.Param("id")
	if _, ok := h.st.ServiceByID(serviceID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	slots := make([]dto.SlotResponse, 0, 2)
	for _, slot := range []model.TimeSlot{model.SlotMorning, model.SlotAfternoon} {
		slots = append(slots, dto.SlotResponse{
			Slot:   string(slot),
			Booked: h.st.IsSlotBooked(serviceID, date, slot),
		})
	}
	c.JSON(http.StatusOK, dto.SlotAvailabilityResponse{ServiceID: serviceID, Date: date, Slots: slots})
}
