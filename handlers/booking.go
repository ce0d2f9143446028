package handlers

import (
	"net/http"

	bookingRepo "tripserver/database/repository/booking"
	"tripserver/models"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the trip booking endpoints.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

// NewBookingHandler creates a BookingHandler with its repository injected.
func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// CreateBooking handles POST /book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Repo.Create(&booking)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking successful!", "booking": created})
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingInvoice handles GET /bookings/invoice/:id.
func (h *BookingHandler) GetBookingInvoice(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PUT /booking/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Repo.Update(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "booking": booking})
}

// UpdateBookingPayment handles PUT /booking/payment/:id.
func (h *BookingHandler) UpdateBookingPayment(c *gin.Context) {
	var payment models.PaymentUpdate
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Repo.UpdatePayment(c.Param("id"), payment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment updated successfully", "booking": booking})
}

// DeleteBooking handles DELETE /booking/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.Repo.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.GetLogger().Info("Booking deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "booking": booking})
}
