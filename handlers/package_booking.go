package handlers

import (
	"net/http"

	packageBookingRepo "tripserver/database/repository/packagebooking"
	"tripserver/models"
	"tripserver/services/notification"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PackageBookingHandler serves the package booking endpoints.
type PackageBookingHandler struct {
	Repo       packageBookingRepo.PackageBookingRepository
	Mailer     notification.Mailer
	AdminEmail string
}

// NewPackageBookingHandler creates a PackageBookingHandler with its
// dependencies injected.
func NewPackageBookingHandler(repo packageBookingRepo.PackageBookingRepository, mailer notification.Mailer, adminEmail string) *PackageBookingHandler {
	return &PackageBookingHandler{Repo: repo, Mailer: mailer, AdminEmail: adminEmail}
}

// CreatePackageBooking handles POST /packagebookings. The admin notification
// is a post-commit side effect: a failed send is logged and the created
// booking is still returned.
func (h *PackageBookingHandler) CreatePackageBooking(c *gin.Context) {
	var booking models.PackageBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Repo.Create(&booking)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.Mailer != nil && h.AdminEmail != "" {
		if err := h.Mailer.SendPackageBookingEmail(h.AdminEmail, *created); err != nil {
			utils.GetLogger().Warn("Package booking notification failed",
				zap.String("bookingId", created.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking successful!", "booking": created})
}

// ListPackageBookings handles GET /packagebookings.
func (h *PackageBookingHandler) ListPackageBookings(c *gin.Context) {
	bookings, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetPackageBookingInvoice handles GET /packagebooking/invoice/:id.
func (h *PackageBookingHandler) GetPackageBookingInvoice(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdatePackageBooking handles PUT /packagebooking/:id.
func (h *PackageBookingHandler) UpdatePackageBooking(c *gin.Context) {
	var update models.PackageBookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Repo.Update(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package Booking updated successfully", "booking": booking})
}

// UpdatePackageBookingPayment handles PUT /packagebooking/payment/:id.
func (h *PackageBookingHandler) UpdatePackageBookingPayment(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Package Booking Payment updated successfully", "booking": booking})
}
