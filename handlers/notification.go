package handlers

import (
	"net/http"

	"tripserver/services/notification"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the admin email notification endpoint.
type NotificationHandler struct {
	Mailer notification.Mailer
}

// NewNotificationHandler creates a NotificationHandler with its mailer
// injected.
func NewNotificationHandler(mailer notification.Mailer) *NotificationHandler {
	return &NotificationHandler{Mailer: mailer}
}

// SendNotification handles POST /send-notification.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req struct {
		AdminEmail     string                      `json:"adminEmail" binding:"required"`
		BookingDetails notification.BookingDetails `json:"bookingDetails"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Mailer.SendBookingNotification(req.AdminEmail, req.BookingDetails); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification email sent successfully!"})
}
