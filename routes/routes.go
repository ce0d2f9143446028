package routes

import (
	"net/http"
	"time"

	"tripserver/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the constructed handlers for route registration.
type HandlerBundle struct {
	Booking        *handlers.BookingHandler
	PackageBooking *handlers.PackageBookingHandler
	Review         *handlers.ReviewHandler
	Invoice        *handlers.InvoiceHandler
	Notification   *handlers.NotificationHandler
}

// RegisterBookingRoutes registers the trip booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/book", hb.Booking.CreateBooking)
	r.GET("/bookings", hb.Booking.ListBookings)
	r.GET("/bookings/invoice/:id", hb.Booking.GetBookingInvoice)
	r.PUT("/booking/:id", hb.Booking.UpdateBooking)
	r.PUT("/booking/payment/:id", hb.Booking.UpdateBookingPayment)
	r.DELETE("/booking/:id", hb.Booking.DeleteBooking)
}

// RegisterPackageBookingRoutes registers the package booking endpoints.
func RegisterPackageBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/packagebookings", hb.PackageBooking.CreatePackageBooking)
	r.GET("/packagebookings", hb.PackageBooking.ListPackageBookings)
	r.GET("/packagebooking/invoice/:id", hb.PackageBooking.GetPackageBookingInvoice)
	r.PUT("/packagebooking/:id", hb.PackageBooking.UpdatePackageBooking)
	r.PUT("/packagebooking/payment/:id", hb.PackageBooking.UpdatePackageBookingPayment)
}

// RegisterReviewRoutes registers the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/submit-review", hb.Review.SubmitReview)
	r.GET("/reviews", hb.Review.ListReviews)
}

// RegisterInvoiceRoutes registers invoice rendering and notification endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/generate-invoice", hb.Invoice.GenerateInvoice)
	r.POST("/send-notification", hb.Notification.SendNotification)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// publicDir is served under /public so rendered invoices are reachable by
// the URL the renderer hands out.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle, publicDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/public", publicDir)

	RegisterBookingRoutes(r, hb)
	RegisterPackageBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterHealthRoute(r)

	// Fixed body for any unmatched route.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
