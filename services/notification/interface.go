package notification

import "tripserver/models"

// BookingDetails is the booking summary carried in an admin notification.
type BookingDetails struct {
	TripType  string `json:"tripType"`
	From      string `json:"from"`
	To        string `json:"to"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Passenger int    `json:"passenger"`
	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Mailer dispatches booking notifications over an email transport.
// Sending is best-effort: a failed send never affects the booking record
// it describes.
type Mailer interface {
	SendBookingNotification(to string, details BookingDetails) error
	SendPackageBookingEmail(to string, booking models.PackageBooking) error
}
