package models

import "time"

// PackageBooking represents a reservation against a pre-defined travel
// package offering. Unlike trip bookings there is no date-field branching.
type PackageBooking struct {
	ID            string    `bson:"id" json:"id"`
	Package       string    `bson:"package" json:"package"`
	Email         string    `bson:"email" json:"email"`
	Contact       string    `bson:"contact" json:"contact"`
	Passenger     int       `bson:"passenger" json:"passenger"`
	PaymentAmount float64   `bson:"payment_amount" json:"paymentAmount"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// PackageBookingUpdate carries a full-update payload for a package booking.
type PackageBookingUpdate struct {
	Package   *string `json:"package"`
	Email     *string `json:"email"`
	Contact   *string `json:"contact"`
	Passenger *int    `json:"passenger"`
}

// Validate checks the required fields of a package booking.
func (p *PackageBooking) Validate() error {
	switch {
	case p.Package == "":
		return NewValidationError("package is required")
	case p.Email == "":
		return NewValidationError("email is required")
	case p.Contact == "":
		return NewValidationError("contact is required")
	case p.Passenger <= 0:
		return NewValidationError("passenger is required")
	}
	return nil
}

// Normalize fills payment defaults on a new record.
func (p *PackageBooking) Normalize() {
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentStatusPending
	}
}

// ApplyUpdate overlays non-nil update fields onto the package booking.
func (p *PackageBooking) ApplyUpdate(u PackageBookingUpdate) {
	if u.Package != nil {
		p.Package = *u.Package
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Contact != nil {
		p.Contact = *u.Contact
	}
	if u.Passenger != nil {
		p.Passenger = *u.Passenger
	}
}
