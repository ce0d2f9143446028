package models

import "time"

// Trip types accepted on a booking.
const (
	TripTypeOneWay    = "oneway"
	TripTypeRoundTrip = "roundtrip"
)

// Payment statuses carried on booking records.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Booking represents a one-way or round-trip travel reservation.
// Date is set only for one-way trips; StartDate/EndDate only for round trips.
// The pointer types keep the unused branch null in storage and in JSON.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Contact       string    `bson:"contact" json:"contact"`
	From          string    `bson:"from" json:"from"`
	To            string    `bson:"to" json:"to"`
	Date          *string   `bson:"date" json:"date"`
	StartDate     *string   `bson:"start_date" json:"startDate"`
	EndDate       *string   `bson:"end_date" json:"endDate"`
	Passenger     int       `bson:"passenger" json:"passenger"`
	TripType      string    `bson:"trip_type" json:"tripType"`
	PaymentAmount float64   `bson:"payment_amount" json:"paymentAmount"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// BookingUpdate carries a full-update payload. Nil fields keep the stored
// value; the merged document is re-validated before persisting.
type BookingUpdate struct {
	Email     *string `json:"email"`
	Contact   *string `json:"contact"`
	From      *string `json:"from"`
	To        *string `json:"to"`
	Date      *string `json:"date"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Passenger *int    `json:"passenger"`
	TripType  *string `json:"tripType"`
}

// PaymentUpdate carries a payment-only partial update.
type PaymentUpdate struct {
	PaymentAmount float64 `json:"paymentAmount"`
	PaymentStatus string  `json:"paymentStatus"`
}

// Validate checks the required fields of a trip booking.
func (b *Booking) Validate() error {
	switch {
	case b.Email == "":
		return NewValidationError("email is required")
	case b.Contact == "":
		return NewValidationError("contact is required")
	case b.From == "":
		return NewValidationError("from is required")
	case b.To == "":
		return NewValidationError("to is required")
	case b.Passenger <= 0:
		return NewValidationError("passenger is required")
	}
	if b.TripType != TripTypeOneWay && b.TripType != TripTypeRoundTrip {
		return NewValidationError("tripType must be oneway or roundtrip")
	}
	return nil
}

// Normalize enforces the date-field invariant: only the fields matching the
// trip type survive, the other branch is nulled out.
func (b *Booking) Normalize() {
	if b.TripType == TripTypeOneWay {
		b.StartDate = nil
		b.EndDate = nil
	} else {
		b.Date = nil
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentStatusPending
	}
}

// ApplyUpdate overlays non-nil update fields onto the booking.
func (b *Booking) ApplyUpdate(u BookingUpdate) {
	if u.Email != nil {
		b.Email = *u.Email
	}
	if u.Contact != nil {
		b.Contact = *u.Contact
	}
	if u.From != nil {
		b.From = *u.From
	}
	if u.To != nil {
		b.To = *u.To
	}
	if u.Date != nil {
		b.Date = u.Date
	}
	if u.StartDate != nil {
		b.StartDate = u.StartDate
	}
	if u.EndDate != nil {
		b.EndDate = u.EndDate
	}
	if u.Passenger != nil {
		b.Passenger = *u.Passenger
	}
	if u.TripType != nil {
		b.TripType = *u.TripType
	}
}
