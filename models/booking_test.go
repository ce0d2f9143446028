package models

import (
	"errors"
	"testing"
)

func str(s string) *string { return &s }

func validOneWay() Booking {
	return Booking{
		Email:     "jane@example.com",
		Contact:   "919876543210",
		From:      "Delhi",
		To:        "Mumbai",
		Date:      str("05/05/2025"),
		StartDate: str("05/05/2025"),
		EndDate:   str("10/05/2025"),
		Passenger: 2,
		TripType:  TripTypeOneWay,
	}
}

func TestNormalizeOneWayClearsRoundTripDates(t *testing.T) {
	b := validOneWay()
	b.Normalize()

	if b.Date == nil {
		t.Fatal("one-way booking lost its date")
	}
	if b.StartDate != nil || b.EndDate != nil {
		t.Fatalf("one-way booking kept round-trip dates: start=%v end=%v", b.StartDate, b.EndDate)
	}
	if b.PaymentStatus != PaymentStatusPending {
		t.Fatalf("expected default payment status %q, got %q", PaymentStatusPending, b.PaymentStatus)
	}
}

func TestNormalizeRoundTripClearsSingleDate(t *testing.T) {
	b := validOneWay()
	b.TripType = TripTypeRoundTrip
	b.Normalize()

	if b.Date != nil {
		t.Fatalf("round-trip booking kept single date: %v", *b.Date)
	}
	if b.StartDate == nil || b.EndDate == nil {
		t.Fatal("round-trip booking lost its start/end dates")
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Booking)
	}{
		{"missing email", func(b *Booking) { b.Email = "" }},
		{"missing contact", func(b *Booking) { b.Contact = "" }},
		{"missing from", func(b *Booking) { b.From = "" }},
		{"missing to", func(b *Booking) { b.To = "" }},
		{"missing passenger", func(b *Booking) { b.Passenger = 0 }},
		{"missing trip type", func(b *Booking) { b.TripType = "" }},
		{"bad trip type", func(b *Booking) { b.TripType = "charter" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validOneWay()
			tc.mutate(&b)

			err := b.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestApplyUpdateRebranchesDates(t *testing.T) {
	b := validOneWay()
	b.Normalize()

	trip := TripTypeRoundTrip
	b.ApplyUpdate(BookingUpdate{
		TripType:  &trip,
		StartDate: str("01/06/2025"),
		EndDate:   str("08/06/2025"),
	})
	b.Normalize()

	if b.Date != nil {
		t.Fatalf("expected single date cleared after trip-type change, got %v", *b.Date)
	}
	if b.StartDate == nil || *b.StartDate != "01/06/2025" {
		t.Fatalf("start date not applied: %v", b.StartDate)
	}
}
