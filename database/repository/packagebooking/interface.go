package packageBookingRepo

import "tripserver/models"

// PackageBookingRepository defines data access for package booking records.
// Package bookings have no delete operation; the public surface never
// exposed one.
type PackageBookingRepository interface {
	Create(booking *models.PackageBooking) (*models.PackageBooking, error)
	GetAll() ([]models.PackageBooking, error)
	GetByID(id string) (*models.PackageBooking, error)
	Update(id string, update models.PackageBookingUpdate) (*models.PackageBooking, error)
	UpdatePayment(id string, payment models.PaymentUpdate) (*models.PackageBooking, error)
}
