package bookingRepo

import "tripserver/models"

// BookingRepository defines data access for trip booking records.
type BookingRepository interface {
	Create(booking *models.Booking) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	Update(id string, update models.BookingUpdate) (*models.Booking, error)
	UpdatePayment(id string, payment models.PaymentUpdate) (*models.Booking, error)
	Delete(id string) (*models.Booking, error)
}
