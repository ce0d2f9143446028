package reviewRepo

import "tripserver/models"

// ReviewRepository defines data access for customer reviews.
type ReviewRepository interface {
	Create(review *models.Review) (*models.Review, error)
	// GetAll returns reviews in descending creation-time order.
	GetAll() ([]models.Review, error)
}
