package models

import "time"

// Review is a customer review with a 1-5 star rating.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Validate checks required fields and the rating bounds.
func (r *Review) Validate() error {
	switch {
	case r.Name == "":
		return NewValidationError("name is required")
	case r.Email == "":
		return NewValidationError("email is required")
	case r.Message == "":
		return NewValidationError("message is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return NewValidationError("rating must be between 1 and 5")
	}
	return nil
}
