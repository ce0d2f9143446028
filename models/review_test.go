package models

import (
	"errors"
	"testing"
)

func TestReviewValidateRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		r := Review{Name: "Jane", Email: "jane@example.com", Message: "Great trip", Rating: rating}

		err := r.Validate()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("rating %d: expected ValidationError, got %v", rating, err)
		}
	}
	for rating := 1; rating <= 5; rating++ {
		r := Review{Name: "Jane", Email: "jane@example.com", Message: "Great trip", Rating: rating}
		if err := r.Validate(); err != nil {
			t.Fatalf("rating %d: unexpected error %v", rating, err)
		}
	}
}

func TestReviewValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		review Review
	}{
		{"missing name", Review{Email: "a@b.c", Message: "m", Rating: 3}},
		{"missing email", Review{Name: "A", Message: "m", Rating: 3}},
		{"missing message", Review{Name: "A", Email: "a@b.c", Rating: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.review.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}
