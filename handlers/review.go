package handlers

import (
	"net/http"

	reviewRepo "tripserver/database/repository/review"
	"tripserver/models"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler creates a ReviewHandler with its repository injected.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// SubmitReview handles POST /submit-review.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Repo.Create(&review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully!", "review": created})
}

// ListReviews handles GET /reviews, newest first.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
