package handlers

import (
	"errors"
	"net/http"

	"tripserver/models"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation failures
// are client errors, missing records are 404s, everything else is a 500.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var renderErr *models.RenderError
	var sendErr *models.SendError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &renderErr):
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate invoice", err.Error())
	case errors.As(err, &sendErr):
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send email", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
