package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizhub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// respondError maps domain errors to HTTP statuses. Anything unrecognized is
// a dependency failure: logged in full, returned as a safe generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrQuizNotFound),
		errors.Is(err, models.ErrQuestionNotFound),
		errors.Is(err, models.ErrAttemptNotFound),
		errors.Is(err, models.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadySubmitted),
		errors.Is(err, models.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
