package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"facilityhub.dev/facility-service/pkg/facility"
)

// writeDomainError maps the core error taxonomy onto HTTP statuses. Every
// failure is recovered here into a structured client-visible response.
func writeDomainError(c *gin.Context, err error) {
	var validationErr *facility.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      validationErr.Error(),
			"field":      validationErr.Field,
			"constraint": validationErr.Constraint,
		})
		return
	}

	var stateErr *facility.StateError
	if errors.As(err, &stateErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":        stateErr.Error(),
			"precondition": stateErr.Precondition,
		})
		return
	}

	var authzErr *facility.AuthzError
	if errors.As(err, &authzErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": authzErr.Error()})
		return
	}

	var notFoundErr *facility.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
