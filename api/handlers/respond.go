package handlers

import (
	"net/http"
	"rankcast/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to the HTTP status of its kind.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindState:
		status = http.StatusConflict
	case apperror.KindNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
