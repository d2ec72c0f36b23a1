package controllers

import (
	"errors"
	"net/http"

	"hotel-api/domain"
	"hotel-api/utils"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps domain errors to HTTP responses. Anything outside
// the taxonomy becomes an opaque 500.
func respondDomainError(c *gin.Context, err error) {
	var ve domain.ValidationError
	switch {
	case domain.IsNotFound(err):
		utils.JSONMessage(c, http.StatusNotFound, err.Error())
	case errors.As(err, &ve):
		utils.JSONFieldErrors(c, ve.Fields)
	case domain.IsRoomUnavailable(err):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	case domain.IsRelationshipConflict(err):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	case domain.IsDeleteConflict(err):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	default:
		utils.JSONMessage(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindJSON binds and validates the request body, writing the 400 response on
// failure. Validation failures yield the field->messages map.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if fields := utils.FieldErrors(err); fields != nil {
			utils.JSONFieldErrors(c, fields)
		} else {
			utils.JSONMessage(c, http.StatusBadRequest, "invalid request payload")
		}
		return false
	}
	return true
}
