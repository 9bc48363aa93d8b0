package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps the service error taxonomy onto the envelope. Anything
// unclassified becomes a generic 500 — internals never reach the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Fail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		utils.Fail(c, http.StatusForbidden, "Permission denied")
	default:
		if utils.Logger != nil {
			utils.Logger.Error("request_failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		utils.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
