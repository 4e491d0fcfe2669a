package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-fragment/internal/api/shared/errors"
	"github.com/feral-file/ff-fragment/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondError responds with the status carried by err, logging server-side failures
func respondError(c *gin.Context, err error, message string) {
	apiErr := apierrors.FromError(message, err)

	if apiErr.Status() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("kind", string(apiErr.Kind)))
	}

	c.JSON(apiErr.Status(), apiErr)
}
