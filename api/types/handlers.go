package types

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/podforge/podforge-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// RespondWithError writes a structured error response, mapping application
// error codes to HTTP status codes. Unclassified errors become opaque 500s
// so internal details never reach the client.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{
			Status:  StatusError,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		}
		if len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
		c.JSON(appErr.GetHTTPCode(), resp)
		return
	}

	log.Printf("[ERROR] Unhandled error in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  StatusError,
		Message: "internal server error",
	})
}
