package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service version
// @Description  Service name and version, useful as a liveness probe
// @Tags         version
// @Produce      json
// @Success      200 {object} object{name=string,version=string,description=string,status=string}
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Podforge API",
			"version":     "1.0.0",
			"description": "API for generating podcasts from source content",
			"status":      "running",
		})
	}
}
