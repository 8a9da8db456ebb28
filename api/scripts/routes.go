package scripts

import (
	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
)

// RegisterRoutes registers script parsing routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/scripts/parse - Parse raw text into speaker segments
	router.POST("/parse", PostParse(deps))
}
