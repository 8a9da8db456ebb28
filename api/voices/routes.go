package voices

import (
	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
)

// RegisterRoutes registers voice catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
}
