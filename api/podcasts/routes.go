package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
)

// RegisterRoutes registers podcast job routes
// Rate limiting is applied at the route registration level: the generation
// endpoints take the tight limiter, reads and deletes the general one
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, generationMiddleware, readMiddleware gin.HandlerFunc) {
	// POST /api/v1/podcasts - Create a job and synthesize its script
	router.POST("", generationMiddleware, PostGenerate(deps))

	// POST /api/v1/podcasts/:id/audio - Generate audio for a persisted script
	router.POST("/:id/audio", generationMiddleware, PostAudio(deps))

	// GET /api/v1/podcasts - List the caller's jobs
	router.GET("", readMiddleware, GetList(deps))

	// GET /api/v1/podcasts/:id - Fetch one job, or export its script
	router.GET("/:id", readMiddleware, GetJob(deps))

	// DELETE /api/v1/podcasts/:id - Delete an owned job
	router.DELETE("/:id", readMiddleware, DeleteJob(deps))
}
