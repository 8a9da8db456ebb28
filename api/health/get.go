package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database, TTS provider, and artifact storage status
// @Tags         health
// @Produce      json
// @Success      200 {object} object{status=string,timestamp=string,database=object,tts=object,storage=object}
// @Failure      503 {object} object{status=string,timestamp=string,database=object}
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		// Add database status
		if deps != nil && deps.DB != nil {
			dbStatus := getDatabaseStatus(deps)
			response["database"] = dbStatus
			if dbStatus["status"] != "healthy" {
				response["status"] = "degraded"
				status = http.StatusServiceUnavailable
			}
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil {
			response["tts"] = gin.H{
				"providers": deps.TTSProviders,
				"default":   deps.DefaultProvider,
			}
			response["storage"] = gin.H{
				"backend": deps.StorageBackend,
			}
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
