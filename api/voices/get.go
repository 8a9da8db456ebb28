package voices

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/services/speech"
)

// Get lists the selectable synthesizer voices per provider
// @Summary      List voices
// @Description  Voice catalog per TTS provider, for building voice maps
// @Tags         voices
// @Produce      json
// @Success      200 {object} types.VoicesResponse "Voices grouped by provider"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Security     BearerAuth
// @Router       /api/v1/voices [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VoicesResponse{
			Providers:       types.FromVoiceCatalog(speech.Catalog()),
			DefaultProvider: deps.DefaultProvider,
		})
	}
}
