package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/services/podcasts"
)

// PostGenerate creates a podcast job and synthesizes its script
// @Summary      Generate podcast script
// @Description  Create a job and run script synthesis synchronously; the response carries the terminal job, complete with script or failed with error
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        request body types.GeneratePodcastRequest true "Source content and generation options"
// @Success      201 {object} types.Job "Job after the script stage"
// @Failure      400 {object} types.ErrorResponse "Missing source content"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Security     BearerAuth
// @Router       /api/v1/podcasts [post]
func PostGenerate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GeneratePodcastRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Unauthorized",
			})
			return
		}

		job, err := deps.Podcasts.GenerateScript(c.Request.Context(), userID, podcasts.GenerateScriptRequest{
			SourceContent: req.SourceContent,
			ContentID:     req.ContentID,
			Options:       req.Options,
		})
		if err != nil {
			types.RespondWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.FromJob(job))
	}
}
