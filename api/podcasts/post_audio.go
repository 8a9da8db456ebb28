package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/services/podcasts"
)

// PostAudio generates audio for a job's persisted script
// @Summary      Generate podcast audio
// @Description  Claim a job that holds a script and run per-segment synthesis plus stitching synchronously; an optional edited script replaces the persisted one before synthesis
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        request body types.GenerateAudioRequest true "Speaker to voice mapping, optional edited script"
// @Success      200 {object} types.Job "Job after the audio stage"
// @Failure      400 {object} types.ErrorResponse "Unmapped speaker, invalid script, or unknown provider"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Job not found or has no script"
// @Failure      409 {object} types.ErrorResponse "Audio generation already in progress"
// @Security     BearerAuth
// @Router       /api/v1/podcasts/{id}/audio [post]
func PostAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.GenerateAudioRequest
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

		job, err := deps.Podcasts.GenerateAudio(c.Request.Context(), userID, jobID, podcasts.GenerateAudioRequest{
			VoiceMap: req.VoiceMap,
			Script:   req.Script,
		})
		if err != nil {
			types.RespondWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromJob(job))
	}
}
