package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
)

// DeleteJob removes a job and its stored audio artifact
// @Summary      Delete podcast job
// @Description  Delete an owned job; the stored audio artifact is cleaned up best effort
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} object{message=string} "Job deleted"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Security     BearerAuth
// @Router       /api/v1/podcasts/{id} [delete]
func DeleteJob(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		userID := c.GetString("user_id")

		if err := deps.Podcasts.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
			types.RespondWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Podcast job deleted"})
	}
}
