package podcasts

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

// GetJob fetches one job, or exports its script when a format is requested
// @Summary      Get podcast job
// @Description  Job record for polling; pass format=json|txt|srt to download the persisted script instead
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        format query string false "Script export format" Enums(json, txt, srt)
// @Success      200 {object} types.Job "Job record (or export body when format is set)"
// @Failure      400 {object} types.ErrorResponse "Unknown export format"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Job not found, or no script to export"
// @Security     BearerAuth
// @Router       /api/v1/podcasts/{id} [get]
func GetJob(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		userID := c.GetString("user_id")

		if formatStr := c.Query("format"); formatStr != "" {
			format, err := script.ParseExportFormat(formatStr)
			if err != nil {
				types.RespondWithError(c, apperrors.ValidationError("format", "must be json, txt, or srt"))
				return
			}

			content, err := deps.Podcasts.ExportScript(c.Request.Context(), userID, jobID, format)
			if err != nil {
				types.RespondWithError(c, err)
				return
			}

			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=podcast-%d.%s", jobID, format))
			c.Data(http.StatusOK, format.ContentType(), []byte(content))
			return
		}

		job, err := deps.Podcasts.GetJob(c.Request.Context(), userID, jobID)
		if err != nil {
			types.RespondWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromJob(job))
	}
}
