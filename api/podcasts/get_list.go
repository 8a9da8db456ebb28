package podcasts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/services/podcasts"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
)

// GetList lists the caller's jobs, newest first
// @Summary      List podcast jobs
// @Description  The caller's jobs with optional status filter and pagination
// @Tags         podcasts
// @Produce      json
// @Param        status query string false "Filter by job status" Enums(pending, generating_script, generating_audio, stitching, complete, failed)
// @Param        limit query int false "Page size, defaults to 20, capped at 100"
// @Param        offset query int false "Rows to skip"
// @Success      200 {object} types.JobListResponse "Jobs newest first"
// @Failure      400 {object} types.ErrorResponse "Unknown status or bad pagination value"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Security     BearerAuth
// @Router       /api/v1/podcasts [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		limit, ok := parseQueryInt(c, "limit", podcasts.DefaultListLimit)
		if !ok {
			return
		}
		offset, ok := parseQueryInt(c, "offset", 0)
		if !ok {
			return
		}
		if limit <= 0 {
			limit = podcasts.DefaultListLimit
		}
		if limit > podcasts.MaxListLimit {
			limit = podcasts.MaxListLimit
		}
		if offset < 0 {
			offset = 0
		}

		jobs, err := deps.Podcasts.ListJobs(c.Request.Context(), userID, c.Query("status"), limit, offset)
		if err != nil {
			types.RespondWithError(c, err)
			return
		}

		dtos := types.FromJobList(jobs)
		c.JSON(http.StatusOK, types.JobListResponse{
			Jobs:   dtos,
			Count:  len(dtos),
			Limit:  limit,
			Offset: offset,
		})
	}
}

func parseQueryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		types.RespondWithError(c, apperrors.ValidationError(name, "must be an integer"))
		return 0, false
	}
	return value, true
}
