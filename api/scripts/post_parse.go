package scripts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/api/types"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

// PostParse parses raw script text into speaker-labeled segments
// @Summary      Parse script text
// @Description  Split raw text into speaker turns, detecting single-narrator vs two-host mode, with a word-count duration estimate
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        request body types.ParseScriptRequest true "Script text with optional mode override and speaker names"
// @Success      200 {object} types.ParseScriptResponse "Parsed segments"
// @Failure      400 {object} types.ErrorResponse "Invalid request body or mode"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Security     BearerAuth
// @Router       /api/v1/scripts/parse [post]
func PostParse(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ParseScriptRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		var (
			result *script.ParseResult
			err    error
		)
		switch strings.ToLower(strings.TrimSpace(req.Mode)) {
		case "":
			result, err = deps.Parser.Parse(req.Text)
		case string(script.ModeSingle):
			result, err = deps.Parser.ParseWithMode(req.Text, script.ModeSingle, req.Speaker1Name, req.Speaker2Name)
		case string(script.ModePodcast):
			result, err = deps.Parser.ParseWithMode(req.Text, script.ModePodcast, req.Speaker1Name, req.Speaker2Name)
		default:
			types.RespondWithError(c, apperrors.ValidationError("mode", "must be 'single' or 'podcast'"))
			return
		}
		if err != nil {
			types.RespondWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromParseResult(result))
	}
}
