package scripts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/pkg/script"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	deps := &types.Dependencies{Parser: script.NewParser()}
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/scripts"), deps)
	return router
}

func postParse(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/scripts/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPostParse(t *testing.T) {
	router := setupRouter()

	t.Run("detects two-host dialogue", func(t *testing.T) {
		w := postParse(t, router, types.ParseScriptRequest{
			Text: "**Alex:** Hello.\n**Jamie:** Hi there!",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.ParseScriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "podcast", resp.Mode)
		assert.Equal(t, []string{"Alex", "Jamie"}, resp.Speakers)
		require.Len(t, resp.Segments, 2)
		assert.Equal(t, "Hello.", resp.Segments[0].Text)
		assert.Equal(t, 3, resp.EstimatedDurationSeconds)
		assert.Equal(t, "0:03", resp.EstimatedDurationFormatted)
	})

	t.Run("unlabeled text falls back to narrator", func(t *testing.T) {
		w := postParse(t, router, types.ParseScriptRequest{
			Text: "Just a plain paragraph with no speaker labels at all.",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.ParseScriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "single", resp.Mode)
		assert.Equal(t, []string{script.DefaultNarrator}, resp.Speakers)
		require.Len(t, resp.Segments, 1)
	})

	t.Run("forced podcast mode renames speakers", func(t *testing.T) {
		w := postParse(t, router, types.ParseScriptRequest{
			Text:         "Sam: Welcome back.\nCasey: Glad to be here.",
			Mode:         "podcast",
			Speaker1Name: "Alex",
			Speaker2Name: "Jamie",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.ParseScriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, "podcast", resp.Mode)
		assert.Equal(t, []string{"Alex", "Jamie"}, resp.Speakers)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		w := postParse(t, router, types.ParseScriptRequest{
			Text: "Alex: Hello.",
			Mode: "interview",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, types.StatusError, resp.Status)
	})

	t.Run("missing text rejected", func(t *testing.T) {
		w := postParse(t, router, map[string]string{"mode": "single"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/scripts/parse", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
