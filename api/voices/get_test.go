package voices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/services/speech"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deps := &types.Dependencies{DefaultProvider: speech.ProviderOpenAI}
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/voices"), deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/voices", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.VoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, speech.ProviderOpenAI, resp.DefaultProvider)
	require.Contains(t, resp.Providers, speech.ProviderOpenAI)
	require.Contains(t, resp.Providers, speech.ProviderGoogle)

	ids := make([]string, 0)
	for _, v := range resp.Providers[speech.ProviderOpenAI] {
		ids = append(ids, v.ID)
	}
	assert.Contains(t, ids, "alloy")
	assert.Contains(t, ids, "nova")
}
