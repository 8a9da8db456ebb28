package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/database"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func() *types.Dependencies
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "healthy with database",
			setupDeps: func() *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				return &types.Dependencies{
					DB:              db,
					TTSProviders:    []string{"openai"},
					DefaultProvider: "openai",
					StorageBackend:  "filesystem",
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"status": "ok",
				"database": map[string]interface{}{
					"status": "healthy",
				},
			},
		},
		{
			name: "healthy without database",
			setupDeps: func() *types.Dependencies {
				return &types.Dependencies{StorageBackend: "filesystem"}
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"status": "ok",
				"database": map[string]interface{}{
					"status": "not configured",
				},
			},
		},
		{
			name: "degraded with closed database",
			setupDeps: func() *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)

				sqlDB, err := db.DB.DB()
				require.NoError(t, err)
				sqlDB.Close()

				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: map[string]interface{}{
				"status": "degraded",
				"database": map[string]interface{}{
					"status": "unhealthy",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			deps := tt.setupDeps()
			Get(deps)(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedBody["status"], response["status"])
			assert.NotEmpty(t, response["timestamp"])

			expectedDB := tt.expectedBody["database"].(map[string]interface{})
			dbStatus, ok := response["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, expectedDB["status"], dbStatus["status"])

			// Cleanup
			if deps.DB != nil && deps.DB.DB != nil {
				if sqlDB, err := deps.DB.DB.DB(); err == nil {
					sqlDB.Close()
				}
			}
		})
	}
}

func TestGet_ReportsTTSAndStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	deps := &types.Dependencies{
		TTSProviders:    []string{"openai", "google"},
		DefaultProvider: "openai",
		StorageBackend:  "s3",
	}
	Get(deps)(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	tts, ok := response["tts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "openai", tts["default"])
	assert.ElementsMatch(t, []interface{}{"openai", "google"}, tts["providers"])

	storage, ok := response["storage"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "s3", storage["backend"])
}

func TestGetDatabaseStatus(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		status := getDatabaseStatus(&types.Dependencies{})
		assert.Equal(t, "not configured", status["status"])
	})

	t.Run("healthy database", func(t *testing.T) {
		db, err := database.Initialize(":memory:", false)
		require.NoError(t, err)
		defer func() {
			if sqlDB, err := db.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}()

		status := getDatabaseStatus(&types.Dependencies{DB: db})
		assert.Equal(t, "healthy", status["status"])
	})
}
