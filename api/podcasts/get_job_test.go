package podcasts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/models"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

func getPath(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetJob(t *testing.T) {
	t.Run("returns job record", func(t *testing.T) {
		svc := &stubService{
			getJob: func(_ context.Context, userID string, jobID uint) (*models.PodcastJob, error) {
				assert.Equal(t, testUserID, userID)
				return completeJob(jobID), nil
			},
		}
		router := setupRouter(svc)

		w := getPath(router, "/api/v1/podcasts/5")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(5), resp.ID)
		assert.Equal(t, "complete", resp.Status)
		require.NotNil(t, resp.Script)
		assert.Len(t, resp.Script.Segments, 2)
	})

	t.Run("missing job maps to 404", func(t *testing.T) {
		svc := &stubService{
			getJob: func(context.Context, string, uint) (*models.PodcastJob, error) {
				return nil, apperrors.NotFound("podcast job", 5)
			},
		}
		router := setupRouter(svc)

		w := getPath(router, "/api/v1/podcasts/5")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("txt export returns plain text", func(t *testing.T) {
		svc := &stubService{
			exportScript: func(_ context.Context, _ string, jobID uint, format script.ExportFormat) (string, error) {
				assert.Equal(t, uint(5), jobID)
				assert.Equal(t, script.FormatTXT, format)
				return "Alex: Hello.\nJamie: Hi there!\n", nil
			},
		}
		router := setupRouter(svc)

		w := getPath(router, "/api/v1/podcasts/5?format=txt")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alex: Hello.\nJamie: Hi there!\n", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "attachment; filename=podcast-5.txt", w.Header().Get("Content-Disposition"))
	})

	t.Run("srt export sets subtitle content type", func(t *testing.T) {
		svc := &stubService{
			exportScript: func(_ context.Context, _ string, _ uint, format script.ExportFormat) (string, error) {
				assert.Equal(t, script.FormatSRT, format)
				return "1\n00:00:00,000 --> 00:00:01,000\nAlex: Hello.\n", nil
			},
		}
		router := setupRouter(svc)

		w := getPath(router, "/api/v1/podcasts/5?format=srt")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/x-subrip")
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		router := setupRouter(&stubService{})

		w := getPath(router, "/api/v1/podcasts/5?format=pdf")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION", resp.Error)
	})

	t.Run("export without script maps to 404", func(t *testing.T) {
		svc := &stubService{
			exportScript: func(context.Context, string, uint, script.ExportFormat) (string, error) {
				return "", apperrors.NotFound("podcast script", 5)
			},
		}
		router := setupRouter(svc)

		w := getPath(router, "/api/v1/podcasts/5?format=json")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
