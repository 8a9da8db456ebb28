package podcasts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/api/types"
	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/internal/services/podcasts"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

func postAudio(router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPostAudio(t *testing.T) {
	voiceMap := map[string]string{"Alex": "alloy", "Jamie": "nova"}

	t.Run("returns job with audio", func(t *testing.T) {
		var gotID uint
		var gotReq podcasts.GenerateAudioRequest
		svc := &stubService{
			generateAudio: func(_ context.Context, userID string, jobID uint, req podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				assert.Equal(t, testUserID, userID)
				gotID = jobID
				gotReq = req
				job := completeJob(jobID)
				job.AudioURL = "http://files.local/podcasts/7/abc.mp3"
				job.Duration = 12.5
				return job, nil
			},
		}
		router := setupRouter(svc)

		w := postAudio(router, "/api/v1/podcasts/7/audio", types.GenerateAudioRequest{VoiceMap: voiceMap})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), gotID)
		assert.Equal(t, voiceMap, gotReq.VoiceMap)
		assert.Nil(t, gotReq.Script)

		var resp types.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "http://files.local/podcasts/7/abc.mp3", resp.AudioURL)
		assert.Equal(t, 12.5, resp.Duration)
	})

	t.Run("edited script forwarded", func(t *testing.T) {
		var gotReq podcasts.GenerateAudioRequest
		svc := &stubService{
			generateAudio: func(_ context.Context, _ string, jobID uint, req podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				gotReq = req
				return completeJob(jobID), nil
			},
		}
		router := setupRouter(svc)

		edited := &script.PodcastScript{
			Title:    "Edited",
			Segments: []script.Segment{{Speaker: "Alex", Text: "Revised line."}},
		}
		w := postAudio(router, "/api/v1/podcasts/7/audio", types.GenerateAudioRequest{
			VoiceMap: map[string]string{"Alex": "alloy"},
			Script:   edited,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotReq.Script)
		assert.Equal(t, "Edited", gotReq.Script.Title)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		svc := &stubService{
			generateAudio: func(context.Context, string, uint, podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				return nil, apperrors.Conflict("podcast job", "audio generation already in progress")
			},
		}
		router := setupRouter(svc)

		w := postAudio(router, "/api/v1/podcasts/7/audio", types.GenerateAudioRequest{VoiceMap: voiceMap})

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CONFLICT", resp.Error)
	})

	t.Run("missing job maps to 404", func(t *testing.T) {
		svc := &stubService{
			generateAudio: func(context.Context, string, uint, podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				return nil, apperrors.NotFound("podcast job", 99)
			},
		}
		router := setupRouter(svc)

		w := postAudio(router, "/api/v1/podcasts/99/audio", types.GenerateAudioRequest{VoiceMap: voiceMap})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unmapped speaker maps to 400", func(t *testing.T) {
		svc := &stubService{
			generateAudio: func(context.Context, string, uint, podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				return nil, apperrors.ValidationError("voiceMap", "no voice mapped for speaker \"Jamie\"")
			},
		}
		router := setupRouter(svc)

		w := postAudio(router, "/api/v1/podcasts/7/audio", types.GenerateAudioRequest{
			VoiceMap: map[string]string{"Alex": "alloy"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing voice map rejected before service call", func(t *testing.T) {
		called := false
		svc := &stubService{
			generateAudio: func(context.Context, string, uint, podcasts.GenerateAudioRequest) (*models.PodcastJob, error) {
				called = true
				return nil, nil
			},
		}
		router := setupRouter(svc)

		w := postAudio(router, "/api/v1/podcasts/7/audio", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		router := setupRouter(&stubService{})

		w := postAudio(router, "/api/v1/podcasts/abc/audio", types.GenerateAudioRequest{VoiceMap: voiceMap})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
