package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/internal/services/speech"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

func TestFromJob(t *testing.T) {
	t.Run("nil job", func(t *testing.T) {
		assert.Nil(t, FromJob(nil))
	})

	t.Run("timestamps normalized to UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*60*60)
		started := time.Date(2025, 6, 1, 9, 30, 0, 0, est)

		job := &models.PodcastJob{
			UserID:   "user-1",
			Status:   models.JobStatusGeneratingScript,
			Progress: 10,
		}
		job.ID = 7
		job.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, est)
		job.StartedAt = &started

		dto := FromJob(job)
		require.NotNil(t, dto)

		assert.Equal(t, uint(7), dto.ID)
		assert.Equal(t, "generating_script", dto.Status)
		assert.Equal(t, time.UTC, dto.CreatedAt.Location())
		assert.Equal(t, 14, dto.CreatedAt.Hour())
		require.NotNil(t, dto.StartedAt)
		assert.Equal(t, time.UTC, dto.StartedAt.Location())
		assert.Nil(t, dto.CompletedAt)
	})

	t.Run("script included when present", func(t *testing.T) {
		job := &models.PodcastJob{
			UserID: "user-1",
			Status: models.JobStatusComplete,
			Script: &models.ScriptData{
				Title: "Test Episode",
				Segments: []script.Segment{
					{Speaker: "Alex", Text: "Hello."},
				},
			},
		}

		dto := FromJob(job)
		require.NotNil(t, dto.Script)
		assert.Equal(t, "Test Episode", dto.Script.Title)
		require.Len(t, dto.Script.Segments, 1)
		assert.Equal(t, "Alex", dto.Script.Segments[0].Speaker)
	})

	t.Run("empty fields omitted from JSON", func(t *testing.T) {
		job := &models.PodcastJob{
			UserID:   "user-1",
			Status:   models.JobStatusPending,
			Progress: 0,
		}

		data, err := json.Marshal(FromJob(job))
		require.NoError(t, err)

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &fields))

		assert.NotContains(t, fields, "error")
		assert.NotContains(t, fields, "audioUrl")
		assert.NotContains(t, fields, "script")
		assert.NotContains(t, fields, "startedAt")
		assert.NotContains(t, fields, "completedAt")
		assert.Contains(t, fields, "status")
		assert.Contains(t, fields, "progress")
		assert.Contains(t, fields, "createdAt")
	})

	t.Run("failure fields present when set", func(t *testing.T) {
		job := &models.PodcastJob{
			UserID:   "user-1",
			Status:   models.JobStatusFailed,
			Progress: 10,
			Error:    "synthesis failed",
		}

		data, err := json.Marshal(FromJob(job))
		require.NoError(t, err)

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &fields))

		assert.Equal(t, "synthesis failed", fields["error"])
		assert.Equal(t, "failed", fields["status"])
	})
}

func TestFromJobList(t *testing.T) {
	jobs := []*models.PodcastJob{
		{UserID: "user-1", Status: models.JobStatusComplete},
		{UserID: "user-1", Status: models.JobStatusFailed},
	}
	jobs[0].ID = 1
	jobs[1].ID = 2

	dtos := FromJobList(jobs)
	require.Len(t, dtos, 2)
	assert.Equal(t, uint(1), dtos[0].ID)
	assert.Equal(t, "complete", dtos[0].Status)
	assert.Equal(t, uint(2), dtos[1].ID)

	assert.Empty(t, FromJobList(nil))
}

func TestFromParseResult(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		assert.Nil(t, FromParseResult(nil))
	})

	t.Run("attaches duration estimate", func(t *testing.T) {
		result := &script.ParseResult{
			Mode:     script.ModePodcast,
			Speakers: []string{"Alex", "Jamie"},
			Segments: []script.Segment{
				{Speaker: "Alex", Text: "Hello there everyone."},
				{Speaker: "Jamie", Text: "I am very glad to be back on the show."},
			},
		}

		resp := FromParseResult(result)
		require.NotNil(t, resp)

		assert.Equal(t, "podcast", resp.Mode)
		assert.Equal(t, []string{"Alex", "Jamie"}, resp.Speakers)
		assert.Len(t, resp.Segments, 2)
		// 4 words -> 2s, 11 words -> 5s at 150 wpm
		assert.Equal(t, 7, resp.EstimatedDurationSeconds)
		assert.Equal(t, "0:07", resp.EstimatedDurationFormatted)
	})
}

func TestFromVoiceCatalog(t *testing.T) {
	catalog := map[string][]speech.Voice{
		"openai": {
			{ID: "alloy", Name: "Alloy", Description: "Neutral, balanced delivery"},
		},
	}

	result := FromVoiceCatalog(catalog)
	require.Contains(t, result, "openai")
	require.Len(t, result["openai"], 1)
	assert.Equal(t, "alloy", result["openai"][0].ID)
	assert.Equal(t, "Alloy", result["openai"][0].Name)
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedType string
	}{
		{
			name:         "not found",
			err:          apperrors.NotFound("job", 42),
			expectedCode: http.StatusNotFound,
			expectedType: "NOT_FOUND",
		},
		{
			name:         "conflict",
			err:          apperrors.Conflict("job", "audio generation already in progress"),
			expectedCode: http.StatusConflict,
			expectedType: "CONFLICT",
		},
		{
			name:         "validation",
			err:          apperrors.ValidationError("voiceMap", "no voice mapped for speaker"),
			expectedCode: http.StatusBadRequest,
			expectedType: "VALIDATION",
		},
		{
			name:         "missing field",
			err:          apperrors.MissingFieldError("sourceContent"),
			expectedCode: http.StatusBadRequest,
			expectedType: "MISSING_FIELD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/test", nil)

			RespondWithError(c, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.expectedType, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}

	t.Run("unclassified error is opaque 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/test", nil)

		RespondWithError(c, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "internal server error", resp.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestParseUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		value, ok := ParseUintParam(c, "id")
		assert.True(t, ok)
		assert.Equal(t, uint(42), value)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-number"}}

		_, ok := ParseUintParam(c, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
