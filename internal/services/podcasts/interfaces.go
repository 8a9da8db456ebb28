package podcasts

import (
	"context"
	"errors"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/internal/services/speech"
	"github.com/podforge/podforge-api/pkg/script"
)

// Repository errors
var (
	ErrJobNotFound = errors.New("podcast job not found")
	ErrJobConflict = errors.New("audio generation already in flight")
	ErrJobNoScript = errors.New("podcast job has no script")
)

// Repository defines the persistence interface for podcast jobs. Every state
// transition is a conditional update keyed on the current status, so
// concurrent requests can never move a job backwards or claim it twice.
type Repository interface {
	// Create operations
	CreateJob(ctx context.Context, job *models.PodcastJob) error

	// Read operations
	GetJob(ctx context.Context, id uint, userID string) (*models.PodcastJob, error)
	ListJobs(ctx context.Context, userID string, status models.JobStatus, limit, offset int) ([]*models.PodcastJob, error)

	// Script stage transitions
	BeginScript(ctx context.Context, id uint) error
	CompleteScript(ctx context.Context, id uint, data *models.ScriptData) error

	// Audio stage transitions. ClaimForAudio is the concurrency guard: one
	// atomic conditional update that moves the job into generating_audio and
	// persists edited segments, or reports why it could not.
	ClaimForAudio(ctx context.Context, id uint, userID string, edited *models.ScriptData) (*models.PodcastJob, error)
	UpdateProgress(ctx context.Context, id uint, expected models.JobStatus, progress int) error
	BeginStitching(ctx context.Context, id uint) error
	CompleteAudio(ctx context.Context, id uint, audioURL, audioKey string, duration float64) error

	// FailJob moves any in-flight job to failed with a bounded error message.
	// Previously persisted script and audio fields are left untouched.
	FailJob(ctx context.Context, id uint, message string) error

	// Delete operations
	DeleteJob(ctx context.Context, id uint, userID string) error
}

// ScriptSynthesizer produces a structured two-host script from source content
type ScriptSynthesizer interface {
	GenerateScript(ctx context.Context, sourceContent string, options models.PodcastOptions) (*script.PodcastScript, error)
}

// SpeechGenerator fans segments out to a TTS backend and returns per-segment
// audio buffers in script order
type SpeechGenerator interface {
	Generate(ctx context.Context, segments []script.Segment, voiceMap map[string]string, onProgress speech.ProgressFunc) ([][]byte, error)
}

// AudioStitcher concatenates ordered segment audio into one artifact and
// measures its real duration
type AudioStitcher interface {
	Stitch(buffers [][]byte) ([]byte, float64, error)
}

// GenerateScriptRequest carries the inputs of a script generation call
type GenerateScriptRequest struct {
	SourceContent string
	ContentID     string
	Options       models.PodcastOptions
}

// GenerateAudioRequest carries the inputs of an audio generation call. Script
// is optional; when present it replaces the job's persisted script before
// synthesis starts.
type GenerateAudioRequest struct {
	VoiceMap map[string]string
	Script   *script.PodcastScript
}

// Service defines the orchestration interface over the generation pipeline.
// Both generation operations run synchronously inside the calling request and
// always leave the job in a terminal state.
type Service interface {
	GenerateScript(ctx context.Context, userID string, req GenerateScriptRequest) (*models.PodcastJob, error)
	GenerateAudio(ctx context.Context, userID string, jobID uint, req GenerateAudioRequest) (*models.PodcastJob, error)
	GetJob(ctx context.Context, userID string, jobID uint) (*models.PodcastJob, error)
	ExportScript(ctx context.Context, userID string, jobID uint, format script.ExportFormat) (string, error)
	ListJobs(ctx context.Context, userID string, status string, limit, offset int) ([]*models.PodcastJob, error)
	DeleteJob(ctx context.Context, userID string, jobID uint) error
}
