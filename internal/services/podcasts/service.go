package podcasts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/internal/services/artifacts"
	"github.com/podforge/podforge-api/internal/services/audio"
	"github.com/podforge/podforge-api/internal/services/speech"
	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

const (
	// DefaultRequestBudget bounds one synchronous generation call end to end
	DefaultRequestBudget = 5 * time.Minute

	// List pagination bounds
	DefaultListLimit = 20
	MaxListLimit     = 100

	// terminalWriteTimeout bounds the failure write that must land even when
	// the stage budget is exhausted
	terminalWriteTimeout = 10 * time.Second
)

type service struct {
	repo        Repository
	synthesizer ScriptSynthesizer
	generators  map[string]SpeechGenerator
	defaultTTS  string
	stitcher    AudioStitcher
	store       artifacts.Store
	budget      time.Duration
}

// ServiceOption configures the orchestrator service
type ServiceOption func(*service)

// WithRequestBudget sets the wall-clock budget for one generation call
func WithRequestBudget(budget time.Duration) ServiceOption {
	return func(s *service) {
		if budget > 0 {
			s.budget = budget
		}
	}
}

// NewService creates the podcast job orchestrator. generators maps TTS
// provider names to their speech generators; defaultProvider is used when job
// options do not name one.
func NewService(
	repo Repository,
	synthesizer ScriptSynthesizer,
	generators map[string]SpeechGenerator,
	defaultProvider string,
	stitcher AudioStitcher,
	store artifacts.Store,
	opts ...ServiceOption,
) Service {
	s := &service{
		repo:        repo,
		synthesizer: synthesizer,
		generators:  generators,
		defaultTTS:  defaultProvider,
		stitcher:    stitcher,
		store:       store,
		budget:      DefaultRequestBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateScript creates a job and runs the script stage synchronously. The
// returned record is terminal: complete with a script attached, or failed
// with the synthesis error captured on the job.
func (s *service) GenerateScript(ctx context.Context, userID string, req GenerateScriptRequest) (*models.PodcastJob, error) {
	if strings.TrimSpace(req.SourceContent) == "" {
		return nil, apperrors.MissingFieldError("sourceContent")
	}

	job := &models.PodcastJob{
		UserID:    userID,
		ContentID: req.ContentID,
		Status:    models.JobStatusPending,
		Options:   req.Options,
	}
	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, apperrors.DatabaseError("create job", err)
	}

	runCtx, cancel := s.stageContext(ctx)
	defer cancel()

	s.runScriptStage(runCtx, job.ID, req.SourceContent, job.Options)

	return s.fetchAfterStage(runCtx, job.ID, userID)
}

// GenerateAudio validates, claims, and runs the audio stage synchronously
// against an existing job. Precondition failures (missing job or script, bad
// voice map, a run already in flight) return without mutating the record; once
// the claim lands the job always finishes in a terminal state.
func (s *service) GenerateAudio(ctx context.Context, userID string, jobID uint, req GenerateAudioRequest) (*models.PodcastJob, error) {
	job, err := s.repo.GetJob(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, apperrors.NotFound("podcast job", jobID)
		}
		return nil, apperrors.DatabaseError("get job", err)
	}

	if !job.HasScript() {
		return nil, apperrors.NotFound("podcast script", jobID)
	}

	// The script that will be spoken: the caller's edit when supplied,
	// otherwise the persisted one
	target := job.Script.AsScript()
	var edited *models.ScriptData
	if req.Script != nil {
		if err := validateEditedScript(req.Script); err != nil {
			return nil, err
		}
		data := models.ScriptData(*req.Script)
		edited = &data
		target = req.Script
	}

	if err := speech.ValidateVoiceMap(target.Segments, req.VoiceMap); err != nil {
		return nil, err
	}

	generator, err := s.generatorFor(job.Options.TTSProvider)
	if err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimForAudio(ctx, jobID, userID, edited)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobConflict):
			return nil, apperrors.Conflict("podcast job", "audio generation already in flight")
		case errors.Is(err, ErrJobNoScript):
			return nil, apperrors.NotFound("podcast script", jobID)
		case errors.Is(err, ErrJobNotFound):
			return nil, apperrors.NotFound("podcast job", jobID)
		default:
			return nil, apperrors.DatabaseError("claim job", err)
		}
	}

	runCtx, cancel := s.stageContext(ctx)
	defer cancel()

	s.runAudioStage(runCtx, claimed, target.Segments, req.VoiceMap, generator)

	return s.fetchAfterStage(runCtx, jobID, userID)
}

// GetJob returns the owner's job record
func (s *service) GetJob(ctx context.Context, userID string, jobID uint) (*models.PodcastJob, error) {
	job, err := s.repo.GetJob(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, apperrors.NotFound("podcast job", jobID)
		}
		return nil, apperrors.DatabaseError("get job", err)
	}
	return job, nil
}

// ExportScript renders the job's persisted script in the requested format.
// The export reads only the script, so it works in any job state that has one.
func (s *service) ExportScript(ctx context.Context, userID string, jobID uint, format script.ExportFormat) (string, error) {
	job, err := s.GetJob(ctx, userID, jobID)
	if err != nil {
		return "", err
	}
	if !job.HasScript() {
		return "", apperrors.NotFound("podcast script", jobID)
	}

	out, err := script.Export(job.Script.AsScript(), format)
	if err != nil {
		return "", apperrors.ValidationError("format", err.Error())
	}
	return out, nil
}

// ListJobs returns the owner's jobs, newest first
func (s *service) ListJobs(ctx context.Context, userID string, status string, limit, offset int) ([]*models.PodcastJob, error) {
	var filter models.JobStatus
	if status != "" {
		filter = models.JobStatus(status)
		switch filter {
		case models.JobStatusPending, models.JobStatusGeneratingScript,
			models.JobStatusGeneratingAudio, models.JobStatusStitching,
			models.JobStatusComplete, models.JobStatusFailed:
		default:
			return nil, apperrors.ValidationError("status", fmt.Sprintf("unknown status %q", status))
		}
	}

	if limit <= 0 {
		limit = DefaultListLimit
	} else if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	jobs, err := s.repo.ListJobs(ctx, userID, filter, limit, offset)
	if err != nil {
		return nil, apperrors.DatabaseError("list jobs", err)
	}
	return jobs, nil
}

// DeleteJob removes the owner's job and cleans up its audio artifact. The
// artifact delete is best effort; the record is already gone when it runs.
func (s *service) DeleteJob(ctx context.Context, userID string, jobID uint) error {
	job, err := s.repo.GetJob(ctx, jobID, userID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return apperrors.NotFound("podcast job", jobID)
		}
		return apperrors.DatabaseError("get job", err)
	}

	if err := s.repo.DeleteJob(ctx, jobID, userID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return apperrors.NotFound("podcast job", jobID)
		}
		return apperrors.DatabaseError("delete job", err)
	}

	if job.AudioKey != "" {
		if err := s.store.Delete(ctx, job.AudioKey); err != nil {
			log.Printf("[WARNING] Failed to delete artifact %s for job %d: %v", job.AudioKey, jobID, err)
		}
	}

	log.Printf("[INFO] Deleted podcast job %d", jobID)
	return nil
}

// runScriptStage drives one synchronous script synthesis pass. Every exit
// path leaves the job terminal: complete with the script attached, or failed
// with the error captured.
func (s *service) runScriptStage(ctx context.Context, jobID uint, sourceContent string, options models.PodcastOptions) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Panic generating script for job %d: %v", jobID, r)
			s.failJob(jobID, fmt.Sprintf("script generation panic: %v", r))
		}
	}()

	if err := s.repo.BeginScript(ctx, jobID); err != nil {
		log.Printf("[ERROR] Failed to start script stage for job %d: %v", jobID, err)
		s.failJob(jobID, fmt.Sprintf("starting script stage: %v", err))
		return
	}

	podcastScript, err := s.synthesizer.GenerateScript(ctx, sourceContent, options)
	if err != nil {
		log.Printf("[ERROR] Script synthesis failed for job %d: %v", jobID, err)
		s.failJob(jobID, err.Error())
		return
	}

	data := models.ScriptData(*podcastScript)
	if err := s.repo.CompleteScript(ctx, jobID, &data); err != nil {
		log.Printf("[ERROR] Failed to persist script for job %d: %v", jobID, err)
		s.failJob(jobID, fmt.Sprintf("persisting script: %v", err))
		return
	}

	log.Printf("[INFO] Job %d script complete: %q, %d segments", jobID, podcastScript.Title, len(podcastScript.Segments))
}

// runAudioStage drives one synchronous audio pass over a claimed job:
// generate → stitch → upload → complete, failing the job on the first error.
func (s *service) runAudioStage(ctx context.Context, job *models.PodcastJob, segments []script.Segment, voiceMap map[string]string, generator SpeechGenerator) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Panic generating audio for job %d: %v", job.ID, r)
			s.failJob(job.ID, fmt.Sprintf("audio generation panic: %v", r))
		}
	}()

	onProgress := func(percent int) {
		if err := s.repo.UpdateProgress(ctx, job.ID, models.JobStatusGeneratingAudio, percent); err != nil {
			log.Printf("[WARNING] Failed to persist progress %d for job %d: %v", percent, job.ID, err)
		}
	}

	buffers, err := generator.Generate(ctx, segments, voiceMap, onProgress)
	if err != nil {
		log.Printf("[ERROR] Audio generation failed for job %d: %v", job.ID, err)
		s.failJob(job.ID, err.Error())
		return
	}

	if err := s.repo.BeginStitching(ctx, job.ID); err != nil {
		log.Printf("[ERROR] Failed to start stitching for job %d: %v", job.ID, err)
		s.failJob(job.ID, fmt.Sprintf("starting stitching: %v", err))
		return
	}

	data, duration, err := s.stitcher.Stitch(buffers)
	if err != nil {
		log.Printf("[ERROR] Stitching failed for job %d: %v", job.ID, err)
		s.failJob(job.ID, err.Error())
		return
	}

	key := artifactKey(job.ID)
	url, err := s.store.Put(ctx, key, data, audio.ContentTypeMP3)
	if err != nil {
		log.Printf("[ERROR] Artifact upload failed for job %d: %v", job.ID, err)
		s.failJob(job.ID, fmt.Sprintf("uploading audio: %v", err))
		return
	}

	if err := s.repo.CompleteAudio(ctx, job.ID, url, key, duration); err != nil {
		log.Printf("[ERROR] Failed to complete audio stage for job %d: %v", job.ID, err)
		s.failJob(job.ID, fmt.Sprintf("completing audio stage: %v", err))
		return
	}

	// A retried run supersedes the previous artifact
	if job.AudioKey != "" && job.AudioKey != key {
		if err := s.store.Delete(ctx, job.AudioKey); err != nil {
			log.Printf("[WARNING] Failed to delete superseded artifact %s: %v", job.AudioKey, err)
		}
	}

	log.Printf("[INFO] Job %d audio complete: %.1fs at %s", job.ID, duration, url)
}

// stageContext detaches a generation stage from caller cancellation and
// applies the request budget. A closed client connection must not strand the
// job in flight; the budget is the only cancellation source.
func (s *service) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.budget)
}

// fetchAfterStage reloads the job once a stage has finished so the caller
// sees the terminal record, including a failed one.
func (s *service) fetchAfterStage(ctx context.Context, jobID uint, userID string) (*models.PodcastJob, error) {
	job, err := s.repo.GetJob(ctx, jobID, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("get job", err)
	}
	return job, nil
}

// failJob writes the terminal failed status under its own deadline so the
// write lands even when the stage budget is exhausted
func (s *service) failJob(jobID uint, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()

	if err := s.repo.FailJob(ctx, jobID, message); err != nil {
		log.Printf("[ERROR] Failed to mark job %d failed: %v", jobID, err)
	}
}

// generatorFor resolves the speech generator for a job's TTS provider option
func (s *service) generatorFor(provider string) (SpeechGenerator, error) {
	if provider == "" {
		provider = s.defaultTTS
	}
	generator, ok := s.generators[provider]
	if !ok {
		return nil, apperrors.ValidationError("ttsProvider", fmt.Sprintf("provider %q is not configured", provider))
	}
	return generator, nil
}

// validateEditedScript checks a caller-supplied script before it replaces the
// persisted one
func validateEditedScript(edited *script.PodcastScript) error {
	if len(edited.Segments) == 0 {
		return apperrors.ValidationError("script", "must contain at least one segment")
	}
	for i, segment := range edited.Segments {
		if strings.TrimSpace(segment.Speaker) == "" {
			return apperrors.ValidationError("script", fmt.Sprintf("segment %d has no speaker", i+1))
		}
		if strings.TrimSpace(segment.Text) == "" {
			return apperrors.ValidationError("script", fmt.Sprintf("segment %d has no text", i+1))
		}
	}
	return nil
}

// artifactKey builds a collision-free storage key for a job's stitched audio
func artifactKey(jobID uint) string {
	return fmt.Sprintf("podcasts/%d/%s.mp3", jobID, uuid.NewString())
}
