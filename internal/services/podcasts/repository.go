package podcasts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/podforge/podforge-api/internal/models"
)

// Progress checkpoints persisted by the orchestrator. The speech generator
// reports its own start/midpoint/synthesized checkpoints between the claim
// and stitching.
const (
	ProgressClaimed       = 5
	ProgressScriptStarted = 10
	ProgressStitching     = 85
	ProgressComplete      = 100
)

// repository implements Repository on gorm
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new podcast job repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateJob creates a new podcast job
func (r *repository) CreateJob(ctx context.Context, job *models.PodcastJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJob retrieves a job by ID scoped to its owner. Other users' jobs are
// indistinguishable from missing ones.
func (r *repository) GetJob(ctx context.Context, id uint, userID string) (*models.PodcastJob, error) {
	var job models.PodcastJob
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return &job, nil
}

// ListJobs retrieves the owner's jobs, newest first, optionally filtered by
// status. A zero limit means no limit.
func (r *repository) ListJobs(ctx context.Context, userID string, status models.JobStatus, limit, offset int) ([]*models.PodcastJob, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var jobs []*models.PodcastJob
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// BeginScript moves a freshly created job into generating_script
func (r *repository) BeginScript(ctx context.Context, id uint) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status = ?", id, models.JobStatusPending).
		Updates(map[string]interface{}{
			"status":     models.JobStatusGeneratingScript,
			"progress":   ProgressScriptStarted,
			"started_at": &now,
		})

	if result.Error != nil {
		return fmt.Errorf("starting script stage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d is no longer %s", id, models.JobStatusPending)
	}
	return nil
}

// CompleteScript attaches the synthesized script and finishes the script stage
func (r *repository) CompleteScript(ctx context.Context, id uint, data *models.ScriptData) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status = ?", id, models.JobStatusGeneratingScript).
		Updates(map[string]interface{}{
			"status":       models.JobStatusComplete,
			"progress":     ProgressComplete,
			"script":       data,
			"completed_at": &now,
		})

	if result.Error != nil {
		return fmt.Errorf("completing script stage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d is no longer %s", id, models.JobStatusGeneratingScript)
	}
	return nil
}

// ClaimForAudio atomically moves the job into generating_audio. The single
// conditional UPDATE is the whole concurrency guard: it only matches a job
// that belongs to the caller, already carries a script, and has no audio run
// in flight. Edited segments, when supplied, are persisted by the same
// statement so a competing claim can never observe the edit without the claim.
func (r *repository) ClaimForAudio(ctx context.Context, id uint, userID string, edited *models.ScriptData) (*models.PodcastJob, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":     models.JobStatusGeneratingAudio,
		"progress":   ProgressClaimed,
		"error":      "",
		"started_at": &now,
	}
	if edited != nil {
		updates["script"] = edited
	}

	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND user_id = ?", id, userID).
		Where("status IN ?", []models.JobStatus{models.JobStatusComplete, models.JobStatusFailed}).
		Where("script IS NOT NULL").
		Updates(updates)

	if result.Error != nil {
		return nil, fmt.Errorf("claiming job for audio: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// The claim did not land; refetch to report why
		job, err := r.GetJob(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if job.Status.AudioInFlight() {
			return nil, ErrJobConflict
		}
		if !job.HasScript() {
			return nil, ErrJobNoScript
		}
		return nil, ErrJobConflict
	}

	return r.GetJob(ctx, id, userID)
}

// UpdateProgress persists a progress checkpoint while the job is still in the
// expected status and the checkpoint moves progress forward. A zero row count
// means the job moved on; the checkpoint is dropped rather than fought over.
func (r *repository) UpdateProgress(ctx context.Context, id uint, expected models.JobStatus, progress int) error {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status = ? AND progress <= ?", id, expected, progress).
		Update("progress", progress)

	if result.Error != nil {
		return fmt.Errorf("updating job progress: %w", result.Error)
	}
	return nil
}

// BeginStitching moves the job from generating_audio into stitching
func (r *repository) BeginStitching(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status = ?", id, models.JobStatusGeneratingAudio).
		Updates(map[string]interface{}{
			"status":   models.JobStatusStitching,
			"progress": ProgressStitching,
		})

	if result.Error != nil {
		return fmt.Errorf("starting stitching stage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d is no longer %s", id, models.JobStatusGeneratingAudio)
	}
	return nil
}

// CompleteAudio finishes the audio stage. URL, artifact key, and measured
// duration land in the same UPDATE as the terminal status so the record is
// never half populated.
func (r *repository) CompleteAudio(ctx context.Context, id uint, audioURL, audioKey string, duration float64) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status = ?", id, models.JobStatusStitching).
		Updates(map[string]interface{}{
			"status":       models.JobStatusComplete,
			"progress":     ProgressComplete,
			"audio_url":    audioURL,
			"audio_key":    audioKey,
			"duration":     duration,
			"completed_at": &now,
		})

	if result.Error != nil {
		return fmt.Errorf("completing audio stage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %d is no longer %s", id, models.JobStatusStitching)
	}
	return nil
}

// FailJob marks an in-flight job as failed with a bounded error message.
// Script and audio columns are not touched, so a failed audio run keeps the
// script and the caller can retry.
func (r *repository) FailJob(ctx context.Context, id uint, message string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PodcastJob{}).
		Where("id = ? AND status IN ?", id, []models.JobStatus{
			models.JobStatusGeneratingScript,
			models.JobStatusGeneratingAudio,
			models.JobStatusStitching,
		}).
		Updates(map[string]interface{}{
			"status":       models.JobStatusFailed,
			"error":        models.TruncateError(message),
			"completed_at": &now,
		})

	if result.Error != nil {
		return fmt.Errorf("failing job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// DeleteJob removes the owner's job record
func (r *repository) DeleteJob(ctx context.Context, id uint, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PodcastJob{})

	if result.Error != nil {
		return fmt.Errorf("deleting job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
