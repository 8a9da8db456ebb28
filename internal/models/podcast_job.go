package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/podforge/podforge-api/pkg/script"
)

// JobStatus represents the lifecycle state of a podcast generation job
type JobStatus string

const (
	JobStatusPending          JobStatus = "pending"
	JobStatusGeneratingScript JobStatus = "generating_script"
	JobStatusGeneratingAudio  JobStatus = "generating_audio"
	JobStatusStitching        JobStatus = "stitching"
	JobStatusComplete         JobStatus = "complete"
	JobStatusFailed           JobStatus = "failed"
)

// validTransitions lists the forward edges of the job state machine. Audio
// generation starts from complete, or from failed as a retry once a script
// has been persisted.
var validTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:          {JobStatusGeneratingScript},
	JobStatusGeneratingScript: {JobStatusComplete, JobStatusFailed},
	JobStatusComplete:         {JobStatusGeneratingAudio},
	JobStatusFailed:           {JobStatusGeneratingAudio},
	JobStatusGeneratingAudio:  {JobStatusStitching, JobStatusFailed},
	JobStatusStitching:        {JobStatusComplete, JobStatusFailed},
}

// CanTransitionTo returns true if the status machine allows moving to next
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true once a job has finished, successfully or not
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusComplete || s == JobStatusFailed
}

// AudioInFlight returns true while audio generation holds the job; a second
// audio request in these states is rejected without touching the record
func (s JobStatus) AudioInFlight() bool {
	return s == JobStatusGeneratingAudio || s == JobStatusStitching
}

// Default host names applied when options omit them
const (
	DefaultHost1Name = "Alex"
	DefaultHost2Name = "Jamie"
)

// MaxErrorLength bounds the error message persisted on a failed job
const MaxErrorLength = 500

// TruncateError clamps an error message to MaxErrorLength runes
func TruncateError(message string) string {
	runes := []rune(message)
	if len(runes) <= MaxErrorLength {
		return message
	}
	return string(runes[:MaxErrorLength])
}

// PodcastJob is the persisted record of one podcast generation request,
// tracking script synthesis and audio generation through a single status
// field
type PodcastJob struct {
	gorm.Model
	UserID    string         `json:"user_id" gorm:"not null;index:idx_podcast_jobs_user_status"`
	ContentID string         `json:"content_id,omitempty"`
	Status    JobStatus      `json:"status" gorm:"default:'pending';index:idx_podcast_jobs_user_status"`
	Progress  int            `json:"progress" gorm:"default:0"` // 0-100
	Options   PodcastOptions `json:"options" gorm:"type:json"`
	Script    *ScriptData    `json:"script,omitempty" gorm:"type:json"`
	AudioURL  string         `json:"audio_url,omitempty"`
	AudioKey  string         `json:"-"` // artifact-store key, kept for cleanup on delete
	Duration  float64        `json:"duration,omitempty"` // seconds, measured from the stitched audio
	Error     string         `json:"error,omitempty"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// HasScript returns true once a synthesized script has been persisted
func (j *PodcastJob) HasScript() bool {
	return j.Script != nil && len(j.Script.Segments) > 0
}

// CanStartAudio returns true when an audio generation request may claim the
// job: the script must exist and no earlier audio run may still be in flight
func (j *PodcastJob) CanStartAudio() bool {
	return j.HasScript() && (j.Status == JobStatusComplete || j.Status == JobStatusFailed)
}

// TableName specifies the table name for GORM
func (PodcastJob) TableName() string {
	return "podcast_jobs"
}

// HostNames carries the two display names used for podcast-mode speakers
type HostNames struct {
	Host1 string `json:"host1"`
	Host2 string `json:"host2"`
}

// PodcastOptions is the caller-supplied generation configuration, stored as
// a JSON column on the job
type PodcastOptions struct {
	TargetDuration      int       `json:"targetDuration,omitempty"` // minutes
	Tone                string    `json:"tone,omitempty"`
	HostNames           HostNames `json:"hostNames"`
	TTSProvider         string    `json:"ttsProvider,omitempty"`
	SourceTranscriptIDs []string  `json:"sourceTranscriptIds,omitempty"`
}

// Host1 returns the first host name, falling back to the default
func (o PodcastOptions) Host1() string {
	if o.HostNames.Host1 != "" {
		return o.HostNames.Host1
	}
	return DefaultHost1Name
}

// Host2 returns the second host name, falling back to the default
func (o PodcastOptions) Host2() string {
	if o.HostNames.Host2 != "" {
		return o.HostNames.Host2
	}
	return DefaultHost2Name
}

// Value implements driver.Valuer interface for PodcastOptions
func (o PodcastOptions) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan implements sql.Scanner interface for PodcastOptions
func (o *PodcastOptions) Scan(value interface{}) error {
	if value == nil {
		*o = PodcastOptions{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, o)
}

// ScriptData stores a synthesized script as a JSON column
type ScriptData script.PodcastScript

// AsScript converts the column back to the script package's type
func (s *ScriptData) AsScript() *script.PodcastScript {
	return (*script.PodcastScript)(s)
}

// Value implements driver.Valuer interface for ScriptData
func (s ScriptData) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for ScriptData
func (s *ScriptData) Scan(value interface{}) error {
	if value == nil {
		*s = ScriptData{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}
