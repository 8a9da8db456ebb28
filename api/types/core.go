package types

import (
	"time"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/pkg/script"
)

// Core data types used across API responses

// Job represents a podcast generation job with essential fields. Timestamps
// are RFC 3339 in UTC; error and audio fields are omitted until set.
type Job struct {
	ID          uint                  `json:"id"`
	ContentID   string                `json:"contentId,omitempty"`
	Status      string                `json:"status"`
	Progress    int                   `json:"progress"` // 0-100
	Options     models.PodcastOptions `json:"options"`
	Script      *script.PodcastScript `json:"script,omitempty"`
	AudioURL    string                `json:"audioUrl,omitempty"`
	Duration    float64               `json:"duration,omitempty"` // Seconds of stitched audio
	Error       string                `json:"error,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	StartedAt   *time.Time            `json:"startedAt,omitempty"`
	CompletedAt *time.Time            `json:"completedAt,omitempty"`
}

// Voice represents one selectable synthesizer voice
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
