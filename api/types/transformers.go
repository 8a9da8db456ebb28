package types

import (
	"time"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/internal/services/speech"
	"github.com/podforge/podforge-api/pkg/script"
)

// FromJob transforms a database job record to our simplified Job type
func FromJob(j *models.PodcastJob) *Job {
	if j == nil {
		return nil
	}

	var scriptData *script.PodcastScript
	if j.Script != nil {
		scriptData = j.Script.AsScript()
	}

	return &Job{
		ID:          j.ID,
		ContentID:   j.ContentID,
		Status:      string(j.Status),
		Progress:    j.Progress,
		Options:     j.Options,
		Script:      scriptData,
		AudioURL:    j.AudioURL,
		Duration:    j.Duration,
		Error:       j.Error,
		CreatedAt:   j.CreatedAt.UTC(),
		StartedAt:   toUTC(j.StartedAt),
		CompletedAt: toUTC(j.CompletedAt),
	}
}

// FromJobList transforms a list of database job records
func FromJobList(jobs []*models.PodcastJob) []Job {
	result := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if transformed := FromJob(j); transformed != nil {
			result = append(result, *transformed)
		}
	}
	return result
}

// FromParseResult transforms a parser result, attaching the word-count
// duration estimate
func FromParseResult(r *script.ParseResult) *ParseScriptResponse {
	if r == nil {
		return nil
	}

	seconds := script.EstimateDuration(r.Segments)

	return &ParseScriptResponse{
		Mode:                       string(r.Mode),
		Speakers:                   r.Speakers,
		Segments:                   r.Segments,
		EstimatedDurationSeconds:   seconds,
		EstimatedDurationFormatted: script.FormatDuration(seconds),
	}
}

// FromVoiceCatalog transforms the synthesizer voice catalog
func FromVoiceCatalog(catalog map[string][]speech.Voice) map[string][]Voice {
	result := make(map[string][]Voice, len(catalog))
	for provider, voices := range catalog {
		transformed := make([]Voice, 0, len(voices))
		for _, v := range voices {
			transformed = append(transformed, Voice{
				ID:          v.ID,
				Name:        v.Name,
				Description: v.Description,
			})
		}
		result[provider] = transformed
	}
	return result
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
