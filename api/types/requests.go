package types

import (
	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/pkg/script"
)

// ParseScriptRequest represents a script parsing request. Mode is
// auto-detected when omitted; the speaker names override the detected
// labels in podcast mode.
type ParseScriptRequest struct {
	Text         string `json:"text" binding:"required" example:"**Alex:** Welcome back to the show."`
	Mode         string `json:"mode,omitempty" example:"podcast"`
	Speaker1Name string `json:"speaker1Name,omitempty" example:"Alex"`
	Speaker2Name string `json:"speaker2Name,omitempty" example:"Jamie"`
}

// GeneratePodcastRequest represents a podcast generation request.
// ContentID is the caller's reference to the source material.
type GeneratePodcastRequest struct {
	SourceContent string                `json:"sourceContent" binding:"required" example:"Transcript of the interview..."`
	ContentID     string                `json:"contentId,omitempty" example:"ep-042"`
	Options       models.PodcastOptions `json:"options"`
}

// GenerateAudioRequest represents an audio generation request for a job
// that already holds a script. Script, when present, replaces the persisted
// script before synthesis.
type GenerateAudioRequest struct {
	VoiceMap map[string]string     `json:"voiceMap" binding:"required"`
	Script   *script.PodcastScript `json:"script,omitempty"`
}
