package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISynthesizer implements Synthesizer using the OpenAI speech endpoint.
// Audio comes back as MP3, which the stitcher expects.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
}

// NewOpenAISynthesizer creates a synthesizer for the given speech model. An
// empty baseURL uses the default OpenAI endpoint.
func NewOpenAISynthesizer(apiKey, baseURL, model string) *OpenAISynthesizer {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAISynthesizer{client: &client, model: model}
}

// Synthesize converts one segment of text into MP3 bytes with the given voice
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(voiceID),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai speech: reading audio: %w", err)
	}
	return data, nil
}

// Compile-time interface check
var _ Synthesizer = (*OpenAISynthesizer)(nil)
