package speech

import (
	"context"
	"fmt"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// GoogleSynthesizer implements Synthesizer using Google Cloud Text-to-Speech.
// Credentials are resolved through application default credentials. Voice IDs
// are full Google voice names, e.g. "en-US-Neural2-D".
type GoogleSynthesizer struct {
	client       *gctts.Client
	languageCode string
}

// NewGoogleSynthesizer creates a synthesizer bound to one TTS client. The
// client is reused across segments; call Close when the service shuts down.
func NewGoogleSynthesizer(ctx context.Context, languageCode string) (*GoogleSynthesizer, error) {
	client, err := gctts.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("google tts: creating client: %w", err)
	}
	if languageCode == "" {
		languageCode = "en-US"
	}
	return &GoogleSynthesizer{client: client, languageCode: languageCode}, nil
}

// Synthesize converts one segment of text into MP3 bytes with the given voice
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	resp, err := s.client.SynthesizeSpeech(ctx, &ttspb.SynthesizeSpeechRequest{
		Input: &ttspb.SynthesisInput{
			InputSource: &ttspb.SynthesisInput_Text{Text: text},
		},
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: s.languageCode,
			Name:         voiceID,
		},
		AudioConfig: &ttspb.AudioConfig{
			AudioEncoding: ttspb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google tts: %w", err)
	}

	audio := resp.GetAudioContent()
	if len(audio) == 0 {
		return nil, fmt.Errorf("google tts: empty audio response")
	}
	return audio, nil
}

// Close releases the underlying gRPC connection
func (s *GoogleSynthesizer) Close() error {
	return s.client.Close()
}

// Compile-time interface check
var _ Synthesizer = (*GoogleSynthesizer)(nil)
