package speech

import "context"

// Synthesizer converts one segment of text into encoded audio using the
// provider voice identified by voiceID.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// ProgressFunc receives coarse progress checkpoints while a batch of
// segments is being synthesized. Implementations must tolerate being called
// from multiple goroutines.
type ProgressFunc func(percent int)
