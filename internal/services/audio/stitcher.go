package audio

import (
	"bytes"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// ContentTypeMP3 is the MIME type of stitched podcast artifacts
const ContentTypeMP3 = "audio/mpeg"

// ProbeFunc measures the playable duration in seconds of an encoded stream
type ProbeFunc func(data []byte) (float64, error)

// Stitcher joins ordered per-segment audio buffers into one artifact and
// measures the result. The measured duration comes from the actual audio, not
// from any text-based estimate.
type Stitcher struct {
	probe ProbeFunc
}

// StitcherOption configures a Stitcher
type StitcherOption func(*Stitcher)

// WithProbe replaces the duration probe, mainly for tests that stitch
// synthetic buffers which are not decodable audio
func WithProbe(probe ProbeFunc) StitcherOption {
	return func(s *Stitcher) {
		if probe != nil {
			s.probe = probe
		}
	}
}

// NewStitcher creates a Stitcher that probes MP3 streams by default
func NewStitcher(opts ...StitcherOption) *Stitcher {
	s := &Stitcher{probe: MP3Duration}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stitch concatenates the buffers strictly in slice order, which the
// generator has already arranged to be segment order. Every slot must hold
// audio; a nil or empty entry means a segment never produced output and fails
// the call rather than producing a gapped artifact.
func (s *Stitcher) Stitch(buffers [][]byte) ([]byte, float64, error) {
	if len(buffers) == 0 {
		return nil, 0, fmt.Errorf("no audio buffers to stitch")
	}

	total := 0
	for i, buffer := range buffers {
		if len(buffer) == 0 {
			return nil, 0, fmt.Errorf("segment %d produced no audio", i+1)
		}
		total += len(buffer)
	}

	stitched := make([]byte, 0, total)
	for _, buffer := range buffers {
		stitched = append(stitched, buffer...)
	}

	seconds, err := s.probe(stitched)
	if err != nil {
		return nil, 0, fmt.Errorf("measuring stitched audio: %w", err)
	}

	return stitched, seconds, nil
}

// MP3Duration decodes the whole stream and derives its duration from the PCM
// byte count. go-mp3 always emits 16-bit stereo samples, 4 bytes per frame,
// so seconds = decodedBytes / (4 * sampleRate). Decoding end to end also
// verifies the concatenated stream is actually playable.
func MP3Duration(data []byte) (float64, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	pcmBytes, err := io.Copy(io.Discard, decoder)
	if err != nil {
		return 0, fmt.Errorf("decoding mp3 stream: %w", err)
	}

	sampleRate := decoder.SampleRate()
	if sampleRate <= 0 {
		return 0, fmt.Errorf("decoding mp3: invalid sample rate %d", sampleRate)
	}

	return float64(pcmBytes) / float64(4*sampleRate), nil
}
