package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

// stubSynthesizer counts calls and lets tests control per-text latency,
// failures, and panics.
type stubSynthesizer struct {
	calls   atomic.Int32
	delays  map[string]time.Duration
	failOn  string
	panicOn string
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	s.calls.Add(1)
	if s.panicOn != "" && text == s.panicOn {
		panic("synthesizer exploded")
	}
	if s.failOn != "" && text == s.failOn {
		return nil, errors.New("provider unavailable")
	}
	if d, ok := s.delays[text]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []byte(fmt.Sprintf("audio[%s|%s]", voiceID, text)), nil
}

func testSegments(texts ...string) []script.Segment {
	segments := make([]script.Segment, len(texts))
	for i, text := range texts {
		speaker := "Alex"
		if i%2 == 1 {
			speaker = "Jamie"
		}
		segments[i] = script.Segment{Speaker: speaker, Text: text, LineNumber: i + 1}
	}
	return segments
}

var testVoiceMap = map[string]string{"Alex": "alloy", "Jamie": "nova"}

type progressRecorder struct {
	mu     sync.Mutex
	values []int
}

func (p *progressRecorder) record(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, percent)
}

func (p *progressRecorder) snapshot() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.values...)
}

func TestGenerator_PreservesSegmentOrder(t *testing.T) {
	// Earlier segments finish last; the buffers must still come back in
	// script order.
	stub := &stubSynthesizer{delays: map[string]time.Duration{
		"first":  60 * time.Millisecond,
		"second": 30 * time.Millisecond,
		"third":  0,
	}}
	segments := testSegments("first", "second", "third")

	generator := NewGenerator(stub, WithMaxConcurrent(3))
	buffers, err := generator.Generate(context.Background(), segments, testVoiceMap, nil)

	require.NoError(t, err)
	require.Len(t, buffers, 3)
	assert.Equal(t, "audio[alloy|first]", string(buffers[0]))
	assert.Equal(t, "audio[nova|second]", string(buffers[1]))
	assert.Equal(t, "audio[alloy|third]", string(buffers[2]))
	assert.Equal(t, int32(3), stub.calls.Load())
}

func TestGenerator_MissingVoiceMappingIssuesNoCalls(t *testing.T) {
	stub := &stubSynthesizer{}
	segments := testSegments("hello", "hi there")

	generator := NewGenerator(stub)
	buffers, err := generator.Generate(context.Background(), segments, map[string]string{"Alex": "alloy"}, nil)

	require.Error(t, err)
	assert.Nil(t, buffers)
	assert.Equal(t, int32(0), stub.calls.Load(), "validation failure must not reach the provider")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	assert.Contains(t, err.Error(), "Jamie")
}

func TestGenerator_SingleFailureFailsBatch(t *testing.T) {
	stub := &stubSynthesizer{failOn: "second"}
	segments := testSegments("first", "second", "third")

	generator := NewGenerator(stub, WithMaxConcurrent(1))
	buffers, err := generator.Generate(context.Background(), segments, testVoiceMap, nil)

	require.Error(t, err)
	assert.Nil(t, buffers)
	assert.Contains(t, err.Error(), "segment 2")
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestGenerator_RecoversSynthesizerPanic(t *testing.T) {
	stub := &stubSynthesizer{panicOn: "boom"}
	segments := testSegments("fine", "boom")

	generator := NewGenerator(stub)
	buffers, err := generator.Generate(context.Background(), segments, testVoiceMap, nil)

	require.Error(t, err)
	assert.Nil(t, buffers)
	assert.Contains(t, err.Error(), "panic")
}

func TestGenerator_ProgressCheckpoints(t *testing.T) {
	stub := &stubSynthesizer{}
	segments := testSegments("one", "two", "three", "four")
	recorder := &progressRecorder{}

	generator := NewGenerator(stub, WithMaxConcurrent(2))
	_, err := generator.Generate(context.Background(), segments, testVoiceMap, recorder.record)

	require.NoError(t, err)
	assert.Equal(t, []int{ProgressStart, ProgressMidpoint, ProgressSynthesized}, recorder.snapshot())
}

func TestGenerator_EmptySegments(t *testing.T) {
	generator := NewGenerator(&stubSynthesizer{})
	_, err := generator.Generate(context.Background(), nil, testVoiceMap, nil)
	require.Error(t, err)
}

func TestValidateVoiceMap(t *testing.T) {
	segments := testSegments("a", "b")

	tests := []struct {
		name     string
		voiceMap map[string]string
		wantErr  bool
	}{
		{"all speakers mapped", map[string]string{"Alex": "alloy", "Jamie": "nova"}, false},
		{"extra mappings allowed", map[string]string{"Alex": "alloy", "Jamie": "nova", "Sam": "echo"}, false},
		{"one speaker missing", map[string]string{"Alex": "alloy"}, true},
		{"blank voice id rejected", map[string]string{"Alex": "alloy", "Jamie": "  "}, true},
		{"nil map", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoiceMap(segments, tt.voiceMap)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCatalogListsBothProviders(t *testing.T) {
	catalog := Catalog()

	require.Contains(t, catalog, ProviderOpenAI)
	require.Contains(t, catalog, ProviderGoogle)
	assert.NotEmpty(t, catalog[ProviderOpenAI])
	assert.NotEmpty(t, catalog[ProviderGoogle])

	for provider, voices := range catalog {
		for _, voice := range voices {
			assert.NotEmpty(t, voice.ID, "provider %s has a voice without an id", provider)
		}
	}
}
