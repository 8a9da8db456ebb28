package speech

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/podforge/podforge-api/pkg/script"
)

// Coarse progress checkpoints reported while a batch is synthesized. The
// orchestrator persists these, so they stay below the value it writes when
// stitching starts.
const (
	ProgressStart       = 10
	ProgressMidpoint    = 50
	ProgressSynthesized = 80
)

// DefaultMaxConcurrent bounds parallel TTS calls within one generation request
const DefaultMaxConcurrent = 4

// Generator synthesizes per-segment audio through a provider Synthesizer.
// Output buffers are ordered by segment index regardless of which provider
// call finishes first.
type Generator struct {
	synthesizer   Synthesizer
	maxConcurrent int
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithMaxConcurrent bounds the number of in-flight TTS calls
func WithMaxConcurrent(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxConcurrent = n
		}
	}
}

// NewGenerator creates a Generator over the given synthesizer
func NewGenerator(synthesizer Synthesizer, opts ...GeneratorOption) *Generator {
	g := &Generator{
		synthesizer:   synthesizer,
		maxConcurrent: DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate synthesizes audio for every segment, resolving speakers through
// voiceMap. The voice map is validated up front; nothing is sent to the
// provider if any speaker is unmapped. Segments run concurrently under a
// semaphore and each result lands in a pre-sized slot by segment index, so
// completion order never reorders the audio. The first failure cancels the
// remaining calls and fails the whole batch; partial audio is never returned.
func (g *Generator) Generate(ctx context.Context, segments []script.Segment, voiceMap map[string]string, onProgress ProgressFunc) ([][]byte, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to synthesize")
	}
	if err := ValidateVoiceMap(segments, voiceMap); err != nil {
		return nil, err
	}

	report := func(percent int) {
		if onProgress != nil {
			onProgress(percent)
		}
	}
	report(ProgressStart)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		buffers   = make([][]byte, len(segments))
		completed int
		firstErr  error
		mu        sync.Mutex
		wg        sync.WaitGroup
	)

	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	midpoint := (len(segments) + 1) / 2
	sem := make(chan struct{}, g.maxConcurrent)

	for i := range segments {
		wg.Add(1)
		sem <- struct{}{}

		go func(index int, segment script.Segment) {
			defer wg.Done()
			defer func() { <-sem }()

			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERROR] Panic synthesizing segment %d: %v", index+1, r)
					mu.Lock()
					fail(fmt.Errorf("panic synthesizing segment %d: %v", index+1, r))
					mu.Unlock()
				}
			}()

			if ctx.Err() != nil {
				return
			}

			data, err := g.synthesizer.Synthesize(ctx, segment.Text, voiceMap[segment.Speaker])

			mu.Lock()
			if err != nil {
				fail(fmt.Errorf("synthesizing segment %d (%s): %w", index+1, segment.Speaker, err))
				mu.Unlock()
				return
			}
			if len(data) == 0 {
				fail(fmt.Errorf("synthesizing segment %d (%s): provider returned no audio", index+1, segment.Speaker))
				mu.Unlock()
				return
			}
			buffers[index] = data
			completed++
			reachedMidpoint := completed == midpoint
			mu.Unlock()

			if reachedMidpoint {
				report(ProgressMidpoint)
			}
		}(i, segments[i])
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	report(ProgressSynthesized)
	return buffers, nil
}
