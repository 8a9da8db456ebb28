package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/pkg/script"
)

// Sampling defaults. Script synthesis runs warm so the hosts do not sound
// canned; the polish pass runs cold because it must only fix typos.
const (
	DefaultScriptTemperature = 0.7
	DefaultScriptMaxTokens   = 4096
	DefaultPolishTemperature = 0.2
	DefaultPolishMaxTokens   = 500
)

// defaultScriptPrompt pins the output contract the pipeline persists. Style
// direction (tone, pacing, host personas) travels in the per-request text,
// not here.
const defaultScriptPrompt = `You write two-host podcast scripts. Respond with a single JSON object of this exact shape:
{"title": string, "description": string, "keyTakeaways": [string], "segments": [{"speaker": string, "text": string}]}
Alternate turns between the two hosts named in the request, keep each turn short and conversational, and cover the source content faithfully. You may add bracketed delivery cues such as [laughing] or [sighs] inside segment text. Respond with JSON only, no markdown fences and no commentary.`

// polishPrompt limits the second pass to mechanical corrections. Bracketed
// cues must survive verbatim or the corrected text is discarded.
const polishPrompt = `Fix spelling and grammar mistakes in the following podcast line. Do not rephrase, do not change the meaning, and keep any [bracketed] tags exactly as written. Respond with the corrected line only.`

// Service turns source material into a structured two-host script by way of
// a text-completion backend.
type Service struct {
	completer TextCompleter
	parser    *script.Parser

	scriptPrompt      string
	scriptTemperature float64
	scriptMaxTokens   int

	polishEnabled     bool
	polishTemperature float64
	polishMaxTokens   int
}

// ServiceOption configures the synthesis service.
type ServiceOption func(*Service)

// WithScriptPrompt replaces the system prompt used for script generation.
func WithScriptPrompt(prompt string) ServiceOption {
	return func(s *Service) {
		if strings.TrimSpace(prompt) != "" {
			s.scriptPrompt = prompt
		}
	}
}

// WithScriptSampling sets temperature and token budget for script generation.
func WithScriptSampling(temperature float64, maxTokens int) ServiceOption {
	return func(s *Service) {
		if temperature > 0 {
			s.scriptTemperature = temperature
		}
		if maxTokens > 0 {
			s.scriptMaxTokens = maxTokens
		}
	}
}

// WithPolishEnabled toggles the typo-correction pass over generated segments.
func WithPolishEnabled(enabled bool) ServiceOption {
	return func(s *Service) {
		s.polishEnabled = enabled
	}
}

// WithPolishSampling sets temperature and token budget for the polish pass.
func WithPolishSampling(temperature float64, maxTokens int) ServiceOption {
	return func(s *Service) {
		if temperature > 0 {
			s.polishTemperature = temperature
		}
		if maxTokens > 0 {
			s.polishMaxTokens = maxTokens
		}
	}
}

// NewService creates a synthesis service backed by the given completer.
func NewService(completer TextCompleter, opts ...ServiceOption) *Service {
	s := &Service{
		completer:         completer,
		parser:            script.NewParser(),
		scriptPrompt:      defaultScriptPrompt,
		scriptTemperature: DefaultScriptTemperature,
		scriptMaxTokens:   DefaultScriptMaxTokens,
		polishEnabled:     true,
		polishTemperature: DefaultPolishTemperature,
		polishMaxTokens:   DefaultPolishMaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateScript asks the completion backend for a two-host script over the
// source content and returns it with every segment preprocessed for speech.
func (s *Service) GenerateScript(ctx context.Context, sourceContent string, options models.PodcastOptions) (*script.PodcastScript, error) {
	if strings.TrimSpace(sourceContent) == "" {
		return nil, fmt.Errorf("source content is empty")
	}

	raw, err := s.completer.Complete(ctx, s.scriptPrompt, buildScriptRequest(sourceContent, options), CompletionOptions{
		Temperature: s.scriptTemperature,
		MaxTokens:   s.scriptMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("completing script: %w", err)
	}

	podcastScript, err := s.decodeScript(raw, options)
	if err != nil {
		return nil, err
	}

	if s.polishEnabled {
		podcastScript.Segments = s.PolishSegments(ctx, podcastScript.Segments)
	}

	log.Printf("[DEBUG] Synthesized script %q with %d segments", podcastScript.Title, len(podcastScript.Segments))
	return podcastScript, nil
}

// PolishSegments runs the typo-correction pass over each segment. The pass is
// best effort: on any error, empty answer, or dropped delivery cue the
// original segment text is kept, and the function itself never fails.
func (s *Service) PolishSegments(ctx context.Context, segments []script.Segment) []script.Segment {
	polished := make([]script.Segment, len(segments))
	copy(polished, segments)

	for i := range polished {
		fixed, err := s.completer.Complete(ctx, polishPrompt, polished[i].Text, CompletionOptions{
			Temperature: s.polishTemperature,
			MaxTokens:   s.polishMaxTokens,
		})
		if err != nil {
			log.Printf("[WARNING] Polish pass failed on segment %d, keeping original: %v", i+1, err)
			continue
		}
		fixed = strings.TrimSpace(fixed)
		if fixed == "" || fixed == polished[i].Text {
			continue
		}
		if !preservesCues(polished[i].Text, fixed) {
			log.Printf("[WARNING] Polish pass dropped a delivery cue on segment %d, keeping original", i+1)
			continue
		}
		polished[i].Text = fixed
		polished[i].HasChanges = fixed != polished[i].OriginalText
	}

	return polished
}

// buildScriptRequest packs the per-request knobs and the source material into
// the user turn of the completion call.
func buildScriptRequest(sourceContent string, options models.PodcastOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hosts: %s and %s\n", options.Host1(), options.Host2())
	if options.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", options.Tone)
	}
	if options.TargetDuration > 0 {
		fmt.Fprintf(&b, "Target duration: about %d minutes of speech\n", options.TargetDuration)
	}
	b.WriteString("\nSource content:\n")
	b.WriteString(sourceContent)
	return b.String()
}

// decodeScript recovers a structured script from whatever the model sent
// back. Well-formed JSON is taken as is, slightly broken JSON is repaired,
// and anything else is handed to the dialogue parser as plain script text.
func (s *Service) decodeScript(raw string, options models.PodcastOptions) (*script.PodcastScript, error) {
	text := stripCodeFence(raw)

	var parsed script.PodcastScript
	if err := unmarshalScript([]byte(text), &parsed); err == nil && len(parsed.Segments) > 0 {
		normalizeSegments(&parsed)
		if len(parsed.Segments) == 0 {
			return nil, fmt.Errorf("script synthesis produced no segments")
		}
		return &parsed, nil
	}

	log.Printf("[WARNING] Script response was not usable JSON, falling back to dialogue parsing")
	result, err := s.parser.ParseWithMode(text, script.ModePodcast, options.Host1(), options.Host2())
	if err != nil {
		return nil, fmt.Errorf("parsing script text: %w", err)
	}
	if len(result.Segments) == 0 {
		return nil, fmt.Errorf("script synthesis produced no segments")
	}
	return &script.PodcastScript{Segments: result.Segments}, nil
}

// unmarshalScript decodes model output, repairing the JSON once if the first
// decode fails on a syntax error. Models routinely emit trailing commas or
// unescaped quotes; repair recovers those without another round trip.
func unmarshalScript(data []byte, v *script.PodcastScript) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); !ok {
		return err
	}
	fixed, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return err
	}
	return json.Unmarshal([]byte(fixed), v)
}

// normalizeSegments applies speech preprocessing to decoded segments and
// drops the empty ones, mirroring what the dialogue parser does for text
// input.
func normalizeSegments(podcastScript *script.PodcastScript) {
	segments := make([]script.Segment, 0, len(podcastScript.Segments))
	for _, segment := range podcastScript.Segments {
		raw := strings.TrimSpace(segment.Text)
		if raw == "" || strings.TrimSpace(segment.Speaker) == "" {
			continue
		}
		processed := script.PreprocessForTTS(raw)
		segment.Speaker = strings.TrimSpace(segment.Speaker)
		segment.OriginalText = raw
		segment.Text = processed
		segment.HasChanges = processed != raw
		segment.Emotion = script.LeadingCue(processed)
		segment.LineNumber = len(segments) + 1
		segments = append(segments, segment)
	}
	podcastScript.Segments = segments
}

// stripCodeFence unwraps a ```json ... ``` block if the model added one
// despite the prompt.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// preservesCues reports whether every bracketed delivery cue in the original
// text still appears in the corrected text.
func preservesCues(original, fixed string) bool {
	for _, cue := range script.Cues(original) {
		if !strings.Contains(fixed, cue) {
			return false
		}
	}
	return true
}
