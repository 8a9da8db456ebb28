package script

import (
	"regexp"
	"strings"
)

// Speaker label patterns, tried in priority order. The first pattern that
// matches at least two distinct speakers across the document selects podcast
// mode.
var (
	// Bold markdown labels: "**Alex:** text" or "**Alex**: text"
	boldColonInsideRegex  = regexp.MustCompile(`^\*\*([^*\n]+?):\*\*\s*(.*)$`)
	boldColonOutsideRegex = regexp.MustCompile(`^\*\*([^*\n]+?)\*\*:\s*(.*)$`)

	// Screenplay caps labels: "ALEX: text"
	capsLabelRegex = regexp.MustCompile(`^([A-Z][A-Z0-9 .'\-]{0,29}):\s*(.*)$`)

	// Bracketed labels: "[Alex]: text". The colon is required, which keeps
	// bare emotion cues like "[laughing]" out of label detection.
	bracketLabelRegex = regexp.MustCompile(`^\[([^\[\]\n]+)\]:\s*(.*)$`)

	// Plain mixed-case labels: "Alex: text". Only consulted when podcast
	// mode is forced, since prose like "Note: ..." matches it too easily.
	plainLabelRegex = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 .'\-]{0,29}):\s*(.*)$`)
)

// labelMatcher extracts a speaker name and the remaining text from a line
type labelMatcher func(line string) (speaker, rest string, ok bool)

func matchBold(line string) (string, string, bool) {
	if m := boldColonInsideRegex.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), m[2], true
	}
	if m := boldColonOutsideRegex.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), m[2], true
	}
	return "", "", false
}

func matchCaps(line string) (string, string, bool) {
	m := capsLabelRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

func matchBracket(line string) (string, string, bool) {
	m := bracketLabelRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

func matchPlain(line string) (string, string, bool) {
	m := plainLabelRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

// autoMatchers are the patterns consulted during mode detection
var autoMatchers = []labelMatcher{matchBold, matchCaps, matchBracket}

// forcedMatchers additionally accept plain "Name:" labels once podcast mode
// is known
var forcedMatchers = []labelMatcher{matchBold, matchCaps, matchBracket, matchPlain}

// Parser turns raw script text into speaker-attributed segments
type Parser struct{}

// NewParser creates a new script parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse detects the script mode and splits the text into segments. A label
// pattern must attribute lines to at least two distinct speakers for podcast
// mode; otherwise the whole text becomes a single narrator segment.
func (p *Parser) Parse(text string) (*ParseResult, error) {
	matcher := detectMatcher(text, autoMatchers)
	if matcher == nil {
		return p.parseSingle(text, DefaultNarrator), nil
	}
	return p.parsePodcast(text, matcher, "", ""), nil
}

// ParseWithMode parses with an explicit mode override. In podcast mode the
// plain "Name:" label pattern is accepted in addition to the automatic ones,
// and non-empty speaker names rename the first and second detected speakers.
func (p *Parser) ParseWithMode(text string, mode Mode, speaker1Name, speaker2Name string) (*ParseResult, error) {
	switch mode {
	case ModeSingle:
		narrator := speaker1Name
		if narrator == "" {
			narrator = DefaultNarrator
		}
		return p.parseSingle(text, narrator), nil
	case ModePodcast:
		matcher := detectMatcher(text, forcedMatchers)
		if matcher == nil {
			// No labels at all; fall back to one segment under the first
			// host so downstream stages still have something to voice.
			narrator := speaker1Name
			if narrator == "" {
				narrator = DefaultNarrator
			}
			result := p.parseSingle(text, narrator)
			result.Mode = ModePodcast
			return result, nil
		}
		return p.parsePodcast(text, matcher, speaker1Name, speaker2Name), nil
	default:
		return p.Parse(text)
	}
}

// detectMatcher returns the first matcher attributing lines to at least two
// distinct speakers, or nil when none qualifies
func detectMatcher(text string, matchers []labelMatcher) labelMatcher {
	lines := strings.Split(text, "\n")
	for _, matcher := range matchers {
		seen := map[string]bool{}
		for _, line := range lines {
			if speaker, _, ok := matcher(strings.TrimSpace(line)); ok {
				seen[normalizeSpeaker(speaker)] = true
				if len(seen) >= 2 {
					return matcher
				}
			}
		}
	}
	return nil
}

// parsePodcast splits text into segments at speaker labels. Lines without a
// label continue the current speaker's turn; text before the first label is
// skipped.
func (p *Parser) parsePodcast(text string, matcher labelMatcher, speaker1Name, speaker2Name string) *ParseResult {
	result := &ParseResult{
		Mode:     ModePodcast,
		Speakers: []string{},
		Segments: []Segment{},
	}

	// Rename map built in order of first appearance
	renames := map[string]string{}
	order := []string{}

	var current *Segment
	var textBuilder strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		raw := strings.TrimSpace(textBuilder.String())
		textBuilder.Reset()
		if raw == "" {
			current = nil
			return
		}
		processed := PreprocessForTTS(raw)
		current.OriginalText = raw
		current.Text = processed
		current.HasChanges = processed != raw
		current.Emotion = LeadingCue(processed)
		result.Segments = append(result.Segments, *current)
		current = nil
	}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if speaker, rest, ok := matcher(trimmed); ok {
			flush()

			key := normalizeSpeaker(speaker)
			name, known := renames[key]
			if !known {
				name = speaker
				switch len(order) {
				case 0:
					if speaker1Name != "" {
						name = speaker1Name
					}
				case 1:
					if speaker2Name != "" {
						name = speaker2Name
					}
				}
				renames[key] = name
				order = append(order, name)
			}

			current = &Segment{Speaker: name, LineNumber: i + 1}
			textBuilder.WriteString(rest)
			continue
		}
		if current != nil && trimmed != "" {
			if textBuilder.Len() > 0 {
				textBuilder.WriteString(" ")
			}
			textBuilder.WriteString(trimmed)
		}
	}
	flush()

	result.Speakers = order
	return result
}

// parseSingle wraps the whole text in one narrator segment
func (p *Parser) parseSingle(text string, narrator string) *ParseResult {
	result := &ParseResult{
		Mode:     ModeSingle,
		Speakers: []string{},
		Segments: []Segment{},
	}

	raw := strings.TrimSpace(text)
	if raw == "" {
		return result
	}

	processed := PreprocessForTTS(raw)
	result.Speakers = []string{narrator}
	result.Segments = append(result.Segments, Segment{
		Speaker:      narrator,
		Text:         processed,
		OriginalText: raw,
		Emotion:      LeadingCue(processed),
		LineNumber:   1,
		HasChanges:   processed != raw,
	})
	return result
}

func normalizeSpeaker(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var (
	leadingCueRegex = regexp.MustCompile(`^\[([^\[\]]+)\]`)
	cueRegex        = regexp.MustCompile(`\[[^\[\]]+\]`)
)

// LeadingCue reports the emotion cue opening a segment, e.g. "[laughing]".
// The cue stays in the text; it is a delivery hint for speech synthesis.
func LeadingCue(text string) string {
	m := leadingCueRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Cues lists every bracketed delivery cue in the text, in order of
// appearance
func Cues(text string) []string {
	return cueRegex.FindAllString(text, -1)
}

// DistinctSpeakers lists the speakers of a segment slice in order of first
// appearance
func DistinctSpeakers(segments []Segment) []string {
	seen := map[string]bool{}
	speakers := []string{}
	for _, segment := range segments {
		if !seen[segment.Speaker] {
			seen[segment.Speaker] = true
			speakers = append(speakers, segment.Speaker)
		}
	}
	return speakers
}
