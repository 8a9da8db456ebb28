package script

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportFormat identifies a script export encoding
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatTXT  ExportFormat = "txt"
	FormatSRT  ExportFormat = "srt"
)

// ParseExportFormat validates a caller-supplied format string
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatTXT:
		return FormatTXT, nil
	case FormatSRT:
		return FormatSRT, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// ContentType returns the MIME type served for the format
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatSRT:
		return "application/x-subrip"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Export renders a script in the requested format. The output is
// deterministic for a given script; SRT cue times come from the estimated
// per-segment durations, not from generated audio.
func Export(s *PodcastScript, format ExportFormat) (string, error) {
	if s == nil {
		return "", fmt.Errorf("no script to export")
	}
	switch format {
	case FormatJSON:
		return exportJSON(s)
	case FormatTXT:
		return exportTXT(s), nil
	case FormatSRT:
		return exportSRT(s), nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", format)
	}
}

func exportJSON(s *PodcastScript) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding script: %w", err)
	}
	return string(data), nil
}

func exportTXT(s *PodcastScript) string {
	lines := make([]string, 0, len(s.Segments))
	for _, segment := range s.Segments {
		lines = append(lines, fmt.Sprintf("%s: %s", segment.Speaker, segment.Text))
	}
	return strings.Join(lines, "\n") + "\n"
}

// exportSRT numbers cues sequentially; cue n starts at the cumulative
// estimated duration of segments [0..n-1]. No waveform alignment is
// performed, so the timestamps are an approximation of the spoken timing.
func exportSRT(s *PodcastScript) string {
	var builder strings.Builder
	elapsed := 0
	for i, segment := range s.Segments {
		start := elapsed
		end := elapsed + SegmentSeconds(segment)
		elapsed = end

		builder.WriteString(fmt.Sprintf("%d\n", i+1))
		builder.WriteString(fmt.Sprintf("%s --> %s\n", formatSRTTimestamp(start), formatSRTTimestamp(end)))
		builder.WriteString(fmt.Sprintf("%s: %s\n\n", segment.Speaker, segment.Text))
	}
	return builder.String()
}

// formatSRTTimestamp renders whole seconds as "HH:MM:SS,mmm"
func formatSRTTimestamp(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d,000", seconds/3600, (seconds%3600)/60, seconds%60)
}
