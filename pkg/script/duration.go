package script

import (
	"fmt"
	"math"
	"strings"
)

// WordsPerMinute is the assumed speaking rate for duration estimates
const WordsPerMinute = 150

// wordsPerSecond derived from the speaking rate (150 wpm = 2.5 words/sec)
const wordsPerSecond = float64(WordsPerMinute) / 60.0

// CountWords counts whitespace-separated words
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// SegmentSeconds estimates the spoken duration of one segment, rounded up to
// whole seconds so the total never undershoots the per-segment estimates.
// The word count covers the full "Speaker: text" line, the same form the
// script is displayed and exported in, so SRT cue lengths match the cue text.
func SegmentSeconds(segment Segment) int {
	if strings.TrimSpace(segment.Text) == "" {
		return 0
	}
	words := CountWords(segment.Speaker + ": " + segment.Text)
	return int(math.Ceil(float64(words) / wordsPerSecond))
}

// EstimateDuration sums the per-segment estimates in seconds
func EstimateDuration(segments []Segment) int {
	total := 0
	for _, segment := range segments {
		total += SegmentSeconds(segment)
	}
	return total
}

// FormatDuration renders seconds as "m:ss"
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
