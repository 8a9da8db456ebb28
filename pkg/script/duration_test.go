package script

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"Hi there!", 2},
		{"Alex: Hello.", 2},
		{"spread   across\nlines\ttoo", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.expected {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}

func TestSegmentSeconds(t *testing.T) {
	tests := []struct {
		speaker  string
		text     string
		expected int
	}{
		// Counted as the spoken "Speaker: text" line at 150 wpm.
		{"Alex", "Hello.", 1},
		{"Jamie", "Hi there!", 2},
		{"Alex", "", 0},
		{"Alex", "   ", 0},
		{"Narrator", "one two three four", 2},
	}

	for _, tt := range tests {
		segment := Segment{Speaker: tt.speaker, Text: tt.text}
		if got := SegmentSeconds(segment); got != tt.expected {
			t.Errorf("SegmentSeconds(%s: %q) = %d, want %d", tt.speaker, tt.text, got, tt.expected)
		}
	}
}

func TestEstimateDuration(t *testing.T) {
	segments := []Segment{
		{Speaker: "Alex", Text: "Hello."},
		{Speaker: "Jamie", Text: "Hi there!"},
	}

	if got := EstimateDuration(segments); got != 3 {
		t.Errorf("EstimateDuration = %d, want 3", got)
	}

	if got := EstimateDuration(nil); got != 0 {
		t.Errorf("EstimateDuration(nil) = %d, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{3, "0:03"},
		{59, "0:59"},
		{60, "1:00"},
		{61, "1:01"},
		{600, "10:00"},
		{3725, "62:05"},
		{-4, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %s, want %s", tt.seconds, got, tt.expected)
		}
	}
}
