package script

// Mode indicates how a script's speakers are organized
type Mode string

const (
	// ModeSingle is a one-narrator script with no speaker labels
	ModeSingle Mode = "single"
	// ModePodcast is a two-host dialogue with labeled speaker turns
	ModePodcast Mode = "podcast"
)

// DefaultNarrator is the speaker assigned to unlabeled scripts
const DefaultNarrator = "Narrator"

// Segment represents one speaker turn in a script
type Segment struct {
	Speaker      string `json:"speaker"`
	Text         string `json:"text"`
	OriginalText string `json:"originalText"`
	Emotion      string `json:"emotion,omitempty"`
	LineNumber   int    `json:"lineNumber"`
	HasChanges   bool   `json:"hasChanges"`
}

// PodcastScript is a complete generated or parsed script
type PodcastScript struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Segments     []Segment `json:"segments"`
	KeyTakeaways []string  `json:"keyTakeaways"`
}

// ParseResult is the outcome of parsing raw text into speaker turns
type ParseResult struct {
	Mode     Mode      `json:"mode"`
	Speakers []string  `json:"speakers"`
	Segments []Segment `json:"segments"`
}
