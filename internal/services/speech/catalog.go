package speech

// Known provider names
const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
)

// Voice describes one synthesizer voice a speaker can be mapped to
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// openaiVoices are the voices accepted by the OpenAI speech endpoint
var openaiVoices = []Voice{
	{ID: "alloy", Name: "Alloy", Description: "Neutral, balanced delivery"},
	{ID: "echo", Name: "Echo", Description: "Calm, lower-register male"},
	{ID: "fable", Name: "Fable", Description: "Expressive, storytelling"},
	{ID: "onyx", Name: "Onyx", Description: "Deep, authoritative male"},
	{ID: "nova", Name: "Nova", Description: "Bright, energetic female"},
	{ID: "shimmer", Name: "Shimmer", Description: "Warm, friendly female"},
}

// googleVoices are a curated subset of Google Cloud TTS en-US voices
var googleVoices = []Voice{
	{ID: "en-US-Neural2-A", Name: "Neural2 A", Description: "Male, conversational"},
	{ID: "en-US-Neural2-C", Name: "Neural2 C", Description: "Female, conversational"},
	{ID: "en-US-Neural2-D", Name: "Neural2 D", Description: "Male, narration"},
	{ID: "en-US-Neural2-F", Name: "Neural2 F", Description: "Female, narration"},
	{ID: "en-US-Wavenet-B", Name: "Wavenet B", Description: "Male, classic Wavenet"},
	{ID: "en-US-Wavenet-E", Name: "Wavenet E", Description: "Female, classic Wavenet"},
}

// Catalog lists the selectable voices per provider. The slices are copies;
// callers may reorder them freely.
func Catalog() map[string][]Voice {
	return map[string][]Voice{
		ProviderOpenAI: append([]Voice(nil), openaiVoices...),
		ProviderGoogle: append([]Voice(nil), googleVoices...),
	}
}
