package speech

import (
	"sort"
	"strings"

	apperrors "github.com/podforge/podforge-api/pkg/errors"
	"github.com/podforge/podforge-api/pkg/script"
)

// ValidateVoiceMap checks that every distinct speaker in the segments has a
// non-empty voice mapping. It runs before any provider call so a bad mapping
// never spends TTS quota. The returned error names every unmapped speaker,
// not just the first one found.
func ValidateVoiceMap(segments []script.Segment, voiceMap map[string]string) error {
	var missing []string
	seen := map[string]bool{}

	for _, segment := range segments {
		speaker := segment.Speaker
		if seen[speaker] {
			continue
		}
		seen[speaker] = true
		if strings.TrimSpace(voiceMap[speaker]) == "" {
			missing = append(missing, speaker)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return apperrors.ValidationError("voiceMap",
			"no voice mapped for speaker(s): "+strings.Join(missing, ", ")).
			WithDetail("missingSpeakers", missing)
	}

	return nil
}
