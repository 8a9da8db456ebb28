package script

import (
	"regexp"
	"strings"
)

var (
	currencyRegex = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
	percentRegex  = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

	doubleStarRegex       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	singleStarRegex       = regexp.MustCompile(`\*([^*]+)\*`)
	doubleUnderscoreRegex = regexp.MustCompile(`__([^_]+)__`)
	singleUnderscoreRegex = regexp.MustCompile(`\b_([^_]+)_\b`)
	headingRegex          = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	spaceRunRegex         = regexp.MustCompile(`[ \t]{2,}`)
)

// PreprocessForTTS normalizes text for speech synthesis: currency and percent
// figures are spelled out and markdown decoration is stripped. Bracketed
// cues such as "[laughing]" are left untouched; they are a delivery protocol
// for the synthesizer, not prose to clean. The function is idempotent, so
// re-processing already-clean text changes nothing.
func PreprocessForTTS(text string) string {
	result := text

	result = currencyRegex.ReplaceAllStringFunc(result, func(match string) string {
		amount := strings.TrimPrefix(match, "$")
		if amount == "1" {
			return "1 dollar"
		}
		return amount + " dollars"
	})

	result = percentRegex.ReplaceAllString(result, "$1 percent")

	result = headingRegex.ReplaceAllString(result, "")
	result = doubleStarRegex.ReplaceAllString(result, "$1")
	result = singleStarRegex.ReplaceAllString(result, "$1")
	result = doubleUnderscoreRegex.ReplaceAllString(result, "$1")
	result = singleUnderscoreRegex.ReplaceAllString(result, "$1")

	result = spaceRunRegex.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}
