package generation

import (
	"strings"

	"brandforge/services/content-api/internal/domain/content"
)

const (
	baseScore         = 50
	keywordPoints     = 5
	keywordPointsCap  = 20
	structurePoints   = 10
	lengthPoints      = 10
	emojiPoints       = 5
	readabilityPoints = 5
	latinRunThreshold = 20
)

// scoringBands are the word-count ranges rewarded by the scorer. These are
// narrower than the targets requested in prompts (see prompt.go); both sets
// drive behavior and must stay separate.
var scoringBands = map[content.ContentLength][2]int{
	content.LengthShort:  {100, 300},
	content.LengthMedium: {300, 800},
	content.LengthLong:   {800, 1 << 30},
}

// Score assigns a deterministic 0-100 quality score to generated text.
// Pure: no I/O, no randomness, identical inputs always produce the same value.
func Score(text string, req *content.GenerationRequest) int {
	score := baseScore

	if band, ok := scoringBands[req.ContentLength]; ok {
		words := len(strings.Fields(text))
		if words >= band[0] && words <= band[1] {
			score += lengthPoints
		}
	}

	score += keywordScore(text, req.Keywords())

	if strings.Contains(text, "#") || strings.Contains(text, "\n\n") {
		score += structurePoints
	}

	if req.Platform != "" && req.Platform != content.PlatformBlog && containsEmoji(text) {
		score += emojiPoints
	}

	if !hasLongLatinRun(text) {
		score += readabilityPoints
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func keywordScore(text string, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}
	lowered := strings.ToLower(text)
	points := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, keyword) {
			points += keywordPoints
			if points >= keywordPointsCap {
				return keywordPointsCap
			}
		}
	}
	return points
}

// hasLongLatinRun reports an unbroken run of 20+ Latin letters, a proxy for
// leaked filler text rather than natural prose.
func hasLongLatinRun(text string) bool {
	run := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			run++
			if run >= latinRunThreshold {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended pictographs
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

func containsEmoji(text string) bool {
	for _, r := range text {
		for _, bounds := range emojiRanges {
			if r >= bounds[0] && r <= bounds[1] {
				return true
			}
		}
	}
	return false
}
