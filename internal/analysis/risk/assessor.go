// Package risk turns a message plus short-term conversation history into a
// severity tier. Scoring is additive and intentionally conservative: explicit
// self-harm language always lands in the high tier on its own.
package risk

import "strings"

// Tiers, from benign to crisis.
const (
	None     = "none"
	Low      = "low"
	Moderate = "moderate"
	High     = "high"
)

var highRiskTerms = []string{
	"suicide", "kill myself", "end my life", "want to die", "end it all",
}

var moderateRiskTerms = []string{
	"hopeless", "no point", "cant take it", "better off dead", "no reason to live",
}

// Assess scores the corrected text against risk phrases, the classifier
// output, and the tiers of the most recent turns. recentTiers must describe
// the turns *before* the current message; callers assess before appending.
func Assess(text, emotionLabel string, confidence float64, recentTiers []string) (string, int) {
	score := 0

	for _, term := range highRiskTerms {
		if strings.Contains(text, term) {
			score += 3
		}
	}
	for _, term := range moderateRiskTerms {
		if strings.Contains(text, term) {
			score += 2
		}
	}

	switch {
	case (emotionLabel == "hopelessness" || emotionLabel == "sadness") && confidence > 0.7:
		score += 2
	case (emotionLabel == "anxiety" || emotionLabel == "anger") && confidence > 0.6:
		score += 1
	}

	high, moderate := 0, 0
	for _, tier := range recentTiers {
		switch tier {
		case High:
			high++
		case Moderate:
			moderate++
		}
	}
	if high >= 1 {
		score += 2
	} else if moderate >= 2 {
		score += 1
	}

	switch {
	case score >= 3:
		return High, score
	case score >= 2:
		return Moderate, score
	case score >= 1:
		return Low, score
	default:
		return None, score
	}
}
