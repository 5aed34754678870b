// Package text normalizes raw user input: it fixes common misspellings seen
// in mental-health conversations and tags messages with coarse intents via
// keyword matching. Everything here is pure and stateless.
package text

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// fuzzyCutoff mirrors the similarity threshold used for close-match spelling
// correction: 1 - distance/maxLen must reach it for a substitution.
const fuzzyCutoff = 0.7

var misspellings = map[string]string{
	"sadd": "sad", "depresed": "depressed", "anxius": "anxious",
	"stresed": "stressed", "lonley": "lonely", "angery": "angry",
	"hoples": "hopeless", "sucide": "suicide", "kil": "kill",
	"dieing": "dying", "lonly": "lonely", "axious": "anxious",
	"stres": "stress", "depresion": "depression", "anxty": "anxiety",
	"sleeppy": "sleepy", "tierd": "tired", "exosted": "exhausted",
	"woried": "worried", "scard": "scared", "frightnd": "frightened",
	"overwhelimg": "overwhelming", "panik": "panic", "nervus": "nervous",
	"miserabel": "miserable", "empti": "empty", "isolatd": "isolated",
	"abandond": "abandoned", "frustratd": "frustrated", "iritated": "irritated",
}

type intentRule struct {
	name     string
	keywords []string
}

// Evaluation order matters: the response template stage keys off the first
// matched intent.
var intentRules = []intentRule{
	{"greeting", []string{"hi", "hello", "hey", "hola", "namaste", "good morning", "good afternoon"}},
	{"sadness", []string{"sad", "depressed", "unhappy", "miserable", "down", "low", "empty", "hopeless"}},
	{"anxiety", []string{"anxious", "worried", "nervous", "panic", "scared", "afraid", "fearful", "overwhelmed"}},
	{"anger", []string{"angry", "mad", "furious", "rage", "frustrated", "irritated", "annoyed"}},
	{"loneliness", []string{"lonely", "alone", "isolated", "abandoned", "empty", "no one cares"}},
	{"stress", []string{"stressed", "overwhelmed", "pressure", "burnt out", "exhausted", "too much"}},
	{"crisis", []string{"suicide", "kill myself", "end my life", "want to die", "end it all", "not want to live"}},
	{"support_request", []string{"help", "support", "advice", "guide", "what should i do", "need help"}},
	{"gratitude", []string{"thank", "thanks", "grateful", "appreciate", "helpful"}},
	{"farewell", []string{"bye", "goodbye", "see you", "take care", "goodnight"}},
	{"physical_symptoms", []string{"tired", "sleep", "headache", "pain", "sick", "cant sleep", "insomnia"}},
	{"relationship", []string{"friend", "family", "partner", "boyfriend", "girlfriend", "parents", "broken"}},
}

// Correct lowercases the text and repairs misspelled tokens, first by exact
// lookup and then by fuzzy match against the known-misspelling keys.
func Correct(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	corrected := make([]string, 0, len(words))

	for _, word := range words {
		clean := stripPunctuation(word)
		if fixed, ok := misspellings[clean]; ok {
			corrected = append(corrected, fixed)
			continue
		}
		if key, ok := closestMisspelling(clean); ok {
			corrected = append(corrected, misspellings[key])
			continue
		}
		corrected = append(corrected, clean)
	}

	return strings.Join(corrected, " ")
}

// DetectIntents returns every intent whose keyword set matches the corrected
// text. A message may carry zero, one, or many intents.
func DetectIntents(corrected string) []string {
	var detected []string
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(corrected, keyword) {
				detected = append(detected, rule.name)
				break
			}
		}
	}
	return detected
}

// Normalize applies spelling correction and intent detection in one pass.
func Normalize(raw string) (string, []string) {
	corrected := Correct(raw)
	return corrected, DetectIntents(corrected)
}

func stripPunctuation(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, word)
}

func closestMisspelling(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	bestKey := ""
	bestRatio := 0.0
	for key := range misspellings {
		ratio := similarity(word, key)
		if ratio > bestRatio {
			bestRatio = ratio
			bestKey = key
		}
	}
	if bestRatio >= fuzzyCutoff {
		return bestKey, true
	}
	return "", false
}

func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
