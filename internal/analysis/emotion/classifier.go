package emotion

import (
	"math"
	"strings"
	"unicode"
)

// Labels the classifier can emit.
const (
	Sadness      = "sadness"
	Anxiety      = "anxiety"
	Anger        = "anger"
	Hopelessness = "hopelessness"
	Loneliness   = "loneliness"
	Stress       = "stress"
	Fear         = "fear"
	Neutral      = "neutral"
)

// Classifier is a multinomial naive-Bayes model over bag-of-words counts of
// a small fixed training corpus. Until Train is called every prediction is
// (neutral, 0.5).
type Classifier struct {
	trained     bool
	classes     []string
	vocab       map[string]int
	logPrior    []float64
	logWordProb [][]float64
}

// NewClassifier returns an untrained classifier.
func NewClassifier() *Classifier {
	return &Classifier{vocab: make(map[string]int)}
}

// Trained reports whether the model has been fit.
func (c *Classifier) Trained() bool {
	return c.trained
}

// Train fits the model on the built-in corpus. The corpus is static, so this
// is called once at startup and never again.
func (c *Classifier) Train() {
	classIndex := make(map[string]int)
	for _, label := range trainingLabels {
		if _, ok := classIndex[label]; !ok {
			classIndex[label] = len(c.classes)
			c.classes = append(c.classes, label)
		}
	}

	docs := make([][]string, len(trainingTexts))
	for i, text := range trainingTexts {
		docs[i] = tokenize(text)
		for _, tok := range docs[i] {
			if _, ok := c.vocab[tok]; !ok {
				c.vocab[tok] = len(c.vocab)
			}
		}
	}

	counts := make([][]float64, len(c.classes))
	totals := make([]float64, len(c.classes))
	docsPerClass := make([]float64, len(c.classes))
	for i := range counts {
		counts[i] = make([]float64, len(c.vocab))
	}
	for i, doc := range docs {
		ci := classIndex[trainingLabels[i]]
		docsPerClass[ci]++
		for _, tok := range doc {
			counts[ci][c.vocab[tok]]++
			totals[ci]++
		}
	}

	// Laplace-smoothed log likelihoods and log priors.
	c.logPrior = make([]float64, len(c.classes))
	c.logWordProb = make([][]float64, len(c.classes))
	vocabSize := float64(len(c.vocab))
	totalDocs := float64(len(docs))
	for ci := range c.classes {
		c.logPrior[ci] = math.Log(docsPerClass[ci] / totalDocs)
		c.logWordProb[ci] = make([]float64, len(c.vocab))
		for wi := range c.logWordProb[ci] {
			c.logWordProb[ci][wi] = math.Log((counts[ci][wi] + 1) / (totals[ci] + vocabSize))
		}
	}
	c.trained = true
}

// Predict returns the most likely emotion label for the text and the winning
// class's posterior probability. Any degenerate state degrades to
// (neutral, 0.5) rather than failing the request.
func (c *Classifier) Predict(text string) (string, float64) {
	if c == nil || !c.trained || len(c.classes) == 0 {
		return Neutral, 0.5
	}

	scores := make([]float64, len(c.classes))
	copy(scores, c.logPrior)
	known := 0
	for _, tok := range tokenize(text) {
		wi, ok := c.vocab[tok]
		if !ok {
			// Words outside the fitted vocabulary carry no signal.
			continue
		}
		known++
		for ci := range scores {
			scores[ci] += c.logWordProb[ci][wi]
		}
	}
	if known == 0 {
		return Neutral, 0.5
	}

	// Normalize via log-sum-exp to recover posteriors.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - maxScore)
	}

	best := 0
	for ci, s := range scores {
		if s > scores[best] {
			best = ci
		}
	}
	confidence := math.Exp(scores[best]-maxScore) / sum
	if math.IsNaN(confidence) || math.IsInf(confidence, 0) {
		return Neutral, 0.5
	}
	return c.classes[best], confidence
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
