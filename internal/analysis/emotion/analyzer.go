package emotion

import (
	"math"
	"strings"

	"github.com/jeesuva/companion/backend/internal/cache"
)

// Intensity buckets the strength of a detected emotion.
type Intensity string

const (
	IntensityNormal Intensity = "normal"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Result is the outcome of analyzing one message. It is immutable once
// produced and safe to cache by message text, since the analysis does not
// depend on the user.
type Result struct {
	Emotion    Label     `json:"emotion,omitempty"`
	Detected   bool      `json:"detected"`
	Intensity  Intensity `json:"intensity"`
	Confidence float64   `json:"confidence"`
}

// Analyzer scores messages against the lexicon and caches results per
// distinct message text.
type Analyzer struct {
	lexicon *Lexicon
	results *cache.FIFO[string, Result]
}

// NewAnalyzer builds an analyzer around the supplied lexicon with a bounded
// result cache.
func NewAnalyzer(lexicon *Lexicon, cacheSize int) *Analyzer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Analyzer{
		lexicon: lexicon,
		results: cache.NewFIFO[string, Result](cacheSize),
	}
}

// Analyze classifies the emotional tone of a message. Scoring is a keyword
// arg-max: every category is scored independently and only the best one is
// reported, with ties keeping the first category in lexicon order.
func (a *Analyzer) Analyze(message string) Result {
	if cached, ok := a.results.Get(message); ok {
		return cached
	}

	lower := strings.ToLower(message)
	result := Result{Intensity: IntensityNormal}

	negated := a.hasNegation(lower)
	boost := a.modifierFactor(lower)

	var best Label
	bestScore := 0.0
	for _, label := range a.lexicon.order {
		matches := 0
		for _, keyword := range a.lexicon.keywords[label] {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}

		score := float64(matches)
		if matches > 1 {
			score += float64(matches) * 0.5
		}
		if negated && matches > 0 {
			score *= 0.3
		}
		score *= boost

		if score > bestScore {
			bestScore = score
			best = label
		}
	}

	if bestScore > 0 {
		result = Result{
			Emotion:    best,
			Detected:   true,
			Intensity:  bucketIntensity(bestScore),
			Confidence: math.Min(bestScore/3, 1),
		}
	}

	a.results.Put(message, result)
	return result
}

// hasNegation reports whether any negation marker leads the message or
// appears followed by a space.
func (a *Analyzer) hasNegation(lower string) bool {
	for _, neg := range a.lexicon.negations {
		if strings.HasPrefix(lower, neg) || strings.Contains(lower, neg+" ") {
			return true
		}
	}
	return false
}

// modifierFactor stacks x1.3 per high-intensity modifier and x0.7 per
// low-intensity modifier present in the message.
func (a *Analyzer) modifierFactor(lower string) float64 {
	factor := 1.0
	for _, word := range a.lexicon.high {
		if strings.Contains(lower, word) {
			factor *= 1.3
		}
	}
	for _, word := range a.lexicon.low {
		if strings.Contains(lower, word) {
			factor *= 0.7
		}
	}
	return factor
}

func bucketIntensity(score float64) Intensity {
	switch {
	case score > 2:
		return IntensityHigh
	case score > 1:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// CacheStats reports the fill level of the result cache.
func (a *Analyzer) CacheStats() cache.Stats {
	return a.results.Stats()
}

// ClearCache drops every cached result.
func (a *Analyzer) ClearCache() {
	a.results.Clear()
}
