package exposure

import (
	"context"
	"regexp"
	"sort"
)

// entityPattern pairs a taxonomy label with its detection pattern.
type entityPattern struct {
	label      string
	re         *regexp.Regexp
	confidence float64
}

// RegexClassifier is the built-in pattern-based PII classifier.
// It detects the contact details and identifiers people most commonly put
// in a public biography. Deployments wanting NLP-grade detection can swap
// in another Classifier; this one needs no external service and behaves
// deterministically, which the report's reproducibility relies on.
type RegexClassifier struct {
	patterns []entityPattern
}

// NewRegexClassifier creates a RegexClassifier with the default pattern set.
func NewRegexClassifier() *RegexClassifier {
	return &RegexClassifier{
		patterns: []entityPattern{
			// Standard email regex that catches most valid addresses
			{"EMAIL", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`), 0.95},

			// US social security numbers in dashed form
			{"SSN", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), 0.85},

			// International and local phone numbers. Loose on purpose;
			// the lower confidence reflects the false-positive rate.
			{"PHONE", regexp.MustCompile(`\+?\d[\d \-().]{7,14}\d`), 0.60},

			// Dotted-quad IP addresses
			{"IP_ADDRESS", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), 0.70},
		},
	}
}

// Classify runs every pattern over the text and returns the matches sorted
// by span position. The sort makes discovery order independent of pattern
// registration order when spans interleave.
func (c *RegexClassifier) Classify(_ context.Context, text, _ string) ([]Entity, error) {
	entities := make([]Entity, 0)
	for _, p := range c.patterns {
		for _, span := range p.re.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Label:      p.label,
				Start:      span[0],
				End:        span[1],
				Confidence: p.confidence,
			})
		}
	}

	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].Start != entities[j].Start {
			return entities[i].Start < entities[j].Start
		}
		if entities[i].End != entities[j].End {
			return entities[i].End < entities[j].End
		}
		return entities[i].Label < entities[j].Label
	})

	return entities, nil
}

// Ensure RegexClassifier implements Classifier.
var _ Classifier = (*RegexClassifier)(nil)
