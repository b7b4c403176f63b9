package exposure

import (
	"context"
	"strings"
)

// FilteredClassifier wraps a Classifier and drops entities whose label is
// on an ignore list. It is used for accounts that publish certain data on
// purpose, such as a business profile listing its phone number.
type FilteredClassifier struct {
	inner   Classifier
	ignored map[string]bool
}

// NewFilteredClassifier returns a classifier that forwards to inner and
// removes entities whose label matches one of ignoreLabels. Label
// comparison is case-insensitive.
func NewFilteredClassifier(inner Classifier, ignoreLabels []string) *FilteredClassifier {
	ignored := make(map[string]bool, len(ignoreLabels))
	for _, label := range ignoreLabels {
		ignored[strings.ToUpper(label)] = true
	}
	return &FilteredClassifier{
		inner:   inner,
		ignored: ignored,
	}
}

var _ Classifier = (*FilteredClassifier)(nil)

// Classify implements Classifier. Spans of surviving entities are
// returned untouched, so the wrapper preserves the inner classifier's
// bounds contract.
func (c *FilteredClassifier) Classify(ctx context.Context, text, language string) ([]Entity, error) {
	entities, err := c.inner.Classify(ctx, text, language)
	if err != nil {
		return nil, err
	}

	kept := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if c.ignored[strings.ToUpper(e.Label)] {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}
