package model

// PIIFinding is one personally-identifiable-information occurrence detected
// in free text by a classifier.
//
// Invariant: [Start, End) must be a valid sub-range of the text the finding
// was extracted from, and MatchedText equals that slice. A classifier
// returning a span outside the text bounds is a broken integration, not bad
// input data, and is surfaced as a fatal error rather than clamped.
type PIIFinding struct {
	// EntityType is the classifier's taxonomy tag (e.g. EMAIL, PHONE, SSN).
	EntityType string `json:"entity_type"`

	// MatchedText is the matched substring of the source text.
	MatchedText string `json:"matched_text"`

	// Start is the inclusive byte offset of the match in the source text.
	Start int `json:"start"`

	// End is the exclusive byte offset of the match in the source text.
	End int `json:"end"`

	// Confidence is the classifier's confidence in [0, 1].
	// Zero means the classifier does not score its matches.
	Confidence float64 `json:"confidence,omitempty"`
}
