package exposure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/socialshield/socialshield/internal/model"
)

// ErrSpanOutOfBounds is returned when a classifier reports a match span
// strictly outside the scanned text's bounds. This indicates a broken
// classifier integration, not bad input data, so it is surfaced to the
// caller instead of being clamped or swallowed.
var ErrSpanOutOfBounds = errors.New("pii classifier returned span outside text bounds")

// Entity is one match reported by a PII classifier: a taxonomy label and a
// half-open [Start, End) byte span into the classified text.
type Entity struct {
	// Label is the classifier's taxonomy tag (e.g. EMAIL, PHONE, SSN).
	Label string

	// Start is the inclusive byte offset of the match.
	Start int

	// End is the exclusive byte offset of the match.
	End int

	// Confidence is the classifier's confidence in [0, 1], zero when the
	// classifier does not score matches.
	Confidence float64
}

// Classifier is the pluggable PII detection capability.
// The language code is an opaque identifier passed through unmodified.
//
// Design decision: We use an interface rather than binding a concrete
// detection engine because:
//  1. Deployments differ in which detector they run (regex, NLP service)
//  2. Enables testing with deterministic fake classifiers
//  3. The adapter contract stays stable while detectors evolve
type Classifier interface {
	Classify(ctx context.Context, text, language string) ([]Entity, error)
}

// Scanner adapts a Classifier into PII findings over free text.
// It is stateless apart from its configuration and safe to call
// concurrently on disjoint inputs.
type Scanner struct {
	// classifier is the injected detection capability.
	classifier Classifier

	// language is the language code forwarded to the classifier.
	language string

	// logger for structured logging.
	logger *slog.Logger
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithLanguage sets the language code forwarded to the classifier.
// Default is "en".
func WithLanguage(language string) ScannerOption {
	return func(s *Scanner) {
		if language != "" {
			s.language = language
		}
	}
}

// WithScannerLogger sets a custom logger for the scanner.
func WithScannerLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner delegating to the given classifier.
func NewScanner(classifier Classifier, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		classifier: classifier,
		language:   "en",
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the analyzer name.
func (s *Scanner) Name() string {
	return "pii"
}

// Scan runs exactly one classification pass over the given text and
// materializes the classifier's spans into PII findings. Empty text yields
// an empty result, not an error. A span outside [0, len(text)] fails with
// ErrSpanOutOfBounds.
func (s *Scanner) Scan(ctx context.Context, text string) ([]model.PIIFinding, error) {
	if text == "" {
		return nil, nil
	}

	entities, err := s.classifier.Classify(ctx, text, s.language)
	if err != nil {
		return nil, fmt.Errorf("pii classification: %w", err)
	}

	findings := make([]model.PIIFinding, 0, len(entities))
	for _, e := range entities {
		if e.Start < 0 || e.End > len(text) || e.Start > e.End {
			return nil, fmt.Errorf("%w: [%d,%d) in text of length %d",
				ErrSpanOutOfBounds, e.Start, e.End, len(text))
		}
		findings = append(findings, model.PIIFinding{
			EntityType:  e.Label,
			MatchedText: text[e.Start:e.End],
			Start:       e.Start,
			End:         e.End,
			Confidence:  e.Confidence,
		})
	}

	return findings, nil
}

// Analyze scans the report's biography text and appends every finding.
// The biography is scanned exactly once per profile.
func (s *Scanner) Analyze(ctx context.Context, report *model.ExposureReport) error {
	findings, err := s.Scan(ctx, report.Biography)
	if err != nil {
		// Integration faults surface; they are not per-item noise.
		return err
	}

	for _, f := range findings {
		report.AddPIIFinding(f)
		report.AddFinding(model.Finding{
			Type:           "pii_" + strings.ToLower(f.EntityType),
			Title:          "PII in Biography",
			Description:    "The profile biography contains personally identifiable information visible to anyone viewing the profile.",
			Severity:       severityForEntity(f.EntityType),
			Value:          f.MatchedText,
			Location:       "biography",
			Recommendation: "Remove direct contact details and identifiers from the public biography.",
		})
	}

	return nil
}

// severityForEntity maps a classifier taxonomy tag to a severity level.
// Direct contact details and government identifiers rate High; everything
// else in a public biography still warrants attention.
func severityForEntity(entityType string) model.Severity {
	switch strings.ToUpper(entityType) {
	case "EMAIL", "PHONE", "SSN":
		return model.SeverityHigh
	default:
		return model.SeverityMedium
	}
}
