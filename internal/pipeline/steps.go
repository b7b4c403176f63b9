package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/socialshield/socialshield/internal/exposure"
	"github.com/socialshield/socialshield/internal/model"
	"github.com/socialshield/socialshield/internal/source"
)

// LoadProfileStep resolves the report's subject through a ProfileSource
// and attaches the profile's biography, posts, and media to the report.
//
// A handle the source does not know still produces a well-formed report:
// the step marks it NotFound and returns nil so the remaining steps run
// against empty inputs.
type LoadProfileStep struct {
	source source.ProfileSource
	logger *slog.Logger
}

// LoadProfileStepOption configures a LoadProfileStep.
type LoadProfileStepOption func(*LoadProfileStep)

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadProfileStepOption {
	return func(s *LoadProfileStep) {
		s.logger = logger
	}
}

// NewLoadProfileStep creates a new profile loading step.
func NewLoadProfileStep(src source.ProfileSource, opts ...LoadProfileStepOption) *LoadProfileStep {
	s := &LoadProfileStep{
		source: src,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *LoadProfileStep) Name() string {
	return "load_profile"
}

// Do executes the profile loading step.
func (s *LoadProfileStep) Do(ctx context.Context, report *model.ExposureReport) error {
	profile, err := s.source.Load(ctx, report.Subject)
	if err != nil {
		if errors.Is(err, source.ErrProfileNotFound) || errors.Is(err, source.ErrProfileHasNoContent) {
			s.logger.Info("no profile data",
				"subject", report.Subject,
				"reason", err,
			)
			report.NotFound = true
			return nil
		}
		return fmt.Errorf("load profile: %w", err)
	}

	report.Biography = profile.Biography
	report.Posts = profile.Posts
	report.Media = profile.Media
	return nil
}

// CollectPostsStep extracts geotags and tagged users from the report's
// post documents.
type CollectPostsStep struct {
	analyzer *exposure.PostAnalyzer
}

// NewCollectPostsStep creates a new post collection step.
func NewCollectPostsStep(analyzer *exposure.PostAnalyzer) *CollectPostsStep {
	return &CollectPostsStep{analyzer: analyzer}
}

// Name returns the step name.
func (s *CollectPostsStep) Name() string {
	return "collect_posts"
}

// Do executes the post collection step.
func (s *CollectPostsStep) Do(ctx context.Context, report *model.ExposureReport) error {
	return s.analyzer.Analyze(ctx, report)
}

// CollectMediaStep extracts EXIF exposure from the report's media files.
type CollectMediaStep struct {
	analyzer *exposure.MediaAnalyzer
}

// NewCollectMediaStep creates a new media collection step.
func NewCollectMediaStep(analyzer *exposure.MediaAnalyzer) *CollectMediaStep {
	return &CollectMediaStep{analyzer: analyzer}
}

// Name returns the step name.
func (s *CollectMediaStep) Name() string {
	return "collect_media"
}

// Do executes the media collection step.
func (s *CollectMediaStep) Do(ctx context.Context, report *model.ExposureReport) error {
	return s.analyzer.Analyze(ctx, report)
}

// ScanBiographyStep runs the PII scanner over the report's biography.
type ScanBiographyStep struct {
	scanner *exposure.Scanner
}

// NewScanBiographyStep creates a new biography scanning step.
func NewScanBiographyStep(scanner *exposure.Scanner) *ScanBiographyStep {
	return &ScanBiographyStep{scanner: scanner}
}

// Name returns the step name.
func (s *ScanBiographyStep) Name() string {
	return "scan_biography"
}

// Do executes the biography scanning step. A scanner error is fatal:
// it indicates the classifier violated its contract, not a bad input.
func (s *ScanBiographyStep) Do(ctx context.Context, report *model.ExposureReport) error {
	return s.scanner.Analyze(ctx, report)
}

// DefaultSteps builds the standard scan sequence: load the profile,
// collect posts, collect media, scan the biography.
func DefaultSteps(src source.ProfileSource, decoder exposure.MetadataDecoder, classifier exposure.Classifier, language string, logger *slog.Logger) []Step {
	return []Step{
		NewLoadProfileStep(src, WithLoadLogger(logger)),
		NewCollectPostsStep(exposure.NewPostAnalyzer(exposure.WithPostLogger(logger))),
		NewCollectMediaStep(exposure.NewMediaAnalyzer(decoder, exposure.WithMediaLogger(logger))),
		NewScanBiographyStep(exposure.NewScanner(classifier,
			exposure.WithLanguage(language),
			exposure.WithScannerLogger(logger),
		)),
	}
}
