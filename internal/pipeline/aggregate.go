package pipeline

import (
	"context"
	"log/slog"

	"github.com/socialshield/socialshield/internal/exposure"
	"github.com/socialshield/socialshield/internal/media"
	"github.com/socialshield/socialshield/internal/model"
	"github.com/socialshield/socialshield/internal/source"
)

// Builder assembles complete exposure reports. It owns the analyzer
// configuration shared by every scan it runs: the metadata decoder, the
// PII classifier, and the language hint passed through to it.
//
// Building the same inputs twice yields structurally equal reports apart
// from the scan identifier and timestamp.
type Builder struct {
	decoder     exposure.MetadataDecoder
	classifier  exposure.Classifier
	language    string
	concurrency int
	logger      *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuilderDecoder sets the metadata decoder used for media files.
func WithBuilderDecoder(decoder exposure.MetadataDecoder) BuilderOption {
	return func(b *Builder) {
		b.decoder = decoder
	}
}

// WithBuilderClassifier sets the PII classifier used for biographies.
func WithBuilderClassifier(classifier exposure.Classifier) BuilderOption {
	return func(b *Builder) {
		b.classifier = classifier
	}
}

// WithBuilderLanguage sets the language code handed to the classifier.
func WithBuilderLanguage(language string) BuilderOption {
	return func(b *Builder) {
		if language != "" {
			b.language = language
		}
	}
}

// WithBuilderConcurrency sets the batch concurrency limit.
func WithBuilderConcurrency(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBuilderLogger sets a custom logger.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder. Without options it decodes media with
// the EXIF decoder and classifies biographies with the bundled regex
// classifier.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		language:    "en",
		concurrency: 10,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.decoder == nil {
		b.decoder = media.NewEXIFDecoder()
	}
	if b.classifier == nil {
		b.classifier = exposure.NewRegexClassifier()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// BuildReport builds a report for already-fetched profile data. It runs
// the collection and scan steps but no profile loading, so it suits
// callers that obtained posts, media, and biography through their own
// channel.
//
// Per-item failures (an unreadable media file, a nil post document) are
// counted in the report. The error return is reserved for structural
// failures such as a classifier span violation.
func (b *Builder) BuildReport(
	ctx context.Context,
	handle model.Handle,
	posts []*model.PostRecord,
	mediaRefs []*model.MediaReference,
	biography string,
) (*model.ExposureReport, error) {
	report := model.NewExposureReport(handle)
	report.Posts = posts
	report.Media = mediaRefs
	report.Biography = biography

	p := New(WithLogger(b.logger))
	p.AddSteps(
		NewCollectPostsStep(exposure.NewPostAnalyzer(exposure.WithPostLogger(b.logger))),
		NewCollectMediaStep(exposure.NewMediaAnalyzer(b.decoder, exposure.WithMediaLogger(b.logger))),
		NewScanBiographyStep(exposure.NewScanner(b.classifier,
			exposure.WithLanguage(b.language),
			exposure.WithScannerLogger(b.logger),
		)),
	)

	err := p.Execute(ctx, report)
	report.Finalize()
	return report, err
}

// BuildReports scans every handle through the full pipeline, loading
// profiles from src. It always returns exactly one finalized report per
// handle, in input order: a handle the source does not know yields an
// empty report marked NotFound, and a handle whose scan failed yields a
// report carrying the error.
func (b *Builder) BuildReports(ctx context.Context, handles []model.Handle, src source.ProfileSource) ([]*model.ExposureReport, error) {
	factory := func() *Pipeline {
		p := New(WithLogger(b.logger))
		p.AddSteps(DefaultSteps(src, b.decoder, b.classifier, b.language, b.logger)...)
		return p
	}

	bp := NewBatchProcessor(factory,
		WithConcurrency(b.concurrency),
		WithBatchLogger(b.logger),
	)
	return bp.ProcessBatch(ctx, handles)
}
