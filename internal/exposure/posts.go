package exposure

import (
	"context"
	"log/slog"

	"github.com/socialshield/socialshield/internal/model"
)

// Keys of the nested path to tagging and location data in the platform's
// post-detail export format.
const (
	keyTaggedUserEdge = "edge_media_to_tagged_user"
	keyEdges          = "edges"
	keyNode           = "node"
	keyUser           = "user"
	keyFullName       = "full_name"
	keyUsername       = "username"
	keyLocation       = "location"
	keyName           = "name"
)

// PostExtract is the result of extracting exposure data from one post
// document: an optional named geotag and the tagged-user occurrences.
type PostExtract struct {
	// GeoTag is the post's platform-supplied location tag, nil when the
	// post carries none.
	GeoTag *model.GeoTag

	// TaggedUsers lists every tagged-user entry, in document order.
	// Empty when the post carries no tagging data.
	TaggedUsers []model.TaggedUser
}

// ExtractFromPost recovers geotag and tagged-user information from one
// post's nested metadata document.
//
// Every lookup is total: a missing or differently-typed path segment yields
// an empty result, never an error, because not all posts carry tagging or
// location data. Tagged-user entries missing a full name or username keep
// the entry with the missing field defaulted to model.UnknownField; entries
// are never dropped.
func ExtractFromPost(doc map[string]any) PostExtract {
	var out PostExtract
	if doc == nil {
		return out
	}

	// Location tags are names only. Coordinate-level geotagging comes
	// solely from media EXIF metadata.
	if loc, ok := doc[keyLocation].(map[string]any); ok {
		if name, ok := loc[keyName].(string); ok && name != "" {
			out.GeoTag = &model.GeoTag{Name: name}
		}
	}

	edgeList, ok := doc[keyTaggedUserEdge].(map[string]any)
	if !ok {
		return out
	}
	edges, ok := edgeList[keyEdges].([]any)
	if !ok {
		return out
	}

	for _, e := range edges {
		edge, ok := e.(map[string]any)
		if !ok {
			continue
		}
		node, ok := edge[keyNode].(map[string]any)
		if !ok {
			continue
		}
		user, _ := node[keyUser].(map[string]any)
		out.TaggedUsers = append(out.TaggedUsers, model.TaggedUser{
			FullName: stringField(user, keyFullName),
			Username: stringField(user, keyUsername),
		})
	}

	return out
}

// stringField returns a non-empty string field from a document node, or
// model.UnknownField when the node or field is absent.
func stringField(m map[string]any, key string) string {
	if m != nil {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return model.UnknownField
}

// PostAnalyzer extracts exposure events from a profile's posts: named
// geotags and tagged-user relationships.
type PostAnalyzer struct {
	// logger for structured logging.
	logger *slog.Logger
}

// PostAnalyzerOption configures a PostAnalyzer.
type PostAnalyzerOption func(*PostAnalyzer)

// WithPostLogger sets a custom logger for the post analyzer.
func WithPostLogger(logger *slog.Logger) PostAnalyzerOption {
	return func(a *PostAnalyzer) {
		a.logger = logger
	}
}

// NewPostAnalyzer creates a PostAnalyzer.
func NewPostAnalyzer(opts ...PostAnalyzerOption) *PostAnalyzer {
	a := &PostAnalyzer{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the analyzer name.
func (a *PostAnalyzer) Name() string {
	return "posts"
}

// Analyze walks every post on the report and appends the geotag and
// tagged-user events found. A post without a document is skipped and
// counted; it never aborts the scan.
func (a *PostAnalyzer) Analyze(ctx context.Context, report *model.ExposureReport) error {
	for _, post := range report.Posts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if post == nil || post.Document == nil {
			a.logger.Debug("skipping post without metadata document")
			report.PostsSkipped++
			continue
		}

		extract := ExtractFromPost(post.Document)
		report.PostsScanned++

		if extract.GeoTag != nil {
			report.AddGeotagEvent(model.GeotagEvent{
				Source:   post.ID,
				Location: extract.GeoTag.Name,
				Precise:  false,
			})
			report.AddFinding(model.Finding{
				Type:           "post_geotag",
				Title:          "Location Tag on Post",
				Description:    "A post carries a platform location tag naming a place the subject visited.",
				Severity:       model.SeverityMedium,
				Value:          extract.GeoTag.Name,
				Location:       post.ID,
				Recommendation: "Remove location tags from posts, or tag locations only after leaving them.",
			})
		}

		for _, u := range extract.TaggedUsers {
			u.Source = post.ID
			report.AddTaggedUser(u)
			report.AddFinding(model.Finding{
				Type:        "tagged_user",
				Title:       "Tagged User on Post",
				Description: "A post tags another account, exposing a social connection of the subject.",
				Severity:    model.SeverityMedium,
				Value:       u.Username + " (" + u.FullName + ")",
				Location:    post.ID,
			})
		}
	}

	return nil
}
