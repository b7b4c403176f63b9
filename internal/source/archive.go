package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/ulikunitz/xz"

	"github.com/socialshield/socialshield/internal/model"
)

// maxDocumentSize bounds how much of a metadata document is read.
// Post documents are small; anything larger is not one of ours.
const maxDocumentSize = 16 << 20 // 16MB

// biographyFile is an optional plain-text biography override placed in
// the profile directory.
const biographyFile = "biography.txt"

// mediaExtensions lists the media file types handed to the metadata
// decoder. Lowercase, with leading dot.
var mediaExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".heic": true,
	".webp": true,
}

// ArchiveSource reads profiles from an archive directory with one
// subdirectory per handle. Files are discovered in lexical order, so
// loading the same archive twice yields the same profile.
type ArchiveSource struct {
	root   string
	logger *slog.Logger
}

// ArchiveOption configures an ArchiveSource.
type ArchiveOption func(*ArchiveSource)

// WithArchiveLogger sets the logger used for skipped-file diagnostics.
func WithArchiveLogger(logger *slog.Logger) ArchiveOption {
	return func(s *ArchiveSource) {
		s.logger = logger
	}
}

// NewArchiveSource returns an ArchiveSource rooted at dir.
func NewArchiveSource(dir string, opts ...ArchiveOption) *ArchiveSource {
	s := &ArchiveSource{
		root:   dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ProfileSource = (*ArchiveSource)(nil)

// Load implements ProfileSource. A malformed metadata document is
// skipped with a log line rather than failing the whole profile.
func (s *ArchiveSource) Load(ctx context.Context, handle model.Handle) (*Profile, error) {
	dir := filepath.Join(s.root, handle.String())
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, handle)
	}

	profile := &Profile{Identity: handle}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		switch {
		case name == biographyFile:
			text, err := os.ReadFile(path) //nolint:gosec // path comes from the operator's archive dir
			if err != nil {
				return fmt.Errorf("read biography: %w", err)
			}
			profile.Biography = strings.TrimSpace(string(text))
		case strings.HasSuffix(name, ".json"), strings.HasSuffix(name, ".json.xz"):
			s.readDocument(profile, path, name)
		case mediaExtensions[strings.ToLower(filepath.Ext(name))]:
			profile.Media = append(profile.Media, &model.MediaReference{
				Locator: path,
				Post:    documentID(name),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk archive: %w", err)
	}

	if profile.Biography == "" && len(profile.Posts) == 0 && len(profile.Media) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProfileHasNoContent, handle)
	}
	return profile, nil
}

// readDocument parses one metadata document. A document carrying a
// top-level "biography" string is the profile's own metadata; everything
// else is a post.
func (s *ArchiveSource) readDocument(profile *Profile, path, name string) {
	doc, err := s.decodeDocument(path)
	if err != nil {
		s.logger.Warn("skipping malformed metadata document",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}

	if bio, ok := doc["biography"].(string); ok {
		if profile.Biography == "" {
			profile.Biography = bio
		}
		return
	}

	profile.Posts = append(profile.Posts, &model.PostRecord{
		ID:       documentID(name),
		Document: doc,
	})
}

func (s *ArchiveSource) decodeDocument(path string) (map[string]any, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator's archive dir
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	var r io.Reader = io.LimitReader(f, maxDocumentSize)
	if strings.HasSuffix(path, ".xz") {
		if r, err = xz.NewReader(r); err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// documentID strips the metadata suffixes from a file name, leaving the
// shared stem that ties a post document to its media files.
func documentID(name string) string {
	name = strings.TrimSuffix(name, ".xz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}
