package media

import (
	"fmt"
	"io"
	"os"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"

	"github.com/socialshield/socialshield/internal/model"
)

// DefaultMaxFileSize limits how much of a media file is read for metadata
// extraction. EXIF data sits near the start of the file, so 20MB covers
// even large originals while preventing memory exhaustion on video files
// that slipped into the media set.
const DefaultMaxFileSize = 20 * 1024 * 1024

// EXIFDecoder decodes EXIF metadata from media files on disk.
//
// Decode never fails on a corrupt or metadata-free file; those return an
// empty tag map. Errors are reserved for files that could not be read at
// all (missing, permission denied), which callers handle at the per-file
// granularity.
type EXIFDecoder struct {
	// maxFileSize limits the bytes read per file.
	maxFileSize int64
}

// EXIFDecoderOption configures an EXIFDecoder.
type EXIFDecoderOption func(*EXIFDecoder)

// WithMaxFileSize sets the maximum bytes read per media file.
func WithMaxFileSize(size int64) EXIFDecoderOption {
	return func(d *EXIFDecoder) {
		if size > 0 {
			d.maxFileSize = size
		}
	}
}

// NewEXIFDecoder creates an EXIFDecoder.
func NewEXIFDecoder(opts ...EXIFDecoderOption) *EXIFDecoder {
	d := &EXIFDecoder{
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads a media file and returns its flat tag map.
func (d *EXIFDecoder) Decode(locator string) (model.TagMap, error) {
	f, err := os.Open(locator) //nolint:gosec // Scanning user-selected media files is the point
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, d.maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("read media file: %w", err)
	}

	return DecodeBytes(data), nil
}

// DecodeBytes extracts the flat tag map from raw media bytes.
// Bytes without EXIF data (or with EXIF data too damaged to parse) yield
// an empty map.
func DecodeBytes(data []byte) model.TagMap {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return model.TagMap{}
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return model.TagMap{}
	}

	tags := make(model.TagMap, len(entries))
	for _, entry := range entries {
		switch entry.TagName {
		case "GPSLatitude", "GPSLongitude":
			if dms, ok := rationalTriple(entry.Value); ok {
				tags[entry.TagName] = dms
				continue
			}
			// Unexpected encoding; keep the formatted form so the tag's
			// presence is still visible, even though it won't resolve to
			// coordinates.
			tags[entry.TagName] = strings.TrimSpace(entry.Formatted)
		default:
			tags[entry.TagName] = strings.TrimSpace(entry.Formatted)
		}
	}

	return tags
}

// rationalTriple converts an EXIF rational triple into a DMS value.
// Returns false for anything that is not exactly three valid rationals.
func rationalTriple(value any) (model.DMS, bool) {
	rationals, ok := value.([]exifcommon.Rational)
	if !ok || len(rationals) != 3 {
		return model.DMS{}, false
	}
	for _, r := range rationals {
		if r.Denominator == 0 {
			return model.DMS{}, false
		}
	}

	return model.DMS{
		Degrees: float64(rationals[0].Numerator) / float64(rationals[0].Denominator),
		Minutes: float64(rationals[1].Numerator) / float64(rationals[1].Denominator),
		Seconds: float64(rationals[2].Numerator) / float64(rationals[2].Denominator),
	}, true
}
