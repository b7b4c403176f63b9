package exposure

import (
	"context"
	"log/slog"

	"github.com/socialshield/socialshield/internal/model"
)

// GPS tag names as exposed by the metadata decoder. The decoder flattens
// the EXIF GPS sub-IFD, so the four coordinate tags appear by name at the
// top level of the tag map.
const (
	tagGPSLatitude     = "GPSLatitude"
	tagGPSLatitudeRef  = "GPSLatitudeRef"
	tagGPSLongitude    = "GPSLongitude"
	tagGPSLongitudeRef = "GPSLongitudeRef"
)

// ExtractGPS extracts a complete GPS record from a decoded tag map.
//
// All four GPS tags must be present with usable values; any subset returns
// (zero record, false). Partial GPS data is treated as absent, never
// guessed, because a coordinate without its hemisphere reference (or a
// latitude without a longitude) cannot be resolved to a location.
//
// The function is total over any tag vocabulary that exposes the four GPS
// tags by their standard names; a nil or empty map simply yields absent.
func ExtractGPS(tags model.TagMap) (model.GPSRecord, bool) {
	lat, ok := tags[tagGPSLatitude].(model.DMS)
	if !ok {
		return model.GPSRecord{}, false
	}
	lon, ok := tags[tagGPSLongitude].(model.DMS)
	if !ok {
		return model.GPSRecord{}, false
	}
	latRef, ok := tags[tagGPSLatitudeRef].(string)
	if !ok || latRef == "" {
		return model.GPSRecord{}, false
	}
	lonRef, ok := tags[tagGPSLongitudeRef].(string)
	if !ok || lonRef == "" {
		return model.GPSRecord{}, false
	}

	return model.GPSRecord{
		Latitude:     lat,
		Longitude:    lon,
		LatitudeRef:  latRef,
		LongitudeRef: lonRef,
	}, true
}

// MetadataDecoder resolves a media locator into a tag-name to value
// mapping. Implementations must return an empty map (not an error) for
// files that carry no metadata; errors are reserved for files that could
// not be read at all.
type MetadataDecoder interface {
	Decode(locator string) (model.TagMap, error)
}

// MediaAnalyzer extracts location and identity exposure from downloaded
// media files. EXIF metadata can contain GPS coordinates, camera serial
// numbers, author names, and timestamps the uploader never meant to share.
type MediaAnalyzer struct {
	// decoder resolves file locators into tag maps.
	decoder MetadataDecoder

	// logger for structured logging.
	logger *slog.Logger
}

// MediaAnalyzerOption configures a MediaAnalyzer.
type MediaAnalyzerOption func(*MediaAnalyzer)

// WithMediaLogger sets a custom logger for the media analyzer.
func WithMediaLogger(logger *slog.Logger) MediaAnalyzerOption {
	return func(a *MediaAnalyzer) {
		a.logger = logger
	}
}

// NewMediaAnalyzer creates a MediaAnalyzer using the given decoder.
func NewMediaAnalyzer(decoder MetadataDecoder, opts ...MediaAnalyzerOption) *MediaAnalyzer {
	a := &MediaAnalyzer{
		decoder: decoder,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the analyzer name.
func (a *MediaAnalyzer) Name() string {
	return "media"
}

// Analyze decodes every media reference on the report and records the
// exposure its metadata reveals. An unreadable file is skipped and counted;
// it never aborts the scan.
func (a *MediaAnalyzer) Analyze(ctx context.Context, report *model.ExposureReport) error {
	for _, ref := range report.Media {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tags, err := a.decoder.Decode(ref.Locator)
		if err != nil {
			a.logger.Debug("media metadata unreadable",
				"file", ref.Locator,
				"error", err,
			)
			report.MediaSkipped++
			continue
		}
		report.MediaScanned++

		if len(tags) == 0 {
			continue
		}

		if rec, ok := ExtractGPS(tags); ok {
			lat, lon := DecimalDegrees(rec)
			link := MapLink(lat, lon)

			report.AddGeotagEvent(model.GeotagEvent{
				Source:    ref.Locator,
				Location:  link,
				Latitude:  lat,
				Longitude: lon,
				Precise:   true,
			})
			report.AddFinding(model.Finding{
				Type:           "exif_gps",
				Title:          "GPS Coordinates in Media EXIF",
				Description:    "A downloaded image contains GPS coordinates in its EXIF metadata. This reveals the exact location where the image was taken.",
				Severity:       model.SeverityCritical,
				Value:          link,
				Location:       ref.Locator,
				Recommendation: "Strip EXIF metadata from images before uploading, or disable location services for the camera app.",
			})
		}

		a.identityFindings(report, ref, tags)
	}

	return nil
}

// identityTagOrder fixes the inspection order of non-GPS identity tags so
// that repeated scans of identical inputs produce structurally equal
// reports. Map iteration order would not.
var identityTagOrder = []string{
	"Make", "Model",
	"SerialNumber", "CameraSerialNumber", "BodySerialNumber", "LensSerialNumber",
	"Software", "ProcessingSoftware",
	"Artist", "Author", "Copyright", "XPAuthor",
	"DateTimeOriginal", "DateTimeDigitized", "DateTime",
}

// identityFindings records non-GPS metadata tags that identify the device,
// software, or author behind a media file.
func (a *MediaAnalyzer) identityFindings(report *model.ExposureReport, ref *model.MediaReference, tags model.TagMap) {
	for _, tagName := range identityTagOrder {
		text, ok := tags[tagName].(string)
		if !ok || text == "" {
			continue
		}

		switch tagName {
		// Camera identification
		case "Make", "Model":
			report.AddFinding(model.Finding{
				Type:        "exif_camera",
				Title:       "Camera Information in Media EXIF",
				Description: "An image carries camera make/model information that can narrow down the device used.",
				Severity:    model.SeverityLow,
				Value:       tagName + ": " + text,
				Location:    ref.Locator,
			})

		// Serial numbers tie every photo to one physical device
		case "SerialNumber", "CameraSerialNumber", "BodySerialNumber", "LensSerialNumber":
			report.AddFinding(model.Finding{
				Type:           "exif_serial",
				Title:          "Device Serial Number in Media EXIF",
				Description:    "An image carries a device serial number, a unique identifier that can track the device across photos and accounts.",
				Severity:       model.SeverityHigh,
				Value:          tagName + ": " + text,
				Location:       ref.Locator,
				Recommendation: "Strip EXIF metadata from images before uploading.",
			})

		// Editing software / OS
		case "Software", "ProcessingSoftware":
			report.AddFinding(model.Finding{
				Type:        "exif_software",
				Title:       "Software Information in Media EXIF",
				Description: "An image carries software information revealing editing tools or operating system used.",
				Severity:    model.SeverityLow,
				Value:       tagName + ": " + text,
				Location:    ref.Locator,
			})

		// Author/Copyright is a direct identity leak
		case "Artist", "Author", "Copyright", "XPAuthor":
			report.AddFinding(model.Finding{
				Type:           "exif_author",
				Title:          "Author Information in Media EXIF",
				Description:    "An image carries author or copyright information that could directly identify its creator.",
				Severity:       model.SeverityHigh,
				Value:          tagName + ": " + text,
				Location:       ref.Locator,
				Recommendation: "Remove author fields from the camera or editing software configuration.",
			})

		// Timestamps support timezone and routine inference
		case "DateTimeOriginal", "DateTimeDigitized", "DateTime":
			report.AddFinding(model.Finding{
				Type:        "exif_datetime",
				Title:       "Timestamp in Media EXIF",
				Description: "An image carries its original capture timestamp. Combined with other data this supports timezone and activity-pattern inference.",
				Severity:    model.SeverityLow,
				Value:       tagName + ": " + text,
				Location:    ref.Locator,
			})
		}
	}
}
