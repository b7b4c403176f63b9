package model

// PostRecord is a read-only view of one post's metadata as supplied by the
// post source. The document is the platform's nested post-detail export
// (arbitrary-depth mapping); the core never mutates it.
type PostRecord struct {
	// ID is the post identifier (shortcode or platform ID).
	ID string `json:"id"`

	// Document is the decoded nested metadata document.
	Document map[string]any `json:"-"`
}

// GeoTag is a platform-supplied location tag on a post.
// Platform location tags are names only; coordinate-level geotagging comes
// solely from EXIF metadata in downloaded media.
type GeoTag struct {
	// Name is the location name exactly as the platform supplied it.
	Name string `json:"name"`
}

// UnknownField is the sentinel used when a tagged-user entry is missing its
// full name or username. Entries are never dropped for missing fields; each
// field defaults independently.
const UnknownField = "unknown"

// TaggedUser is one tagged-user occurrence recovered from a post's metadata.
//
// Occurrences are intentionally NOT deduplicated across posts: the report
// counts exposure instances, not unique persons. The same account tagged in
// three posts is three separate exposure events.
type TaggedUser struct {
	// FullName is the tagged account's display name, or UnknownField.
	FullName string `json:"full_name"`

	// Username is the tagged account's handle, or UnknownField.
	Username string `json:"username"`

	// Source is the post the tag was found in.
	Source string `json:"source,omitempty"`
}

// MediaReference points at one downloaded media file owned by the scan for
// the duration of one profile. The tag map is resolved lazily by the media
// collection step and discarded after contributing to the report.
type MediaReference struct {
	// Locator is the file path (or URL) of the media file.
	Locator string `json:"locator"`

	// Post is the post the media belongs to, empty for profile-level media.
	Post string `json:"post,omitempty"`
}
