package model

// DMS is a degree/minute/second coordinate component as stored in EXIF
// GPS tags. Values are kept as floats because EXIF encodes them as
// rationals and sub-second precision is common.
type DMS struct {
	Degrees float64 `json:"degrees"`
	Minutes float64 `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// GPSRecord is a complete EXIF GPS coordinate set for one media file.
//
// Invariant: all four fields are present simultaneously or the record does
// not exist at all. Partial GPS data is treated as absent, never guessed;
// extraction code returns (GPSRecord, false) when any component is missing.
type GPSRecord struct {
	// Latitude is the latitude as a degree/minute/second triple.
	Latitude DMS `json:"latitude"`

	// Longitude is the longitude as a degree/minute/second triple.
	Longitude DMS `json:"longitude"`

	// LatitudeRef is the latitude hemisphere, "N" or "S".
	LatitudeRef string `json:"latitude_ref"`

	// LongitudeRef is the longitude hemisphere, "E" or "W".
	LongitudeRef string `json:"longitude_ref"`
}

// TagMap is a decoded metadata tag-name to value mapping for one media file,
// as produced by a media decoder. GPS coordinate tags carry DMS values and
// all other tags carry their formatted string representation. A nil or empty
// TagMap means the file had no readable metadata.
type TagMap map[string]any
