// Package media decodes metadata from downloaded media files.
//
// The decoder produces a flat tag-name to value mapping per file. GPS
// coordinate tags are decoded into degree/minute/second triples; all other
// tags keep their formatted string representation. Files without readable
// metadata yield an empty map, never an error: a corrupt or metadata-free
// image is an expected input, not a failure.
package media
