// Package source loads profile data for scanning.
//
// A ProfileSource resolves a handle into the profile's biography, post
// metadata documents, and downloaded media references. The shipped
// implementation reads an archive directory in the layout produced by
// common profile-download tools: one directory per handle containing post
// metadata JSON (optionally xz-compressed sidecars) next to the downloaded
// media files.
//
// Network scraping, authentication, and rate limiting live outside this
// codebase; by the time a source is consulted the data is already on disk.
package source
