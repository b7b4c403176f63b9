package source

import (
	"context"
	"errors"

	"github.com/socialshield/socialshield/internal/model"
)

var (
	// ErrProfileNotFound means the source has no data for the handle.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileHasNoContent means the handle exists but yielded no
	// biography, posts, or media.
	ErrProfileHasNoContent = errors.New("profile has no content")
)

// Profile is the raw material for one exposure scan.
type Profile struct {
	// Identity is the normalized handle the data belongs to.
	Identity model.Handle
	// Biography is the profile's free-text self description. Empty when
	// the profile has none.
	Biography string
	// Posts holds the post metadata documents in the order the source
	// produced them.
	Posts []*model.PostRecord
	// Media holds references to downloaded media files, profile-level
	// entries after per-post entries.
	Media []*model.MediaReference
}

// ProfileSource resolves a handle into a Profile.
type ProfileSource interface {
	// Load returns the profile for handle. It returns ErrProfileNotFound
	// when the source knows nothing about the handle and
	// ErrProfileHasNoContent when the handle exists but is empty.
	Load(ctx context.Context, handle model.Handle) (*Profile, error)
}
